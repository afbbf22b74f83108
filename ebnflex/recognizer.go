// Package ebnflex recognizes input directly against an EBNF grammar.
//
// It is a slow reference matcher used to keep a hand written lexer and
// parser honest: anything the grammar accepts, they should accept too.
// Matching is greedy with no backtracking inside sequences or repetitions.
package ebnflex

import (
	"fmt"

	"golang.org/x/exp/ebnf"
)

// Position represents a location in the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// MatchError reports where recognition stopped.
type MatchError struct {
	Start string
	Pos   Position
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s: input does not match production %s", e.Pos, e.Start)
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

const noMatch = -1

// Recognizer matches one input against a grammar.
type Recognizer struct {
	grammar  ebnf.Grammar
	input    []byte
	memo     map[memoKey]int  // key -> match length, noMatch if none
	visiting map[memoKey]bool // cycle detection
	furthest int              // largest offset a terminal matched up to
}

func NewRecognizer(grammar ebnf.Grammar, input []byte) *Recognizer {
	return &Recognizer{
		grammar:  grammar,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Accepts reports whether the whole input matches production start.
func Accepts(grammar ebnf.Grammar, start string, input []byte) error {
	return NewRecognizer(grammar, input).Accept(start)
}

func (r *Recognizer) Accept(start string) error {
	n := r.matchName(start, 0)
	if n == len(r.input) {
		return nil
	}
	offset := r.furthest
	if n > offset {
		offset = n
	}
	return &MatchError{Start: start, Pos: r.position(offset)}
}

func (r *Recognizer) position(offset int) Position {
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for _, ch := range r.input[:offset] {
		if ch == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// match returns the length matched by expr at offset, or noMatch.
func (r *Recognizer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		return r.matchToken(e.String, offset)

	case *ebnf.Range:
		return r.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := r.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := r.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := r.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := r.match(e.Body, offset); n != noMatch {
			return n
		}
		return 0

	case *ebnf.Group:
		return r.match(e.Body, offset)

	case *ebnf.Name:
		return r.matchName(e.String, offset)

	default:
		return noMatch
	}
}

// matchName matches a named production with memoization and cycle detection.
func (r *Recognizer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := r.memo[key]; ok {
		return result
	}
	// Left recursion at the same offset cannot make progress.
	if r.visiting[key] {
		return noMatch
	}

	prod, ok := r.grammar[name]
	if !ok {
		r.memo[key] = noMatch
		return noMatch
	}

	r.visiting[key] = true
	result := r.match(prod.Expr, offset)
	delete(r.visiting, key)

	r.memo[key] = result
	return result
}

// matchToken matches a literal. The grammar parser has already unquoted it.
func (r *Recognizer) matchToken(s string, offset int) int {
	if offset+len(s) > len(r.input) || string(r.input[offset:offset+len(s)]) != s {
		return noMatch
	}
	r.reach(offset + len(s))
	return len(s)
}

// matchRange matches a single character range (e.g., "a"…"z").
func (r *Recognizer) matchRange(begin, end string, offset int) int {
	if offset >= len(r.input) {
		return noMatch
	}
	if len(begin) != 1 || len(end) != 1 {
		return noMatch
	}
	ch := r.input[offset]
	if ch < begin[0] || ch > end[0] {
		return noMatch
	}
	r.reach(offset + 1)
	return 1
}

func (r *Recognizer) reach(offset int) {
	if offset > r.furthest {
		r.furthest = offset
	}
}
