package pace

import (
	"errors"
	"fmt"
	"strings"
)

// Lexer failures.
var (
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrMalformedDescriptor = errors.New("malformed descriptor")
	ErrMalformedNumber     = errors.New("malformed number")
	ErrNumberOverflow      = errors.New("number overflow")
)

// Parser failures.
var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrMissingProblem    = errors.New("missing problem line")
	ErrDuplicateProblem  = errors.New("duplicate problem line")
	ErrInvalidVertex     = errors.New("invalid vertex")
	ErrSurplusEdge       = errors.New("surplus edge")
	ErrMissingEdges      = errors.New("missing edges")
	ErrExpectedSecond    = errors.New("expected number for second vertex")
	ErrExpectedEndOfLine = errors.New("expected end of line or file")
	ErrSelfLoop          = errors.New("self-loop")
	ErrDuplicateEdge     = errors.New("duplicate edge")
)

// LexError reports input the lexer cannot turn into a token.
type LexError struct {
	Pos     Position
	Char    byte // offending character, 0 at end of input
	Message string
	Err     error
}

func (e *LexError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Pos, e.Err)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *LexError) Unwrap() error { return e.Err }

// ParseError reports a token that violates the grammar or the header's
// declared bounds.
type ParseError struct {
	Pos      Position
	Err      error
	Expected string
	Got      string
	Detail   string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Pos, e.Err)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Got)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorPosition extracts the position carried by a lex or parse error.
func ErrorPosition(err error) (Position, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Pos, true
	}
	return Position{}, false
}

func quoteChar(ch byte) string {
	return fmt.Sprintf("%q", rune(ch))
}
