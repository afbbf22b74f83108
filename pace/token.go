package pace

import "fmt"

// Position is a 1-based location in an instance file.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenEOL
	TokenProblem
	TokenDescriptor
	TokenNumber
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of file"
	case TokenEOL:
		return "end of line"
	case TokenProblem:
		return "problem line"
	case TokenDescriptor:
		return "problem descriptor"
	case TokenNumber:
		return "number"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a single lexical unit. Value is only meaningful for TokenNumber.
type Token struct {
	Kind  TokenKind
	Pos   Position
	Value int
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return fmt.Sprintf("%s %s %d", t.Pos, t.Kind, t.Value)
	}
	return fmt.Sprintf("%s %s", t.Pos, t.Kind)
}

// describe renders the token for "got ..." parts of diagnostics.
func (t Token) describe() string {
	if t.Kind == TokenNumber {
		return fmt.Sprintf("number %d", t.Value)
	}
	return t.Kind.String()
}
