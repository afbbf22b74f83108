package pace

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/vcgraph/graph"
)

type Option func(*Parser)

// WithFile sets the file name reported in error positions.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithLenientEdgeCount accepts files that end before the declared number of
// edges has been read.
func WithLenientEdgeCount() Option {
	return func(p *Parser) {
		p.lenient = true
	}
}

// WithStrictSimple rejects self-loops and repeated edges.
func WithStrictSimple() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

type state int

const (
	stateStart state = iota
	stateDescriptor
	stateVertexCount
	stateEdgeCount
	stateHeaderEnd
	stateEdges
	stateDone
)

// Parser drives a Lexer through the instance grammar and builds a graph.
// A Parser is good for one Parse call.
type Parser struct {
	lexer    *Lexer
	file     string
	lenient  bool
	strict   bool
	state    state
	graph    *graph.Graph
	vertices int
	declared int
	header   Position
}

func newParser(opts []Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a complete instance from r. It returns either a graph that
// satisfies every header constraint or an error of type *LexError or
// *ParseError; there is no partial result.
func Parse(r io.Reader, opts ...Option) (*graph.Graph, error) {
	p := newParser(opts)
	lexer, err := NewLexer(r, p.file)
	if err != nil {
		return nil, err
	}
	p.lexer = lexer
	return p.run()
}

// ParseFile opens path, parses it and closes it on every exit path.
func ParseFile(path string, opts ...Option) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open instance: %w", err)
	}
	defer f.Close()

	opts = append([]Option{WithFile(path)}, opts...)
	return Parse(f, opts...)
}

func (p *Parser) run() (*graph.Graph, error) {
	for p.state != stateDone {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return nil, err
		}
		if err := p.step(tok); err != nil {
			return nil, err
		}
	}
	g := p.graph
	p.graph = nil
	return g, nil
}

func (p *Parser) step(tok Token) error {
	switch p.state {
	case stateStart:
		return p.start(tok)
	case stateDescriptor:
		if tok.Kind != TokenDescriptor {
			return p.unexpected(tok, "problem descriptor")
		}
		p.state = stateVertexCount
	case stateVertexCount:
		if tok.Kind != TokenNumber {
			return p.unexpected(tok, "vertex count")
		}
		p.vertices = tok.Value
		p.graph = graph.New(tok.Value)
		p.state = stateEdgeCount
	case stateEdgeCount:
		if tok.Kind != TokenNumber {
			return p.unexpected(tok, "edge count")
		}
		p.declared = tok.Value
		p.state = stateHeaderEnd
	case stateHeaderEnd:
		switch tok.Kind {
		case TokenEOL:
			p.state = stateEdges
		case TokenEOF:
			return p.finish(tok)
		default:
			return &ParseError{Pos: tok.Pos, Err: ErrExpectedEndOfLine, Detail: fmt.Sprintf("got %s after edge count", tok.describe())}
		}
	case stateEdges:
		return p.edges(tok)
	}
	return nil
}

func (p *Parser) start(tok Token) error {
	switch tok.Kind {
	case TokenProblem:
		p.header = tok.Pos
		p.state = stateDescriptor
		return nil
	case TokenEOL:
		return nil
	case TokenEOF:
		return &ParseError{Pos: tok.Pos, Err: ErrMissingProblem}
	default:
		return p.unexpected(tok, "problem line")
	}
}

func (p *Parser) edges(tok Token) error {
	switch tok.Kind {
	case TokenEOL:
		return nil
	case TokenEOF:
		return p.finish(tok)
	case TokenProblem:
		return &ParseError{
			Pos:    tok.Pos,
			Err:    ErrDuplicateProblem,
			Detail: fmt.Sprintf("first declared at %s", p.header),
		}
	case TokenNumber:
		return p.edge(tok)
	default:
		return p.unexpected(tok, "edge or end of file")
	}
}

// edge consumes one edge line whose first token has already been read.
func (p *Parser) edge(first Token) error {
	u, err := p.vertex(first)
	if err != nil {
		return err
	}

	second, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	if second.Kind != TokenNumber {
		return &ParseError{Pos: second.Pos, Err: ErrExpectedSecond, Detail: "got " + second.describe()}
	}
	v, err := p.vertex(second)
	if err != nil {
		return err
	}

	end, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	if end.Kind != TokenEOL && end.Kind != TokenEOF {
		return &ParseError{Pos: end.Pos, Err: ErrExpectedEndOfLine, Detail: "got " + end.describe()}
	}

	if p.graph.NumEdges() == p.declared {
		return &ParseError{
			Pos:    first.Pos,
			Err:    ErrSurplusEdge,
			Detail: fmt.Sprintf("header declares %d edges", p.declared),
		}
	}
	if p.strict {
		if u == v {
			return &ParseError{Pos: first.Pos, Err: ErrSelfLoop, Detail: fmt.Sprintf("vertex %d", first.Value)}
		}
		if p.graph.HasEdge(u, v) {
			return &ParseError{Pos: first.Pos, Err: ErrDuplicateEdge, Detail: fmt.Sprintf("%d %d", first.Value, second.Value)}
		}
	}
	if err := p.graph.AddEdge(u, v); err != nil {
		return &ParseError{Pos: first.Pos, Err: ErrInvalidVertex, Detail: err.Error()}
	}

	if end.Kind == TokenEOF {
		return p.finish(end)
	}
	return nil
}

// vertex converts a 1-based vertex token to a node id.
func (p *Parser) vertex(tok Token) (int, error) {
	if tok.Value < 1 || tok.Value > p.vertices {
		return 0, &ParseError{
			Pos:    tok.Pos,
			Err:    ErrInvalidVertex,
			Detail: fmt.Sprintf("%d not in [1, %d]", tok.Value, p.vertices),
		}
	}
	return tok.Value - 1, nil
}

func (p *Parser) finish(tok Token) error {
	if !p.lenient && p.graph.NumEdges() < p.declared {
		return &ParseError{
			Pos:    tok.Pos,
			Err:    ErrMissingEdges,
			Detail: fmt.Sprintf("header declares %d edges, found %d", p.declared, p.graph.NumEdges()),
		}
	}
	p.state = stateDone
	return nil
}

func (p *Parser) unexpected(tok Token, expected string) error {
	return &ParseError{Pos: tok.Pos, Err: ErrUnexpectedToken, Expected: expected, Got: tok.describe()}
}
