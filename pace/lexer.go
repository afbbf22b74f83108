package pace

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// MaxNumber is the largest value a number token may carry.
const MaxNumber = math.MaxInt32

// Lexer turns an instance file into tokens, one per NextToken call.
//
// It holds a single byte of lookahead read from a buffered reader. line and
// column always describe the lookahead byte.
type Lexer struct {
	r      *bufio.Reader
	file   string
	ch     byte
	eof    bool
	line   int
	column int
}

// NewLexer returns a lexer reading from r. file is used in positions only.
func NewLexer(r io.Reader, file string) (*Lexer, error) {
	l := &Lexer{
		r:      bufio.NewReader(r),
		file:   file,
		line:   1,
		column: 1,
	}
	if err := l.read(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) read() error {
	ch, err := l.r.ReadByte()
	if err == io.EOF {
		l.ch = 0
		l.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", l.Position(), err)
	}
	l.ch = ch
	return nil
}

// advance consumes the lookahead byte.
func (l *Lexer) advance() error {
	if l.eof {
		return nil
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return l.read()
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// NextToken returns the next token. Once the input is exhausted it keeps
// returning TokenEOF.
func (l *Lexer) NextToken() (Token, error) {
	for {
		start := l.Position()
		if l.eof {
			return Token{Kind: TokenEOF, Pos: start}, nil
		}

		switch ch := l.ch; {
		case ch == 'c':
			if err := l.skipComment(); err != nil {
				return Token{}, err
			}
		case ch == ' ':
			if err := l.skipSpaces(); err != nil {
				return Token{}, err
			}
		case ch == '\n':
			if err := l.advance(); err != nil {
				return Token{}, err
			}
			return Token{Kind: TokenEOL, Pos: start}, nil
		case ch == 'p':
			return l.scanProblem(start)
		case ch == 't':
			return l.scanDescriptor(start)
		case isDigit(ch):
			return l.scanNumber(start)
		default:
			return Token{}, &LexError{Pos: start, Char: ch, Message: quoteChar(ch), Err: ErrUnexpectedChar}
		}
	}
}

// skipComment consumes a comment through its terminating newline.
func (l *Lexer) skipComment() error {
	for !l.eof {
		nl := l.ch == '\n'
		if err := l.advance(); err != nil {
			return err
		}
		if nl {
			break
		}
	}
	return nil
}

func (l *Lexer) skipSpaces() error {
	for !l.eof && l.ch == ' ' {
		if err := l.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lexer) scanProblem(start Position) (Token, error) {
	if err := l.advance(); err != nil {
		return Token{}, err
	}
	if l.eof || l.ch != ' ' {
		return Token{}, &LexError{
			Pos:     l.Position(),
			Char:    l.ch,
			Message: fmt.Sprintf("expected space after 'p', got %s", l.describeLookahead()),
			Err:     ErrUnexpectedChar,
		}
	}
	if err := l.advance(); err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenProblem, Pos: start}, nil
}

func (l *Lexer) scanDescriptor(start Position) (Token, error) {
	var word []byte
	for !l.eof && l.ch != ' ' && l.ch != '\n' {
		word = append(word, l.ch)
		if err := l.advance(); err != nil {
			return Token{}, err
		}
	}
	if string(word) != "td" {
		return Token{}, &LexError{
			Pos:     start,
			Char:    word[0],
			Message: fmt.Sprintf("expected \"td\", got %q", word),
			Err:     ErrMalformedDescriptor,
		}
	}
	return Token{Kind: TokenDescriptor, Pos: start}, nil
}

func (l *Lexer) scanNumber(start Position) (Token, error) {
	var value int64
	for !l.eof && isDigit(l.ch) {
		value = value*10 + int64(l.ch-'0')
		if value > MaxNumber {
			return Token{}, &LexError{
				Pos:     start,
				Char:    l.ch,
				Message: fmt.Sprintf("value exceeds %d", MaxNumber),
				Err:     ErrNumberOverflow,
			}
		}
		if err := l.advance(); err != nil {
			return Token{}, err
		}
	}
	if !l.eof && l.ch != ' ' && l.ch != '\n' {
		return Token{}, &LexError{
			Pos:     l.Position(),
			Char:    l.ch,
			Message: fmt.Sprintf("expected digit, space, end of line or end of file, got %s", quoteChar(l.ch)),
			Err:     ErrMalformedNumber,
		}
	}
	return Token{Kind: TokenNumber, Pos: start, Value: int(value)}, nil
}

func (l *Lexer) describeLookahead() string {
	if l.eof {
		return "end of file"
	}
	return quoteChar(l.ch)
}
