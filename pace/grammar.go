package pace

import (
	"bytes"
	_ "embed"
	"fmt"

	"golang.org/x/exp/ebnf"
)

// Start is the root production of the embedded grammar.
const Start = "File"

//go:embed pace.ebnf
var grammarSource []byte

// GrammarSource returns the EBNF text describing the instance format.
func GrammarSource() []byte {
	return bytes.Clone(grammarSource)
}

// Grammar parses and verifies the embedded grammar. Runs of spaces and the
// end-of-file terminator of a final edge line are lexer concerns the grammar
// leaves implicit.
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("pace.ebnf", bytes.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(grammar, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return grammar, nil
}
