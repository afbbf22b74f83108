// Package format renders graphs as PACE text, JSON or YAML.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/vcgraph/graph"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(g *graph.Graph) error
}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "pace":
		return NewPACEEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
