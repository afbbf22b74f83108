package format

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/vcgraph/graph"
)

type YAMLEncoder struct {
	w     io.Writer
	graph *graph.Graph
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(g *graph.Graph) error {
	e.graph = g
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	if e.graph == nil {
		return nil, fmt.Errorf("yaml: no graph to encode")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(e.graph)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
