package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/vcgraph/graph"
)

type JSONEncoder struct {
	w     io.Writer
	graph *graph.Graph
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(g *graph.Graph) error {
	e.graph = g
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.graph == nil {
		return nil, fmt.Errorf("json: no graph to encode")
	}
	data, err := json.MarshalIndent(buildDocument(e.graph), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// document is the shared JSON and YAML shape of a graph.
type document struct {
	Nodes []int    `json:"nodes" yaml:"nodes"`
	Edges [][2]int `json:"edges" yaml:"edges,flow"`
	Stats Stats    `json:"stats" yaml:"stats"`
}

func buildDocument(g *graph.Graph) document {
	edges := g.Edges()
	doc := document{
		Nodes: g.Nodes(),
		Edges: make([][2]int, len(edges)),
		Stats: Summarize(g),
	}
	for i, e := range edges {
		doc.Edges[i] = [2]int{e.U, e.V}
	}
	return doc
}
