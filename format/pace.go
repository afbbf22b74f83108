package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/vcgraph/graph"
)

// PACEEncoder writes the "p td" header followed by one 1-based edge per
// line. Removed nodes stay in the header count as isolated vertices so
// that surviving node ids are preserved.
type PACEEncoder struct {
	w     io.Writer
	graph *graph.Graph
}

func NewPACEEncoder(w io.Writer) *PACEEncoder {
	return &PACEEncoder{w: w}
}

func (e *PACEEncoder) Encode(g *graph.Graph) error {
	e.graph = g
	return write(e.w, e)
}

func (e *PACEEncoder) MarshalText() ([]byte, error) {
	g := e.graph
	if g == nil {
		return nil, fmt.Errorf("pace: no graph to encode")
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "p td %d %d\n", g.Order(), g.NumEdges())
	for _, edge := range g.Edges() {
		fmt.Fprintf(&buf, "%d %d\n", edge.U+1, edge.V+1)
	}
	return buf.Bytes(), nil
}
