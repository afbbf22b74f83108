package format

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dhamidi/vcgraph/graph"
)

// Stats summarizes the degree distribution of a graph.
type Stats struct {
	Nodes          int     `json:"nodes" yaml:"nodes"`
	Edges          int     `json:"edges" yaml:"edges"`
	MinDegree      int     `json:"minDegree" yaml:"minDegree"`
	MaxDegree      int     `json:"maxDegree" yaml:"maxDegree"`
	MeanDegree     float64 `json:"meanDegree" yaml:"meanDegree"`
	MaxDegreeNode  int     `json:"maxDegreeNode" yaml:"maxDegreeNode"`
	Isolated       int     `json:"isolated" yaml:"isolated"`
	SelfLoops      int     `json:"selfLoops" yaml:"selfLoops"`
	DuplicateEdges int     `json:"duplicateEdges" yaml:"duplicateEdges"`
}

// Summarize computes Stats over the live nodes of g. MaxDegreeNode is the
// lowest node id of maximum degree, or -1 for a graph without nodes.
func Summarize(g *graph.Graph) Stats {
	s := Stats{
		Nodes:          g.NumNodes(),
		Edges:          g.NumEdges(),
		MaxDegreeNode:  -1,
		SelfLoops:      g.SelfLoops(),
		DuplicateEdges: g.DuplicateEdges(),
	}
	total := 0
	for i, v := range g.Nodes() {
		d := g.Degree(v)
		total += d
		if i == 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if i == 0 || d > s.MaxDegree {
			s.MaxDegree = d
			s.MaxDegreeNode = v
		}
		if d == 0 {
			s.Isolated++
		}
	}
	if s.Nodes > 0 {
		s.MeanDegree = float64(total) / float64(s.Nodes)
	}
	return s
}

// WriteTable prints s as aligned key/value rows.
func (s Stats) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		key   string
		value any
	}{
		{"nodes", s.Nodes},
		{"edges", s.Edges},
		{"min degree", s.MinDegree},
		{"max degree", s.MaxDegree},
		{"max degree node", s.MaxDegreeNode},
		{"mean degree", fmt.Sprintf("%.3f", s.MeanDegree)},
		{"isolated", s.Isolated},
		{"self-loops", s.SelfLoops},
		{"duplicate edges", s.DuplicateEdges},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row.key, row.value)
	}
	return tw.Flush()
}
