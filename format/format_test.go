package format

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/vcgraph/graph"
	"github.com/dhamidi/vcgraph/pace"
)

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(4)
	for _, e := range []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 1, V: 3}} {
		if err := g.AddEdge(e.U, e.V); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func encode(t *testing.T, enc func(*bytes.Buffer) Encoder, g *graph.Graph) string {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf).Encode(g); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf.String()
}

func newPACE(buf *bytes.Buffer) Encoder { return NewPACEEncoder(buf) }

func TestPACEEncoder(t *testing.T) {
	removed := sample(t)
	removed.RemoveNode(0)

	tests := []struct {
		name string
		g    *graph.Graph
		want string
	}{
		{"full", sample(t), "p td 4 3\n1 2\n2 3\n2 4\n"},
		{"after removal", removed, "p td 4 2\n2 3\n2 4\n"},
		{"empty", graph.New(0), "p td 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := encode(t, newPACE, tt.g)
			if out != tt.want {
				t.Fatalf("output = %q, want %q", out, tt.want)
			}

			parsed, err := pace.Parse(strings.NewReader(out))
			if err != nil {
				t.Fatalf("parse encoded output: %v", err)
			}
			if parsed.Order() != tt.g.Order() {
				t.Errorf("Order() = %d, want %d", parsed.Order(), tt.g.Order())
			}
			if !slices.Equal(parsed.Edges(), tt.g.Edges()) {
				t.Errorf("Edges() = %v, want %v", parsed.Edges(), tt.g.Edges())
			}
		})
	}
}

func TestJSONEncoder(t *testing.T) {
	out := encode(t, func(buf *bytes.Buffer) Encoder { return NewJSONEncoder(buf) }, sample(t))

	var doc struct {
		Nodes []int    `json:"nodes"`
		Edges [][2]int `json:"edges"`
		Stats Stats    `json:"stats"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if !slices.Equal(doc.Nodes, []int{0, 1, 2, 3}) {
		t.Errorf("nodes = %v", doc.Nodes)
	}
	if !slices.Equal(doc.Edges, [][2]int{{0, 1}, {1, 2}, {1, 3}}) {
		t.Errorf("edges = %v", doc.Edges)
	}
	if doc.Stats.MaxDegree != 3 {
		t.Errorf("stats.maxDegree = %d, want 3", doc.Stats.MaxDegree)
	}
}

func TestYAMLEncoder(t *testing.T) {
	out := encode(t, func(buf *bytes.Buffer) Encoder { return NewYAMLEncoder(buf) }, sample(t))
	if !strings.Contains(out, "edges: [[0, 1], [1, 2], [1, 3]]") {
		t.Errorf("edges not in flow style:\n%s", out)
	}

	var doc struct {
		Nodes []int `yaml:"nodes"`
		Stats Stats `yaml:"stats"`
	}
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if !slices.Equal(doc.Nodes, []int{0, 1, 2, 3}) {
		t.Errorf("nodes = %v", doc.Nodes)
	}
	if doc.Stats.MaxDegreeNode != 1 {
		t.Errorf("stats.maxDegreeNode = %d, want 1", doc.Stats.MaxDegreeNode)
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range []string{"pace", "json", "yaml"} {
		enc, err := NewEncoder(name, &bytes.Buffer{})
		if err != nil || enc == nil {
			t.Errorf("NewEncoder(%q) = %v, %v", name, enc, err)
		}
	}
	_, err := NewEncoder("dot", &bytes.Buffer{})
	if err == nil || err.Error() != "unknown format: dot" {
		t.Errorf("NewEncoder(dot) error = %v", err)
	}
}

func TestEncodeWithoutGraph(t *testing.T) {
	if _, err := NewJSONEncoder(&bytes.Buffer{}).MarshalText(); err == nil {
		t.Error("MarshalText without a graph: expected error, got nil")
	}
}

func TestSummarize(t *testing.T) {
	g := sample(t)
	if err := g.AddEdge(2, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(3, 3); err != nil {
		t.Fatal(err)
	}

	want := Stats{
		Nodes:          4,
		Edges:          5,
		MinDegree:      1,
		MaxDegree:      4,
		MeanDegree:     2.5,
		MaxDegreeNode:  1,
		Isolated:       0,
		SelfLoops:      1,
		DuplicateEdges: 1,
	}
	if got := Summarize(g); got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(graph.New(0))
	if s.MaxDegreeNode != -1 || s.MeanDegree != 0 {
		t.Errorf("Summarize(empty) = %+v", s)
	}
}

func TestStatsWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Summarize(sample(t)).WriteTable(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, line := range []string{"max degree       3\n", "mean degree      1.500\n"} {
		if !strings.Contains(out, line) {
			t.Errorf("table missing %q:\n%s", line, out)
		}
	}
}
