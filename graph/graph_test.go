package graph

import (
	"errors"
	"slices"
	"testing"
)

func path3() *Graph {
	g := New(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	return g
}

func mustAdd(t *testing.T, g *Graph, u, v int) {
	t.Helper()
	if err := g.AddEdge(u, v); err != nil {
		t.Fatalf("AddEdge(%d, %d): %v", u, v, err)
	}
}

func TestNewAllocatesDenseNodes(t *testing.T) {
	g := New(4)
	if g.Order() != 4 || g.NumNodes() != 4 {
		t.Errorf("Order() = %d, NumNodes() = %d, want 4", g.Order(), g.NumNodes())
	}
	if got := g.Nodes(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Nodes() = %v", got)
	}
	if g.NumEdges() != 0 || len(g.Edges()) != 0 {
		t.Errorf("new graph has edges: %v", g.Edges())
	}
}

func TestAddEdge(t *testing.T) {
	g := path3()
	if g.NumEdges() != 2 {
		t.Errorf("NumEdges() = %d, want 2", g.NumEdges())
	}
	if got := g.Edges(); !slices.Equal(got, []Edge{{0, 1}, {1, 2}}) {
		t.Errorf("Edges() = %v", got)
	}
	if !g.HasEdge(1, 0) {
		t.Error("HasEdge(1, 0) = false")
	}
	if g.HasEdge(0, 2) {
		t.Error("HasEdge(0, 2) = true")
	}
	if g.Degree(1) != 2 {
		t.Errorf("Degree(1) = %d, want 2", g.Degree(1))
	}
	if got := g.Neighbors(1); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("Neighbors(1) = %v", got)
	}
}

func TestAddEdgeOutOfRange(t *testing.T) {
	tests := []struct{ u, v int }{{0, 2}, {-1, 0}, {5, 5}}

	for _, tt := range tests {
		g := New(2)
		if err := g.AddEdge(tt.u, tt.v); !errors.Is(err, ErrNodeOutOfRange) {
			t.Errorf("AddEdge(%d, %d) = %v, want %v", tt.u, tt.v, err, ErrNodeOutOfRange)
		}
		if g.NumEdges() != 0 {
			t.Errorf("AddEdge(%d, %d) changed the edge count", tt.u, tt.v)
		}
	}
}

func TestEdgesAreCanonical(t *testing.T) {
	g := New(3)
	mustAdd(t, g, 2, 0)
	if got := g.Edges(); !slices.Equal(got, []Edge{{0, 2}}) {
		t.Errorf("Edges() = %v", got)
	}
	if e := NewEdge(2, 0); e != (Edge{U: 0, V: 2}) {
		t.Errorf("NewEdge(2, 0) = %v", e)
	}
}

func TestDuplicatesAndSelfLoops(t *testing.T) {
	g := New(2)
	mustAdd(t, g, 0, 1)
	mustAdd(t, g, 1, 0)
	mustAdd(t, g, 1, 1)

	tests := []struct {
		name      string
		got, want int
	}{
		{"NumEdges", g.NumEdges(), 3},
		{"DuplicateEdges", g.DuplicateEdges(), 1},
		{"SelfLoops", g.SelfLoops(), 1},
		{"Multiplicity(0, 1)", g.Multiplicity(0, 1), 2},
		{"Degree(1)", g.Degree(1), 4},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if got := g.Edges(); !slices.Equal(got, []Edge{{0, 1}, {0, 1}, {1, 1}}) {
		t.Errorf("Edges() = %v", got)
	}
}

func TestRemoveNode(t *testing.T) {
	g := path3()
	g.RemoveNode(1)

	if g.HasNode(1) {
		t.Error("HasNode(1) after removal")
	}
	if got := g.Nodes(); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("Nodes() = %v", got)
	}
	if g.NumNodes() != 2 || g.Order() != 3 {
		t.Errorf("NumNodes() = %d, Order() = %d, want 2 and 3", g.NumNodes(), g.Order())
	}
	if g.NumEdges() != 0 || g.Degree(0) != 0 || len(g.Neighbors(2)) != 0 {
		t.Errorf("edges survive removal: %v", g.Edges())
	}

	g.RemoveNode(1)
	if g.NumNodes() != 2 {
		t.Errorf("second removal: NumNodes() = %d", g.NumNodes())
	}
	if err := g.AddEdge(0, 1); !errors.Is(err, ErrNodeOutOfRange) {
		t.Errorf("AddEdge to removed node = %v, want %v", err, ErrNodeOutOfRange)
	}
}

func TestRemoveNodeWithSelfLoop(t *testing.T) {
	g := New(2)
	mustAdd(t, g, 0, 0)
	mustAdd(t, g, 0, 1)
	g.RemoveNode(0)
	if g.NumEdges() != 0 || g.SelfLoops() != 0 {
		t.Errorf("NumEdges() = %d, SelfLoops() = %d, want 0", g.NumEdges(), g.SelfLoops())
	}
}

func TestClone(t *testing.T) {
	g := path3()
	c := g.Clone()
	c.RemoveNode(0)

	if g.NumEdges() != 2 || !g.HasNode(0) {
		t.Error("removing from the clone changed the original")
	}
	if got := c.Edges(); !slices.Equal(got, []Edge{{1, 2}}) {
		t.Errorf("clone Edges() = %v", got)
	}
}

func TestGreedyRemovalTerminates(t *testing.T) {
	// Repeatedly strip the highest-degree node, the way downstream
	// heuristics consume the graph.
	g := New(4)
	for _, e := range []Edge{{0, 1}, {0, 2}, {0, 3}, {2, 3}} {
		mustAdd(t, g, e.U, e.V)
	}

	var cover []int
	for g.NumEdges() > 0 {
		best, bestDeg := -1, -1
		for _, v := range g.Nodes() {
			if d := g.Degree(v); d > bestDeg {
				best, bestDeg = v, d
			}
		}
		cover = append(cover, best)
		g.RemoveNode(best)
	}
	if !slices.Equal(cover, []int{0, 2}) {
		t.Errorf("cover = %v, want [0 2]", cover)
	}
}
