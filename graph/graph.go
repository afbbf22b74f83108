// Package graph holds the undirected graph built from an instance file.
//
// Nodes are dense integers 0..n-1 fixed at construction. Edges are stored
// with multiplicity so that duplicate edges and self-loops read from a file
// survive intact; use SelfLoops and DuplicateEdges to detect them.
package graph

import (
	"errors"
	"fmt"
	"sort"
)

var ErrNodeOutOfRange = errors.New("node out of range")

// Edge is an undirected edge with U <= V.
type Edge struct {
	U int
	V int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// NewEdge returns the edge between u and v in canonical order.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

type Graph struct {
	order   int
	adj     map[int]map[int]int // node -> neighbor -> multiplicity
	removed map[int]bool
	edges   int
}

// New allocates a graph with nodes 0..n-1 and no edges.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		order:   n,
		adj:     make(map[int]map[int]int),
		removed: make(map[int]bool),
	}
}

// Order returns the node count the graph was allocated with.
func (g *Graph) Order() int {
	return g.order
}

// NumNodes returns the number of nodes that have not been removed.
func (g *Graph) NumNodes() int {
	return g.order - len(g.removed)
}

// NumEdges counts edges including duplicates.
func (g *Graph) NumEdges() int {
	return g.edges
}

func (g *Graph) HasNode(v int) bool {
	return v >= 0 && v < g.order && !g.removed[v]
}

// AddEdge inserts the undirected edge {u, v}.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasNode(u) {
		return fmt.Errorf("add edge %d-%d: node %d: %w", u, v, u, ErrNodeOutOfRange)
	}
	if !g.HasNode(v) {
		return fmt.Errorf("add edge %d-%d: node %d: %w", u, v, v, ErrNodeOutOfRange)
	}
	g.link(u, v)
	if u != v {
		g.link(v, u)
	}
	g.edges++
	return nil
}

func (g *Graph) link(from, to int) {
	m := g.adj[from]
	if m == nil {
		m = make(map[int]int)
		g.adj[from] = m
	}
	m[to]++
}

// HasEdge reports whether at least one edge joins u and v.
func (g *Graph) HasEdge(u, v int) bool {
	return g.adj[u][v] > 0
}

// Multiplicity returns how many parallel edges join u and v.
func (g *Graph) Multiplicity(u, v int) int {
	return g.adj[u][v]
}

// Nodes returns the live nodes in ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, 0, g.NumNodes())
	for v := 0; v < g.order; v++ {
		if !g.removed[v] {
			nodes = append(nodes, v)
		}
	}
	return nodes
}

// Edges returns every edge in ascending (U, V) order. Parallel edges are
// repeated once per occurrence.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for v, count := range nbrs {
			if v < u {
				continue
			}
			for i := 0; i < count; i++ {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// Degree returns the number of edge endpoints at v. A self-loop counts twice.
func (g *Graph) Degree(v int) int {
	degree := 0
	for u, count := range g.adj[v] {
		if u == v {
			degree += 2 * count
		} else {
			degree += count
		}
	}
	return degree
}

// Neighbors returns the distinct neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	nbrs := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		nbrs = append(nbrs, u)
	}
	sort.Ints(nbrs)
	return nbrs
}

// RemoveNode deletes v and every edge incident to it. Removing a node that is
// not present is a no-op.
func (g *Graph) RemoveNode(v int) {
	if !g.HasNode(v) {
		return
	}
	for u, count := range g.adj[v] {
		g.edges -= count
		if u != v {
			delete(g.adj[u], v)
			if len(g.adj[u]) == 0 {
				delete(g.adj, u)
			}
		}
	}
	delete(g.adj, v)
	g.removed[v] = true
}

// SelfLoops counts edges whose endpoints coincide.
func (g *Graph) SelfLoops() int {
	loops := 0
	for v, nbrs := range g.adj {
		loops += nbrs[v]
	}
	return loops
}

// DuplicateEdges counts edges beyond the first between each pair of nodes.
func (g *Graph) DuplicateEdges() int {
	dups := 0
	for u, nbrs := range g.adj {
		for v, count := range nbrs {
			if v >= u && count > 1 {
				dups += count - 1
			}
		}
	}
	return dups
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := New(g.order)
	c.edges = g.edges
	for v := range g.removed {
		c.removed[v] = true
	}
	for u, nbrs := range g.adj {
		m := make(map[int]int, len(nbrs))
		for v, count := range nbrs {
			m[v] = count
		}
		c.adj[u] = m
	}
	return c
}
