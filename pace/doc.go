// Package pace reads graph instances in the PACE "td" text format.
//
// # Format
//
//	c comment lines may appear anywhere
//	p td <vertices> <edges>
//	<u> <v>
//	...
//
// Vertices in the file are numbered from 1; the returned graph numbers nodes
// from 0. The header must appear exactly once, every vertex must lie in
// [1, vertices] and the file must hold exactly the declared number of edges.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│  io.Reader  │────▶│    Lexer    │────▶│   Parser    │────▶ *graph.Graph
//	│   (bytes)   │     │  (tokens)   │     │  (states)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// The Lexer is pull based: each NextToken call returns one Token by value.
// Comments and runs of spaces are consumed by the lexer and never reach the
// parser. The Parser is a state machine over
//
//	Start → Descriptor → VertexCount → EdgeCount → HeaderEnd → Edges
//
// and builds the graph as edges arrive. The first violation aborts the parse
// with a *LexError or *ParseError; each wraps one of the Err* sentinels so
// callers can use errors.Is.
//
// # Options
//
// By default duplicate edges and self-loops are accepted and a file with
// fewer edges than declared is rejected. WithStrictSimple and
// WithLenientEdgeCount change those two rules.
package pace
