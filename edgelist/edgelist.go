// Package edgelist reads raw labelled edge dumps and relabels their vertices
// densely so they can be written as PACE instances.
//
// The first line of a dump is a header and is skipped. Every other non-blank
// line holds at least three space separated fields; the second and third are
// the endpoint labels. Labels are assigned node ids in order of first
// appearance.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/vcgraph/graph"
)

// LineError reports a malformed dump line.
type LineError struct {
	Line int
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: expected at least 3 fields, got %q", e.Line, e.Text)
}

// Result is a relabelled dump.
type Result struct {
	Graph  *graph.Graph
	Labels []string // node id -> original label
}

func Read(r io.Reader) (*Result, error) {
	ids := make(map[string]int)
	var labels []string
	var edges []graph.Edge

	id := func(label string) int {
		if v, ok := ids[label]; ok {
			return v
		}
		v := len(labels)
		ids[label] = v
		labels = append(labels, label)
		return v
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, &LineError{Line: line, Text: text}
		}
		u := id(fields[1])
		v := id(fields[2])
		edges = append(edges, graph.Edge{U: u, V: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	g := graph.New(len(labels))
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return &Result{Graph: g, Labels: labels}, nil
}
