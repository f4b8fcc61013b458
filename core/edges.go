// File: edges.go
// Role: Edge lifecycle & neighborhood queries.
//
// Determinism:
//   - NeighborIDs() returns unique words sorted lex asc.
// Policy:
//   - Edges are undirected and unweighted; adjacency is written to both
//     endpoints in the same call, so edge(u,v) ⇔ edge(v,u) always holds.
//   - AddEdge never auto-creates vertices: unknown endpoints are an error.

package core

import "sort"

// AddEdge inserts the undirected edge a—b.
//
// Idempotent: adding an existing edge is a no-op. Both endpoints must
// already exist; AddEdge refuses to create vertices implicitly so a
// typo surfaces as an error instead of a phantom word.
//
// Errors:
//   - ErrEmptyWord: a or b is the empty string.
//   - ErrSelfLoop: a == b.
//   - ErrVertexNotFound: either endpoint is unknown.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyWord
	}
	if a == b {
		return ErrSelfLoop
	}
	if _, ok := g.vertices[a]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[b]; !ok {
		return ErrVertexNotFound
	}

	if _, dup := g.adjacency[a][b]; dup {
		return nil // edge already present — no-op
	}

	// Mirror the adjacency under both endpoints.
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the undirected edge a—b exists.
// Unknown or empty endpoints simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adjacency[a][b]

	return ok
}

// NeighborIDs returns the words adjacent to word, sorted lexicographically
// ascending. An isolated vertex yields an empty (non-nil) slice.
//
// Errors:
//   - ErrEmptyWord: word is the empty string.
//   - ErrVertexNotFound: word is not in the graph.
//
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) NeighborIDs(word string) ([]string, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	bucket, ok := g.adjacency[word]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(bucket))
	for w := range bucket {
		out = append(out, w)
	}
	sort.Strings(out)

	return out, nil
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}
