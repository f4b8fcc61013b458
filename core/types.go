// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors, and the NewGraph constructor.
// Determinism:
//   - All enumeration surfaces (Vertices, NeighborIDs) sort lex asc.
// Concurrency:
//   - Intentionally lock-free: the graph is built once, queried after.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyWord indicates an operation received the empty string as a word.
	ErrEmptyWord = errors.New("core: word is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent word.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an attempt to add an edge from a word to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is the in-memory word graph: undirected, unweighted, simple.
//
// Vertices are identified by their word (exact string match). Adjacency
// is stored mirrored — adjacency[u][v] exists iff adjacency[v][u] does —
// so neighbor lookups are O(1) from either endpoint.
//
// Graph performs no internal locking: it is a batch-then-query
// structure, and callers using it from multiple goroutines must
// serialize ingestion and queries externally.
type Graph struct {
	// vertices is the word catalog.
	vertices map[string]struct{}

	// adjacency[u][v] = struct{}{} marks an undirected edge u—v,
	// recorded under both endpoints.
	adjacency map[string]map[string]struct{}

	// edgeCount tracks distinct undirected edges (each counted once).
	edgeCount int
}

// NewGraph creates an empty word graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
