// File: vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns words sorted lexicographically ascending.

package core

import "sort"

// AddVertex inserts word into the graph if absent.
//
// Returns:
//   - bool: true iff the word was newly inserted; false means the word
//     was already present and the call was a no-op.
//   - error: ErrEmptyWord if word == "".
//
// Idempotent: adding an existing word never mutates the graph.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(word string) (bool, error) {
	if word == "" {
		return false, ErrEmptyWord
	}

	if _, exists := g.vertices[word]; exists {
		return false, nil // duplicate — signal "not added"
	}

	// Register the word and bootstrap its adjacency bucket so edge and
	// neighbor operations can rely on the bucket existing.
	g.vertices[word] = struct{}{}
	g.adjacency[word] = make(map[string]struct{})

	return true, nil
}

// HasVertex reports whether word exists in the graph (empty word ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(word string) bool {
	if word == "" {
		return false
	}
	_, ok := g.vertices[word]

	return ok
}

// Vertices returns all words in lexicographic ascending order.
//
// The sorted order is a contract: higher-level algorithms rely on it
// for reproducible iteration and stable test assertions.
// Complexity: O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for w := range g.vertices {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the current number of words in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}
