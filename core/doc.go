// Package core defines the word graph: an undirected, unweighted,
// simple graph whose vertices are dictionary words.
//
// What:
//
//   - Graph stores a set of words and a symmetric adjacency relation.
//   - AddVertex is idempotent and reports whether the word was new.
//   - AddEdge links two existing words; it never auto-creates vertices.
//   - Vertices() and NeighborIDs() enumerate in lexicographic order, so
//     every algorithm built on top can be reproducible.
//
// Why:
//
//   - Word ladders: connect words that differ by a single edit.
//   - Any adjacency predicate over strings produces a valid graph here;
//     the predicate itself lives outside this package.
//
// Invariants:
//
//   - No self-loops, no parallel edges, no duplicate vertices.
//   - edge(u,v) ⇔ edge(v,u): adjacency is written to both endpoints.
//
// Concurrency:
//
//   - None. Graph is a batch-then-query structure; callers that share a
//     Graph across goroutines must serialize access externally.
//
// Errors:
//
//   - ErrEmptyWord: an operation received the empty string.
//   - ErrVertexNotFound: an edge or neighbor operation referenced an
//     unknown word.
//   - ErrSelfLoop: AddEdge was asked to link a word to itself.
package core
