// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// word graph, specialized to unit edge weights but written generally:
// substituting a different WeightFunc requires no change to the
// relaxation rule.
//
// What:
//
//   - Dijkstra computes minimum distances from a single source word to
//     all reachable words, plus a predecessor map for reconstruction.
//   - Result.PathTo rebuilds the source→target word sequence.
//   - Ties are broken deterministically: when two frontier words carry
//     the same tentative distance, the lexicographically smaller word is
//     settled first. Repeated runs over the same graph always produce
//     identical paths.
//
// Why unit weights through Dijkstra rather than plain BFS:
//
//   - The relaxation rule (dist[u] + w(u,v) < dist[v]) is the general
//     one; with w ≡ 1 it degenerates to BFS order, and non-unit weights
//     drop in via WithWeightFunc without special-casing.
//
// State:
//
//   - All working state (tentative distances, visited set, predecessor
//     map) is scratch allocated per call. Nothing is stored on the graph
//     and nothing leaks between runs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — lazy-decrease-key min-heap.
//   - Space: O(V + E).
//
// Errors:
//
//   - ErrNilGraph, ErrEmptySource, ErrVertexNotFound on invalid input.
//   - ErrNegativeWeight if the weight function yields a negative value.
//   - ErrBadMaxDistance on an invalid option argument (panic at option
//     construction, mirroring the option contract).
//   - ErrUnreachable from Result.PathTo / Result.DistanceTo when the
//     target was not reached.
package dijkstra
