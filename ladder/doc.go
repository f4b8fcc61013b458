// Package ladder orchestrates the word graph: it ingests dictionary
// words, discovers adjacency edges, keeps a precomputed table of
// shortest paths consistent with the graph at every step, and serves
// path and distance queries from that table alone.
//
// What:
//
//   - Processor consumes a WordSource and an AdjacencyRule, growing the
//     core graph one word at a time.
//   - After each inserted word, an incremental precomputation fills the
//     path table for the new word against every existing word — the
//     table is never stale relative to the graph, and there is no
//     separate "finalize" phase.
//   - ShortestPath and ShortestDistance read only from the table.
//
// Why:
//
//   - Word ladders: "cat" → "hat" → "heat" → "wheat".
//   - Spell-checker suggestions, puzzle solvers, dictionary analysis —
//     anything that asks the same path questions repeatedly over a
//     graph that only ever grows.
//
// Recompute policy:
//
//   - Inserting word k can create a shorter route between two words
//     that were already present (every such route passes through k,
//     because all new edges are incident to k). The default
//     PolicyBridgeRepair therefore follows the new word's single-source
//     run with a repair pass that splices strictly-shorter paths
//     through k into affected pairs. PolicyNewVertexOnly skips the
//     repair pass: cheaper per insertion, but entries between
//     pre-existing words may understate connectivity after later
//     insertions. See WithPolicy.
//
// Concurrency:
//
//   - None. The processor is single-threaded and synchronous: a
//     batch-then-query structure, not a live service. Callers must
//     serialize ingestion and queries externally.
//
// Errors:
//
//   - ErrIngestion: the word source could not be read; progress made by
//     earlier calls is retained, never rolled back.
//   - ErrUnknownWord: a query referenced a word never added.
//   - ErrNoPath: both words exist but no chain of edges connects them.
//   - ErrNotPrecomputed: a query arrived before any PopulateGraph call.
package ladder
