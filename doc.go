// Package wordgraph turns a dictionary into a word-adjacency graph and
// answers repeated shortest-path and shortest-distance queries between
// word pairs — the classic "word ladder" structure, precomputed.
//
// 🚀 What is wordgraph?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Core primitives: an undirected, unweighted graph keyed by word
//		• Shortest paths: Dijkstra with lexicographic tie-breaking
//		• A processor that grows the graph one word at a time and keeps a
//		  precomputed table of shortest paths consistent at every step
//		• Pluggable collaborators: dictionary sources and adjacency rules
//
// ✨ Why choose wordgraph?
//
//   - Deterministic by contract – sorted enumeration, stable tie-breaks,
//     repeated queries always return identical paths
//   - Incremental – each inserted word updates only what it can change
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – swap the adjacency rule or word source without
//     touching the core
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — the word graph: vertices, undirected edges, neighbors
//	dijkstra/ — single-source shortest paths with deterministic ties
//	ladder/   — the processor: ingestion, path table, queries
//	words/    — collaborators: file/slice sources, edit-distance rule
//
// Quick ASCII example:
//
//	    cat───hat───heat───wheat
//	     │     │
//	    rat───bat
//
//	"cat" reaches "wheat" in three hops: cat → hat → heat → wheat.
//
// Build the graph once with ladder.Processor.PopulateGraph, then query
// ShortestPath and ShortestDistance as often as you like — queries read
// only from the precomputed table.
//
//	go get github.com/katalvlaran/wordgraph
package wordgraph
