// File: processor.go
// Role: Ingestion, incremental precomputation, and the query surface.

package ladder

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
)

// Processor owns the word graph and its path table exclusively; nothing
// outside this type mutates either. It is single-threaded by contract
// (see package doc).
type Processor struct {
	graph  *core.Graph
	table  *PathTable
	rule   AdjacencyRule
	policy Policy

	// ran flips once any precomputation has run (first inserted word, or
	// first PopulateGraph call completing); queries before that return
	// ErrNotPrecomputed.
	ran bool
}

// New creates a Processor around the given adjacency rule.
//
// Errors:
//   - ErrNilRule: rule is nil.
func New(rule AdjacencyRule, opts ...Option) (*Processor, error) {
	if rule == nil {
		return nil, ErrNilRule
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Processor{
		graph:  core.NewGraph(),
		table:  NewPathTable(),
		rule:   rule,
		policy: cfg.Policy,
	}, nil
}

// PopulateGraph pulls every word from src and grows the graph, one word
// at a time, in source order:
//
//  1. Insert the word as a vertex; words already present (from this
//     call or any earlier one) are skipped and not counted.
//  2. Evaluate the adjacency rule once against each word already in the
//     graph — including ones inserted earlier in this same call — and
//     add the undirected edge on a match.
//  3. Run the incremental shortest-path precomputation for the new
//     word, so the path table is consistent with the graph after every
//     single insertion.
//
// Returns the number of words actually inserted. Repeated calls are
// additive and safe: ingestion is idempotent per word. A source read
// failure wraps ErrIngestion; vertices added by earlier calls remain.
//
// Complexity per inserted word: O(V) rule evaluations plus one
// single-source run, plus an O(V²) repair pass under the default
// policy. Bulk ingestion cost therefore grows with graph size.
func (p *Processor) PopulateGraph(src WordSource) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}

	words, err := src.Words()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIngestion, err)
	}

	count := 0
	for _, word := range words {
		added, err := p.graph.AddVertex(word)
		if err != nil {
			// A misbehaving source handed us an invalid word. Everything
			// inserted so far in this call stays.
			return count, fmt.Errorf("%w: %v", ErrIngestion, err)
		}
		if !added {
			continue // duplicate — not counted
		}

		// Discover edges against all pre-existing words. The rule is
		// symmetric, so one evaluation per pair suffices.
		for _, other := range p.graph.Vertices() {
			if other == word {
				continue
			}
			if p.rule(word, other) {
				if err = p.graph.AddEdge(word, other); err != nil {
					return count, fmt.Errorf("ladder: edge %s—%s: %w", word, other, err)
				}
			}
		}
		count++

		if err = p.precompute(word); err != nil {
			return count, err
		}
		// At least one precomputation has run: the table is live even if
		// a later word in this same call fails to ingest.
		p.ran = true
	}

	p.ran = true

	return count, nil
}

// precompute runs one single-source shortest-path search from the newly
// inserted word over the current graph and folds the results into the
// path table.
//
// The new word's cells against every reached word are always written.
// Under PolicyBridgeRepair, a second pass repairs pre-existing pairs
// the new word strictly improves: any path created by this insertion
// must traverse the new word (all new edges are incident to it), so the
// candidate distance for a pair (u, v) is exactly
// dist(u, word) + dist(word, v). Equal-length candidates never replace
// a stored cell, keeping repeated queries deterministic.
func (p *Processor) precompute(word string) error {
	res, err := dijkstra.Dijkstra(p.graph, dijkstra.Source(word))
	if err != nil {
		return fmt.Errorf("ladder: precomputation for %q: %w", word, err)
	}

	vertices := p.graph.Vertices()

	// 1) New word's row: one cell per reached word. Unreached words
	//    simply get no cell, which the query layer reports as ErrNoPath.
	for _, u := range vertices {
		if u == word || !res.Reached(u) {
			continue
		}
		path, perr := res.PathTo(u)
		if perr != nil {
			return fmt.Errorf("ladder: precomputation for %q: %w", word, perr)
		}
		p.table.Set(word, u, path)
	}

	if p.policy == PolicyNewVertexOnly {
		return nil
	}

	// 2) Repair pass: splice strictly-shorter routes through the new
	//    word into pre-existing pairs, and bridge pairs it newly connects.
	for i := 0; i < len(vertices); i++ {
		u := vertices[i]
		if u == word || !res.Reached(u) {
			continue
		}
		du := res.Dist[u]
		for j := i + 1; j < len(vertices); j++ {
			v := vertices[j]
			if v == word || !res.Reached(v) {
				continue
			}

			candidate := du + res.Dist[v]
			if cur, ok := p.table.Distance(u, v); ok && int64(cur) <= candidate {
				continue // stored entry is at least as short — keep it
			}

			spliced, serr := splicePath(res, u, v)
			if serr != nil {
				return fmt.Errorf("ladder: precomputation for %q: %w", word, serr)
			}
			p.table.Set(u, v, spliced)
		}
	}

	return nil
}

// splicePath builds the u → res.Source → v word sequence from the two
// source-rooted paths, dropping the duplicated middle word.
func splicePath(res *dijkstra.Result, u, v string) ([]string, error) {
	left, err := res.PathTo(u) // source → u
	if err != nil {
		return nil, err
	}
	right, err := res.PathTo(v) // source → v
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(left)+len(right)-1)
	for i := len(left) - 1; i >= 0; i-- { // u → source
		out = append(out, left[i])
	}
	out = append(out, right[1:]...) // source → v, minus source itself

	return out, nil
}

// ShortestPath returns the words forming the shortest path from a to b,
// inclusive of both endpoints, as a fresh copy the caller may keep.
//
// Errors:
//   - ErrNotPrecomputed: no precomputation has run yet (PopulateGraph
//     was never called, or never got as far as one insertion).
//   - ErrUnknownWord: a or b was never added to the graph.
//   - ErrNoPath: both words exist but no chain of edges connects them
//     (under PolicyNewVertexOnly this may also mean "not connected at
//     the time the later word was inserted" — see Policy docs).
func (p *Processor) ShortestPath(a, b string) ([]string, error) {
	if !p.ran {
		return nil, ErrNotPrecomputed
	}
	if !p.graph.HasVertex(a) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, a)
	}
	if !p.graph.HasVertex(b) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, b)
	}

	// Diagonal: the path from a word to itself is the word alone.
	if a == b {
		return []string{a}, nil
	}

	path, ok := p.table.Path(a, b)
	if !ok {
		return nil, fmt.Errorf("%w: %q and %q", ErrNoPath, a, b)
	}

	return path, nil
}

// ShortestDistance returns the number of edges on the shortest path
// from a to b; 0 when a == b. Propagates the same errors as
// ShortestPath.
func (p *Processor) ShortestDistance(a, b string) (int, error) {
	path, err := p.ShortestPath(a, b)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// WordCount returns the number of words currently in the graph.
func (p *Processor) WordCount() int {
	return p.graph.VertexCount()
}

// HasWord reports whether word has been ingested.
func (p *Processor) HasWord(word string) bool {
	return p.graph.HasVertex(word)
}
