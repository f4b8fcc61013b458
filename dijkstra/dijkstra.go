// Package dijkstra: single-source shortest paths over the word graph.
//
// See doc.go for the algorithm contract; this file holds the runner and
// the priority queue.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Dijkstra computes shortest distances from the source word
// (Options.Source) to all other words in g, along with a predecessor
// map for path reconstruction via Result.PathTo.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Determinism: words are settled by ascending tentative distance, ties
// broken by lexicographic order of the word. Combined with the sorted
// neighbor enumeration of core.Graph, repeated runs over an unchanged
// graph produce byte-identical results.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// 5) Prepare per-run scratch state. All of it is freshly allocated
	//    here: the graph itself carries no search state, so no reset pass
	//    is needed after the run and no state leaks into the next one.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		visited: make(map[string]bool, V),
		pq:      make(wordPQ, 0, V),
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]int64, V),
			Prev:   make(map[string]string, V),
		},
	}

	// 6) Initialize state and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // the input graph; read-only here
	options Options         // configuration (source, weight func, cap)
	visited map[string]bool // words whose distance is finalized
	pq      wordPQ          // lazy-decrease-key min-heap
	res     *Result         // distances and predecessors under construction
}

// init sets every word's tentative distance to +∞, clears predecessors,
// seeds the source at distance 0, and pushes it onto the heap.
func (r *runner) init() {
	for _, w := range r.g.Vertices() {
		r.res.Dist[w] = Unreachable
		r.res.Prev[w] = "" // no predecessor yet
	}
	r.res.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &wordItem{word: r.options.Source, dist: 0})
}

// process repeatedly extracts the minimum-distance unvisited word and
// relaxes its incident edges.
//
// Loop termination:
//
//   - The heap becomes empty (all reachable words settled).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (dist, word) item; lexicographic order of
		//    the word decides between equal distances.
		item := heap.Pop(&r.pq).(*wordItem)

		// 2) Skip stale entries left behind by lazy-decrease-key.
		if r.visited[item.word] {
			continue
		}

		// 3) Beyond the exploration cap: nothing closer remains.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.word] = true
		if err := r.relax(item.word); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each neighbor of u and attempts to improve its
// tentative distance. On improvement it records u as the predecessor
// and pushes a fresh heap entry (lazy-decrease-key: stale entries are
// skipped when popped).
//
// Assumes dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var w, newDist int64
	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}

		w = r.options.Weight(u, v)
		if w < 0 {
			return fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		newDist = r.res.Dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only: equal-length alternatives never
		// displace an already-recorded predecessor, which keeps path
		// selection stable across runs.
		if newDist >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, &wordItem{word: v, dist: newDist})
	}

	return nil
}

// wordItem pairs a word with its tentative distance from the source.
type wordItem struct {
	word string
	dist int64
}

// wordPQ is a min-heap of *wordItem ordered by (dist asc, word lex asc).
// The secondary key is the deterministic tie-break the whole package
// guarantees: among equally distant frontier words, the smallest word
// settles first.
type wordPQ []*wordItem

// Len returns the number of items in the heap.
func (pq wordPQ) Len() int { return len(pq) }

// Less orders by distance, then lexicographically by word.
func (pq wordPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].word < pq[j].word
}

// Swap swaps two elements in the heap.
func (pq wordPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *wordItem.
func (pq *wordPQ) Push(x interface{}) { *pq = append(*pq, x.(*wordItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *wordPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
