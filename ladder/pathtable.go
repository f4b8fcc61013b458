// File: pathtable.go
// Role: Symmetric shortest-path cache keyed by unordered word pair.
//
// Storage convention:
//   - Each cell is stored once, oriented from the lexicographically
//     smaller word to the larger one; readers get a fresh copy oriented
//     the way they asked. cell(a,b) == reverse(cell(b,a)) holds by
//     construction rather than by double bookkeeping.

package ladder

// pairKey identifies an unordered word pair; lo < hi always.
type pairKey struct {
	lo, hi string
}

// keyOf canonicalizes (a, b) into a pairKey and reports whether the
// pair was flipped to reach canonical orientation.
func keyOf(a, b string) (pairKey, bool) {
	if a <= b {
		return pairKey{lo: a, hi: b}, false
	}

	return pairKey{lo: b, hi: a}, true
}

// PathTable caches the precomputed shortest path between every known
// pair of words. Cells grow as words are inserted; a missing cell means
// the pair is (or was last known to be) disconnected. Self pairs are
// never stored — the diagonal is answered by the Processor directly.
type PathTable struct {
	cells map[pairKey][]string
}

// NewPathTable creates an empty table.
func NewPathTable() *PathTable {
	return &PathTable{cells: make(map[pairKey][]string)}
}

// Set records path as the shortest path from a to b (inclusive of both
// endpoints, in a→b order). The stored cell is a private copy in
// canonical lo→hi orientation; the caller's slice is never retained.
func (t *PathTable) Set(a, b string, path []string) {
	key, flipped := keyOf(a, b)

	cell := make([]string, len(path))
	if flipped {
		for i, w := range path {
			cell[len(path)-1-i] = w
		}
	} else {
		copy(cell, path)
	}
	t.cells[key] = cell
}

// Path returns a copy of the shortest path from a to b, oriented a→b,
// and whether the pair has an entry at all.
func (t *PathTable) Path(a, b string) ([]string, bool) {
	key, flipped := keyOf(a, b)
	cell, ok := t.cells[key]
	if !ok {
		return nil, false
	}

	out := make([]string, len(cell))
	if flipped {
		for i, w := range cell {
			out[len(cell)-1-i] = w
		}
	} else {
		copy(out, cell)
	}

	return out, true
}

// Distance returns the number of edges on the stored a—b path and
// whether the pair has an entry. Orientation does not matter here.
func (t *PathTable) Distance(a, b string) (int, bool) {
	key, _ := keyOf(a, b)
	cell, ok := t.cells[key]
	if !ok {
		return 0, false
	}

	return len(cell) - 1, true
}

// Len returns the number of stored pair cells.
func (t *PathTable) Len() int {
	return len(t.cells)
}
