// Package dijkstra_test contains unit tests for the single-source
// shortest-path computation: input validation, unit-weight correctness,
// deterministic tie-breaking, custom weight functions, MaxDistance, and
// disconnected graphs.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
)

// buildGraph constructs an undirected graph from a list of word pairs,
// adding vertices on the fly.
func buildGraph(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, _ = g.AddVertex(e[0])
		_, _ = g.AddVertex(e[1])
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs, in documented priority order.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph()
	_, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// Empty source wins over the nil graph, per documented order.
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source("cat"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("zzz"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := buildGraph(t, [][2]string{{"cat", "hat"}})
	_, err := dijkstra.Dijkstra(g,
		dijkstra.Source("cat"),
		dijkstra.WithWeightFunc(func(_, _ string) int64 { return -1 }),
	)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_BadMaxDistancePanics(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Unit-weight correctness and path reconstruction.
// ------------------------------------------------------------------------

func TestDijkstra_Chain(t *testing.T) {
	// cat—hat—heat—wheat: distances count hops.
	g := buildGraph(t, [][2]string{{"cat", "hat"}, {"hat", "heat"}, {"heat", "wheat"}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"))
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist["cat"])
	assert.Equal(t, int64(1), res.Dist["hat"])
	assert.Equal(t, int64(2), res.Dist["heat"])
	assert.Equal(t, int64(3), res.Dist["wheat"])

	path, err := res.PathTo("wheat")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "hat", "heat", "wheat"}, path)

	// Source path is the single-word sequence.
	path, err = res.PathTo("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, path)
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("kit")

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("kit"))
	require.NoError(t, err)
	assert.True(t, res.Reached("kit"))

	d, err := res.DistanceTo("kit")
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)
}

func TestDijkstra_Disconnected(t *testing.T) {
	g := buildGraph(t, [][2]string{{"cat", "hat"}})
	_, _ = g.AddVertex("dog")

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"))
	require.NoError(t, err)

	assert.False(t, res.Reached("dog"))
	assert.Equal(t, dijkstra.Unreachable, res.Dist["dog"])

	_, err = res.PathTo("dog")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = res.DistanceTo("dog")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

// ------------------------------------------------------------------------
// 3. Determinism: lexicographic tie-breaking and repeat stability.
// ------------------------------------------------------------------------

func TestDijkstra_LexicographicTieBreak(t *testing.T) {
	// Diamond: src—{alpha, beta}—dst. Both routes have length 2; the
	// predecessor of dst must come from the lexicographically smaller
	// middle word, "alpha".
	g := buildGraph(t, [][2]string{
		{"src", "beta"}, // insertion order deliberately favors beta
		{"beta", "dst"},
		{"src", "alpha"},
		{"alpha", "dst"},
	})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("src"))
	require.NoError(t, err)

	path, err := res.PathTo("dst")
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "alpha", "dst"}, path)
}

func TestDijkstra_RepeatedRunsIdentical(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"cat", "hat"}, {"cat", "rat"}, {"rat", "bat"}, {"hat", "bat"},
		{"bat", "bad"}, {"bad", "bed"},
	})

	first, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"))
		require.NoError(t, err)
		assert.Equal(t, first.Dist, again.Dist, "run %d distances diverged", i)
		assert.Equal(t, first.Prev, again.Prev, "run %d predecessors diverged", i)
	}
}

// ------------------------------------------------------------------------
// 4. Options: custom weights and MaxDistance.
// ------------------------------------------------------------------------

func TestDijkstra_CustomWeightFunc(t *testing.T) {
	// Triangle cat—hat—bat—cat; make the direct cat—bat edge expensive so
	// the two-hop route wins under the custom metric.
	g := buildGraph(t, [][2]string{{"cat", "hat"}, {"hat", "bat"}, {"cat", "bat"}})

	weight := func(u, v string) int64 {
		if (u == "cat" && v == "bat") || (u == "bat" && v == "cat") {
			return 5
		}

		return 1
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"), dijkstra.WithWeightFunc(weight))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Dist["bat"])

	path, err := res.PathTo("bat")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "hat", "bat"}, path)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildGraph(t, [][2]string{{"cat", "hat"}, {"hat", "heat"}, {"heat", "wheat"}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)

	assert.True(t, res.Reached("heat"))
	assert.False(t, res.Reached("wheat"), "words beyond the cap must stay unreached")

	var unreached error
	_, unreached = res.PathTo("wheat")
	assert.True(t, errors.Is(unreached, dijkstra.ErrUnreachable))
}
