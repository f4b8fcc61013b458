package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
)

// ExampleDijkstra runs a unit-weight search over a small word chain and
// reconstructs the path to the far end.
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, w := range []string{"cat", "hat", "heat", "wheat"} {
		_, _ = g.AddVertex(w)
	}
	_ = g.AddEdge("cat", "hat")
	_ = g.AddEdge("hat", "heat")
	_ = g.AddEdge("heat", "wheat")

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("cat"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.PathTo("wheat")
	fmt.Println(path)
	fmt.Println("hops:", res.Dist["wheat"])
	// Output:
	// [cat hat heat wheat]
	// hops: 3
}

// ExampleDijkstra_tieBreak shows the lexicographic tie-break: two
// equally short routes exist, and the one through the smaller middle
// word wins, regardless of insertion order.
func ExampleDijkstra_tieBreak() {
	g := core.NewGraph()
	for _, w := range []string{"src", "beta", "alpha", "dst"} {
		_, _ = g.AddVertex(w)
	}
	_ = g.AddEdge("src", "beta")
	_ = g.AddEdge("beta", "dst")
	_ = g.AddEdge("src", "alpha")
	_ = g.AddEdge("alpha", "dst")

	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("src"))
	path, _ := res.PathTo("dst")
	fmt.Println(path)
	// Output:
	// [src alpha dst]
}
