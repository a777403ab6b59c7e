// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/kanjipath/core"
	"github.com/katalvlaran/kanjipath/dijkstra"
)

// ExampleDijkstra demonstrates that the cheaper multi-step route wins over
// the direct-looking one.
func ExampleDijkstra() {
	// 1) Build a four-character table: A→B(1), A→C(4), B→C(1), C→D(1).
	t := core.NewTable()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = t.AddVertex(id, core.Attributes{Strokes: 1})
	}
	_ = t.AddEdge("A", "B", 1)
	_ = t.AddEdge("A", "C", 4)
	_ = t.AddEdge("B", "C", 1)
	_ = t.AddEdge("C", "D", 1)
	t.Freeze()

	// 2) Run from "A".
	res, err := dijkstra.Dijkstra(t, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) D is reached through C, and C through B.
	fmt.Printf("dist[D]=%g prev[D]=%s prev[C]=%s\n", res.Dist["D"], res.Prev["D"], res.Prev["C"])
	// Output: dist[D]=3 prev[D]=C prev[C]=B
}

// ExampleWithTarget stops the search once the target is settled.
func ExampleWithTarget() {
	t := core.NewTable()
	for _, id := range []string{"一", "二", "三"} {
		_ = t.AddVertex(id, core.Attributes{Strokes: 1})
	}
	_ = t.AddEdge("一", "二", 1)
	_ = t.AddEdge("二", "三", 1)
	t.Freeze()

	res, _ := dijkstra.Dijkstra(t, dijkstra.Source("一"), dijkstra.WithTarget("二"))
	fmt.Println(res.Dist["二"], res.Stats.Settled)
	// Output: 1 2
}
