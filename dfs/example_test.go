// SPDX-License-Identifier: MIT
package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kanjipath/core"
	"github.com/katalvlaran/kanjipath/dfs"
)

// ExampleTopologicalSort orders a few characters so that every component is
// learned before the characters built from it.
//
//	一 ──▶ 二 ──▶ 三
//	木 ──▶ 林 ──▶ 森
//	└────────────▲
func ExampleTopologicalSort() {
	tb := core.NewTable()
	for _, id := range []string{"一", "二", "三", "木", "林", "森"} {
		_ = tb.AddVertex(id, core.Attributes{Strokes: 1})
	}
	_ = tb.AddEdge("一", "二", 1)
	_ = tb.AddEdge("二", "三", 1)
	_ = tb.AddEdge("木", "林", 1)
	_ = tb.AddEdge("林", "森", 1)
	_ = tb.AddEdge("木", "森", 2)
	tb.Freeze()

	order, err := dfs.TopologicalSort(tb, dfs.WithRoots("木"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " "))
	// Output:
	// 木 林 森
}
