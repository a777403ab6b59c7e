// SPDX-License-Identifier: MIT
//
// Package core provides the vertex table that every kanjipath component reads:
// one fixed-field record per character plus its weighted, directed
// composed-by edge list.
//
// An edge A→B means "B is built from A", so A should be learned first.
//
// Lifecycle:
//
//	t := core.NewTable()
//	_ = t.AddVertex("木", core.Attributes{Strokes: 4, Grade: 1, JLPT: 5})
//	_ = t.AddVertex("林", core.Attributes{Strokes: 8, Grade: 1, JLPT: 4})
//	_ = t.AddEdge("木", "林", 256)
//	t.Freeze() // read-only from here on
//
// Guarantees:
//
//   - Unique, non-empty IDs (ErrDuplicateVertex, ErrEmptyVertexID).
//   - Non-negative finite weights (ErrNegativeWeight).
//   - No self-loops (ErrSelfLoop).
//   - Edges only between known vertices (ErrVertexNotFound).
//   - After Freeze, edge lists are sorted by ascending weight and any
//     mutation returns ErrFrozen.
//
// Thread safety:
//
//   - All methods are safe for concurrent use. A frozen table can be shared
//     across any number of concurrent shortest-path queries.
//
// Non-goals:
//
//   - No vertex or edge removal and no persistence. The table is built once
//     per process run by package builder.
package core
