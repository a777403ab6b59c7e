// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Table, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore characters in non-decreasing hop count from a start character,
//     following "is a component of" edges and ignoring their weights.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor, which also
//     sees the edge weight.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Answer "how much does this character unlock" (Reached, MaxDepth,
//     Layers) for the inspect command and the kanji endpoint.
//   - Provide a reachability oracle independent of the weighted search:
//     a target missing from Depth is exactly an unreachable learning path.
//
// Determinism
//
//	core.Table.Freeze orders each adjacency list by weight and then by
//	target ID, and BFS enqueues neighbors in that order, so the visit
//	sequence of a frozen table is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(table, "木", bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrTableNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, context errors, or hook errors
//	}
//	fmt.Println(res.Reached(), res.MaxDepth())
//
// Errors
//
//   - ErrTableNil             if the table pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if the adjacency lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
