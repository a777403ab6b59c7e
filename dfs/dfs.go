// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search, topological ordering and
// cycle detection over the composed-by edges of a core.Table.
//
// Key features:
//   - DFS(t, startID, opts...): traverse from one character or, with
//     WithFullTraversal, the whole table
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrTableNil               if t is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - ErrOptionViolation        if an option carried an invalid value.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/kanjipath/core"
)

// walker holds state during DFS.
type walker struct {
	table *core.Table
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on t from startID, or over every vertex
// when WithFullTraversal is set (startID is then ignored).
// Neighbors are explored in the table's stored edge order (cheapest first).
func DFS(t *core.Table, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input table
	if t == nil {
		return nil, ErrTableNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Single-source mode: verify startID
	if !o.FullTraversal && !t.Has(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	n := t.Len()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	w := &walker{table: t, opts: o, res: res}

	// 5. Traverse: forest or single tree
	roots := []string{startID}
	if o.FullTraversal {
		roots = t.IDs()
	}
	for _, id := range roots {
		if res.Visited[id] {
			continue
		}
		if err := w.traverse(id, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits id at depth and recurses into its neighbors.
func (w *walker) traverse(id string, depth int) error {
	// 1. Cancellation check
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4. Explore neighbors unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		edges, err := w.table.Edges(id)
		if err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: edges of %q: %w", id, err)
		}
		for _, e := range edges {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, e.To, e.Weight) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[e.To] {
				continue
			}
			w.res.Parent[e.To] = id
			if err = w.traverse(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
