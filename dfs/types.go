// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first search over a
// core.Table, including cancellation, pre-/post-order hooks, depth limiting,
// neighbor filtering, forest traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // vertex and all its descendants finished
)

var (
	// ErrTableNil is returned when a nil *core.Table is passed to DFS,
	// TopologicalSort or DetectCycles.
	ErrTableNil = errors.New("dfs: table is nil")

	// ErrStartVertexNotFound indicates that a start or root ID is not in
	// the table.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort when the composed-by
	// relation loops back on itself.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation reports an option constructed with a meaningless value.
	ErrOptionViolation = errors.New("dfs: option violation")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// OnExit is invoked after all descendants of a vertex are finished
	// (post-order), before the vertex is appended to the result Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor is called for each edge before recursing into e.To.
	// Return false to skip it.
	FilterNeighbor func(from, to string, weight float64) bool

	// FullTraversal runs DFS from every unvisited vertex in ID order,
	// covering the whole table (forest traversal).
	FullTraversal bool

	err error
}

// DefaultOptions returns options with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth.
//
//	limit >= 0: visit vertices at most limit hops from the start
//	limit < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips edges for which fn returns false; skipped edges
// are counted in DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(from, to string, weight float64) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited vertex.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its discovery depth from its tree root.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Tree roots have no entry.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}
