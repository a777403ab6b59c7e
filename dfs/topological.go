// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/kanjipath/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx   context.Context
	roots []string
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRoots restricts the ordering to the characters reachable from ids.
func WithRoots(ids ...string) TopoOption {
	return func(o *topoOptions) {
		o.roots = append(o.roots, ids...)
	}
}

type topoSorter struct {
	table *core.Table
	ctx   context.Context
	state map[string]int
	stack []string
	order []string
}

// TopologicalSort returns a learning order: for every edge A → B, A (the
// component) comes before B (the character built from it).
//
// Steps:
//  1. Validate the table and roots.
//  2. DFS from each root (every ID in ascending order by default).
//  3. A Gray → Gray edge is a cycle; report it with its members.
//  4. Reverse the post-order.
//
// Errors: ErrTableNil, ErrStartVertexNotFound for an unknown root,
// ErrCycleDetected, ctx.Err().
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(t *core.Table, options ...TopoOption) ([]string, error) {
	// 1. Validate
	if t == nil {
		return nil, ErrTableNil
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&o)
	}
	roots := o.roots
	if len(roots) == 0 {
		roots = t.IDs()
	}
	for _, id := range roots {
		if !t.Has(id) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, id)
		}
	}

	// 2. Drive DFS from every unfinished root
	s := &topoSorter{
		table: t,
		ctx:   o.ctx,
		state: make(map[string]int, t.Len()),
		order: make([]string, 0, t.Len()),
	}
	for _, id := range roots {
		if s.state[id] == White {
			if err := s.visit(id); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *topoSorter) visit(id string) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	s.state[id] = Gray
	s.stack = append(s.stack, id)

	edges, err := s.table.Edges(id)
	if err != nil {
		return fmt.Errorf("dfs: edges of %q: %w", id, err)
	}
	for _, e := range edges {
		switch s.state[e.To] {
		case White:
			if err = s.visit(e.To); err != nil {
				return err
			}
		case Gray:
			// 3. Back-edge closes a cycle on the current stack
			cycle := append(s.stack[indexOf(s.stack, e.To):], e.To)

			return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(cycle, " → "))
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
