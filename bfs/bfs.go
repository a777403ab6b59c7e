// SPDX-License-Identifier: MIT
package bfs

import (
	"fmt"

	"github.com/katalvlaran/kanjipath/core"
)

// entry is one queued character.
type entry struct {
	id    string
	depth int
}

// search is the mutable state of one BFS call.
type search struct {
	table *core.Table
	set   settings
	queue []entry
	head  int
	res   *Result
}

// BFS explores t from startID in hop order, ignoring edge weights.
//
// Steps:
//  1. Reject a nil table, bad options and an unknown start.
//  2. Queue the start at depth 0.
//  3. Pop, visit, then queue every kept and unseen neighbor within MaxDepth.
//
// The Result is returned alongside a hook or context error and holds what
// was visited up to that point.
func BFS(t *core.Table, startID string, opts ...Option) (*Result, error) {
	// 1. Validate
	if t == nil {
		return nil, ErrTableNil
	}
	set := newSettings(opts)
	if set.err != nil {
		return nil, set.err
	}
	if !t.Has(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 2. Seed
	n := t.Len()
	s := &search{
		table: t,
		set:   set,
		queue: make([]entry, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	s.discover(startID, 0, "")

	// 3. Drain
	return s.res, s.run()
}

func (s *search) run() error {
	for s.head < len(s.queue) {
		if err := s.set.ctx.Err(); err != nil {
			return err
		}

		cur := s.queue[s.head]
		s.head++
		if s.set.onDequeue != nil {
			s.set.onDequeue(cur.id, cur.depth)
		}

		s.res.Order = append(s.res.Order, cur.id)
		if s.set.onVisit != nil {
			if err := s.set.onVisit(cur.id, cur.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
			}
		}

		if s.set.maxDepth > 0 && cur.depth >= s.set.maxDepth {
			continue
		}
		if err := s.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

// expand queues the unseen neighbors of cur that pass the filter.
// A hook may have canceled the context during the visit.
func (s *search) expand(cur entry) error {
	if err := s.set.ctx.Err(); err != nil {
		return err
	}
	ok := s.table.EachEdge(cur.id, func(e core.Edge) {
		if _, seen := s.res.Depth[e.To]; seen {
			return
		}
		if s.set.keep != nil && !s.set.keep(cur.id, e.To, e.Weight) {
			return
		}
		s.discover(e.To, cur.depth+1, cur.id)
	})
	if !ok {
		return fmt.Errorf("%w: vertex %q vanished from table", ErrNeighbors, cur.id)
	}

	return nil
}

// discover records id at depth and queues it.
func (s *search) discover(id string, depth int, parent string) {
	s.res.Depth[id] = depth
	if parent != "" {
		s.res.Parent[id] = parent
	}
	if s.set.onEnqueue != nil {
		s.set.onEnqueue(id, depth)
	}
	s.queue = append(s.queue, entry{id: id, depth: depth})
}
