// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTableNil is returned for a nil *core.Table.
	ErrTableNil = errors.New("bfs: table is nil")

	// ErrStartVertexNotFound is returned when the start character is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation reports an option built from a meaningless value.
	// It is surfaced by BFS, never by the option constructor.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when a queued vertex has no adjacency entry.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option tunes a single BFS call.
type Option func(*settings)

// settings is the resolved option set; nil hooks are skipped.
type settings struct {
	ctx       context.Context
	maxDepth  int // 0 = unlimited
	onEnqueue func(id string, depth int)
	onDequeue func(id string, depth int)
	onVisit   func(id string, depth int) error
	keep      func(curr, neighbor string, weight float64) bool
	err       error
}

func newSettings(opts []Option) settings {
	s := settings{ctx: context.Background()}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithContext makes BFS stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithOnEnqueue runs fn each time a character is first discovered.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(s *settings) { s.onEnqueue = fn }
}

// WithOnDequeue runs fn right before a character is visited.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(s *settings) { s.onDequeue = fn }
}

// WithOnVisit runs fn on every visit; a non-nil error stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(s *settings) { s.onVisit = fn }
}

// WithMaxDepth ignores characters more than d hops from the start.
//
//	d > 0:  limit to d hops
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(s *settings) {
		if d < 0 {
			s.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		s.maxDepth = d
	}
}

// WithFilterNeighbor drops the edge curr → neighbor when fn returns false.
// The weight is passed so callers can prune expensive steps while still
// counting hops.
func WithFilterNeighbor(fn func(curr, neighbor string, weight float64) bool) Option {
	return func(s *settings) { s.keep = fn }
}

// Result is what one BFS call discovered.
type Result struct {
	// Order lists visited characters in visit sequence.
	Order []string
	// Depth maps each visited character to its hop count from the start.
	Depth map[string]int
	// Parent maps each visited character except the start to the
	// character it was discovered from.
	Parent map[string]string
}

// Reached returns the number of visited characters, the start included.
func (r *Result) Reached() int { return len(r.Order) }

// MaxDepth returns the hop count of the farthest visited character.
func (r *Result) MaxDepth() int {
	deepest := 0
	for _, d := range r.Depth {
		deepest = max(deepest, d)
	}

	return deepest
}

// Layers groups visited characters by depth in visit order; Layers()[0]
// holds only the start.
func (r *Result) Layers() [][]string {
	layers := make([][]string, r.MaxDepth()+1)
	for _, id := range r.Order {
		layers[r.Depth[id]] = append(layers[r.Depth[id]], id)
	}

	return layers
}

// PathTo follows Parent links back from dest and returns the hop-shortest
// chain start → dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
