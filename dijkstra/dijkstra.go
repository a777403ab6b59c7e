// Package dijkstra implements Dijkstra's shortest-path algorithm over a core.Table.
//
// Dijkstra computes the minimum learning cost from a single source character
// to all other reachable characters. Edge weights are non-negative by
// construction of core.Table.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once: V extractions that count.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - An entry is stale when its key is larger than the recorded distance or its vertex is already settled.
//   - Eager seeding pushes every vertex up front; +Inf entries mark the unreachable tail and end the run.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/kanjipath/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of t and returns them together with a predecessor map.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. t must be non-nil (ErrNilTable).
//  4. t must contain Source (ErrVertexNotFound). Nothing is allocated in that case.
//
// Ties: when several vertices share a distance, their extraction order is
// unspecified. Distances do not depend on it; predecessors may, when more
// than one shortest path exists.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(t *core.Table, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate table is non-nil
	if t == nil {
		return nil, ErrNilTable
	}

	// 4) Validate Source exists; fail before touching any per-query state.
	if !t.Has(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 5) Prepare per-query state. Nothing here is shared with other queries.
	ids := t.IDs()
	V := len(ids)
	r := &runner{
		t:       t,
		options: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]float64, V),
			Prev:   make(map[string]string, V),
		},
		settled: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 6) Initialize algorithm state and run main loop.
	r.init(ids)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	t       *core.Table     // The input table; read-only within Dijkstra.
	options Options         // Configuration options (Source, thresholds, etc.).
	res     *Result         // Distance/predecessor maps and counters being built.
	settled map[string]bool // Tracks if a vertex's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ and prev[v] = "" for every vertex, dist[source] = 0,
// and seeds the heap according to Options.Seeding.
func (r *runner) init(ids []string) {
	inf := math.Inf(1)
	for _, v := range ids {
		r.res.Dist[v] = inf
		r.res.Prev[v] = ""
	}
	r.res.Dist[r.options.Source] = 0

	if r.options.Seeding == SeedEager {
		for _, v := range ids {
			r.pq = append(r.pq, &nodeItem{id: v, dist: r.res.Dist[v]})
		}
		heap.Init(&r.pq)

		return
	}

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum key in the heap is +Inf or exceeds MaxDistance.
//   - The Target vertex has been settled.
//   - The context is done or the StepBudget is exhausted (returned as error).
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		if err := cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: interrupted after %d settled vertices: %w", r.res.Stats.Settled, err)
		}

		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		r.res.Stats.Pops++

		// 2) Skip entries superseded by a later, smaller push, and re-pops of settled vertices.
		if r.settled[u] || d > r.res.Dist[u] {
			r.res.Stats.Stale++
			r.onPop(u, d, true)
			continue
		}
		r.onPop(u, d, false)

		// 3) Everything left is unreachable or beyond the cap.
		if math.IsInf(d, 1) || d > cfg.MaxDistance {
			break
		}

		// 4) Enforce the step budget before finalizing another vertex.
		if cfg.StepBudget > 0 && r.res.Stats.Settled >= cfg.StepBudget {
			return fmt.Errorf("%w: %d vertices settled", ErrBudgetExceeded, r.res.Stats.Settled)
		}

		// 5) Mark u as settled. Its shortest distance d is now final.
		r.settled[u] = true
		r.res.Stats.Settled++

		if u == cfg.Target {
			break
		}

		// 6) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u and attempts to improve distances
// to its neighbors. On a strict improvement it updates dist[v] and prev[v]
// and pushes a new heap entry for v.
//
// Assumes dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	var relaxErr error
	du := r.res.Dist[u]
	r.t.EachEdge(u, func(e core.Edge) {
		if relaxErr != nil {
			return
		}
		v, w := e.To, e.Weight

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			return
		}
		if w < 0 {
			relaxErr = fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, w)
			return
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			return
		}
		// Strict “<”: equal-cost alternatives keep the first predecessor found.
		if newDist >= r.res.Dist[v] {
			return
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		r.res.Stats.Relaxations++

		// Lazy decrease-key: the old entry for v stays and is discarded when popped.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	})

	return relaxErr
}

func (r *runner) onPop(id string, dist float64, stale bool) {
	if r.options.OnPop != nil {
		r.options.OnPop(id, dist, stale)
	}
}

// nodeItem represents a vertex and its distance at push time.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, then id
// ascending so runs on the same table are reproducible.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
