// Package dijkstra provides the single-source shortest-path engine for
// kanjipath: Dijkstra's algorithm over a core.Table whose edge weights are
// non-negative learning costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source character to
//     every reachable character in O((V + E) log V) time.
//   - It relies on a container/heap min-heap without in-place decrease-key:
//     improved distances are pushed again and superseded entries are
//     discarded when popped (“lazy decrease-key”).
//   - Every call allocates its own distance map, predecessor map and heap,
//     so concurrent calls on one frozen table need no locking.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithSeeding: lazy (source only) or eager (every vertex at +Inf) queue seeding.
//   - WithTarget: early exit once the target is settled.
//   - WithMaxDistance / WithInfEdgeThreshold: distance caps and impassable edges.
//   - WithStepBudget / WithContext: bounded latency imposed by the caller.
//   - WithOnPop: instrumentation hook, used by tests to observe stale entries.
//
// Result:
//
//	type Result struct {
//	    Source string
//	    Dist   map[string]float64 // +Inf when unreached
//	    Prev   map[string]string  // "" for the source and unreached vertices
//	    Stats  Stats              // pops, stale pops, relaxations, settled
//	}
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilTable, ErrVertexNotFound: input validation; no
//     computation is performed.
//   - ErrOptionViolation: an option received a meaningless value.
//   - ErrBudgetExceeded: the caller's step budget ran out.
//   - ErrNegativeWeight: defensive; core.Table never stores such edges.
//
// Path reconstruction lives in package learnpath.
package dijkstra
