// Package dijkstra defines core types and configuration options
// for the learning-path shortest-path engine over a core.Table.
//
// Options:
//
//	– Source:           ID of the starting character (must be non-empty and present).
//	– Target:           optional; stop as soon as this vertex is settled.
//	– Seeding:          SeedLazy (source only, default) or SeedEager (every vertex).
//	– MaxDistance:      optional cap on distances to explore; farther vertices stay +Inf.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– StepBudget:       optional cap on settled vertices (ErrBudgetExceeded).
//	– Context:          cancellation, checked once per heap pop.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrNilTable         if the provided table pointer is nil.
//	– ErrVertexNotFound   if the source vertex does not exist in the table.
//	– ErrNegativeWeight   if a negative edge weight is met during relaxation.
//	– ErrOptionViolation  if an option received a meaningless value.
//	– ErrBudgetExceeded   if StepBudget was exhausted before the run finished.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(t, dijkstra.Source("一"), dijkstra.WithTarget("二"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost: %g, parent: %s\n", res.Dist["二"], res.Prev["二"])
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilTable indicates that a nil *core.Table was passed to Dijkstra.
	ErrNilTable = errors.New("dijkstra: table is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the table.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in table")

	// ErrNegativeWeight indicates that a negative edge weight was met while relaxing.
	// core.Table rejects such edges on insertion, so this signals a broken invariant.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an Option received a meaningless value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBudgetExceeded indicates the StepBudget ran out before the heap drained.
	ErrBudgetExceeded = errors.New("dijkstra: step budget exceeded")
)

// Seeding selects how the priority queue is initialized.
type Seeding int

const (
	// SeedLazy pushes only the source; successors are pushed on discovery.
	SeedLazy Seeding = iota

	// SeedEager pushes every vertex at its initial distance (0 or +Inf).
	SeedEager
)

// String returns the configuration name of the seeding strategy.
func (s Seeding) String() string {
	switch s {
	case SeedLazy:
		return "lazy"
	case SeedEager:
		return "eager"
	default:
		return fmt.Sprintf("Seeding(%d)", int(s))
	}
}

// ParseSeeding maps "lazy" / "eager" to a Seeding.
func ParseSeeding(name string) (Seeding, error) {
	switch name {
	case "", "lazy":
		return SeedLazy, nil
	case "eager":
		return SeedEager, nil
	default:
		return SeedLazy, fmt.Errorf("%w: unknown seeding %q", ErrOptionViolation, name)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Ctx              context.Context
	Source           string  // The ID of the source vertex
	Target           string  // Optional early-exit vertex
	Seeding          Seeding // Lazy (default) or eager queue seeding
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
	StepBudget       int     // Maximum settled vertices; 0 means unlimited

	// OnPop, if set, is called for every heap extraction, stale ones included.
	OnPop func(id string, dist float64, stale bool)

	err error // first option violation, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the run as soon as id is settled. Distances of vertices
// not yet settled at that point are upper bounds, not final values.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithSeeding selects lazy or eager queue initialization. Both produce the
// same distances.
func WithSeeding(s Seeding) Option {
	return func(o *Options) {
		if s != SeedLazy && s != SeedEager {
			o.recordErr(fmt.Errorf("%w: unknown seeding %d", ErrOptionViolation, int(s)))
			return
		}
		o.Seeding = s
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed max keep +Inf. Negative or NaN values are rejected.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.recordErr(fmt.Errorf("%w: MaxDistance must be non-negative, got %g", ErrOptionViolation, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as a wall.
// Zero, negative or NaN thresholds are rejected.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.recordErr(fmt.Errorf("%w: InfEdgeThreshold must be positive, got %g", ErrOptionViolation, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithStepBudget caps the number of settled vertices. n == 0 disables the cap.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.recordErr(fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.StepBudget = n
	}
}

// WithContext sets a context checked once per heap pop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPop registers an instrumentation hook for heap extractions.
func WithOnPop(fn func(id string, dist float64, stale bool)) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

func (o *Options) recordErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID:
//   - Seeding:          SeedLazy.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no walls).
//   - StepBudget:       0 (unlimited).
//   - Ctx:              context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Ctx:              context.Background(),
		Source:           source,
		Seeding:          SeedLazy,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Pops        int // heap extractions, stale ones included
	Stale       int // extractions discarded as superseded
	Relaxations int // successful distance improvements
	Settled     int // vertices whose distance was finalized
}

// Result holds the per-query distance and predecessor maps.
//
// Dist has an entry for every table vertex (math.Inf(1) when unreached).
// Prev[v] is the predecessor of v on one shortest path, or "" for the
// source and for unreached vertices.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
	Stats  Stats
}

// Reached reports whether id has a finite distance.
func (r *Result) Reached(id string) bool {
	d, ok := r.Dist[id]

	return ok && !math.IsInf(d, 1)
}
