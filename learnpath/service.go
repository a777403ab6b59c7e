// SPDX-License-Identifier: MIT
package learnpath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/kanjipath/core"
	"github.com/katalvlaran/kanjipath/dijkstra"
)

const tracerName = "github.com/katalvlaran/kanjipath/learnpath"

// ErrNilTable is returned by NewService when no table is supplied.
var ErrNilTable = errors.New("learnpath: table is nil")

// Service answers learning-path queries over one frozen table. It is safe
// for concurrent use: every query owns its engine state and the table is
// only read.
type Service struct {
	table       *core.Table
	engine      []dijkstra.Option
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	concurrency int
}

// NewService returns a Service over t. The table should be frozen; an
// unfrozen table is accepted but logged, since later writes would race
// with queries.
func NewService(t *core.Table, opts ...ServiceOption) (*Service, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	s := defaultService()
	s.table = t
	for _, opt := range opts {
		opt(s)
	}
	if !t.Frozen() {
		s.logger.Warn("learning-path service created over an unfrozen table")
	}

	return s, nil
}

// Table returns the table the service queries.
func (s *Service) Table() *core.Table { return s.table }

// FindPath returns the cheapest learning path from source to target.
//
// Steps:
//  1. Validate both IDs against the table. ErrNotFound leaves the engine untouched.
//  2. Run one Dijkstra search from source with early exit at target.
//  3. ErrUnreachable when target kept an infinite distance.
//  4. Reconstruct the path from the predecessor map.
//
// Every returned error matches one of the package sentinels (or wraps an
// engine/context error) and carries a Code.
func (s *Service) FindPath(ctx context.Context, source, target string) (Path, error) {
	queryID := uuid.New().String()
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "learnpath.FindPath", trace.WithAttributes(
		attribute.String("kanjipath.query_id", queryID),
		attribute.String("kanjipath.source", source),
		attribute.String("kanjipath.target", target),
	))
	defer span.End()

	path, stats, err := s.findPath(ctx, source, target)
	outcome := outcomeOf(err)
	elapsed := time.Since(start)
	s.metrics.observe(outcome, elapsed, stats.Stale, stats.Relaxations)

	span.SetAttributes(
		attribute.String("kanjipath.outcome", outcome),
		attribute.Int("kanjipath.settled", stats.Settled),
	)
	log := s.logger.With(
		"query_id", queryID,
		"source", source,
		"target", target,
		"outcome", outcome,
		"elapsed", elapsed,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("learning-path query failed", "error", err)

		return Path{}, wrap(err, codeOf(err),
			"query_id", queryID, "source", source, "target", target)
	}

	span.SetAttributes(
		attribute.Float64("kanjipath.weight", path.Weight),
		attribute.Int("kanjipath.steps", path.Steps()),
	)
	span.SetStatus(codes.Ok, "")
	log.Debug("learning-path query answered",
		"weight", path.Weight,
		"steps", path.Steps(),
		"pops", stats.Pops,
		"stale", stats.Stale,
	)

	return path, nil
}

func (s *Service) findPath(ctx context.Context, source, target string) (Path, dijkstra.Stats, error) {
	// 1) Reject unknown characters before any engine state exists.
	for _, id := range []string{source, target} {
		if id == "" || !s.table.Has(id) {
			return Path{}, dijkstra.Stats{}, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
	}

	// 2) One engine run; per-call options go last so they win.
	opts := make([]dijkstra.Option, 0, len(s.engine)+3)
	opts = append(opts, s.engine...)
	opts = append(opts,
		dijkstra.Source(source),
		dijkstra.WithTarget(target),
		dijkstra.WithContext(ctx),
	)
	res, err := dijkstra.Dijkstra(s.table, opts...)
	if err != nil {
		return Path{}, dijkstra.Stats{}, err
	}

	// 3) Unreached target.
	if !res.Reached(target) {
		return Path{}, res.Stats, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, source)
	}

	// 4) Walk predecessors.
	path, err := Reconstruct(res, target)

	return path, res.Stats, err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, ErrCorruptedState):
		return OutcomeCorrupted
	default:
		return OutcomeError
	}
}

func codeOf(err error) Code {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeQueryNotFound
	case errors.Is(err, ErrUnreachable):
		return CodeQueryUnreachable
	case errors.Is(err, ErrCorruptedState):
		return CodeStateCorrupted
	case errors.Is(err, dijkstra.ErrBudgetExceeded):
		return CodeQueryBudgetExceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeQueryCanceled
	case errors.Is(err, dijkstra.ErrOptionViolation):
		return CodeQueryInvalid
	default:
		return CodeEngineFailure
	}
}

// Pair is one source/target query.
type Pair struct {
	Source string
	Target string
}

// Outcome is the answer to one Pair. Exactly one of Path and Err is set.
type Outcome struct {
	Pair Pair
	Path Path
	Err  error
}

// FindPaths answers every pair independently and returns outcomes in input
// order. Up to WithConcurrency pairs run at once; a failing pair does not
// affect the others.
func (s *Service) FindPaths(ctx context.Context, pairs []Pair) []Outcome {
	out := make([]Outcome, len(pairs))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, p := range pairs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p Pair) {
			defer wg.Done()
			defer func() { <-sem }()
			path, err := s.FindPath(ctx, p.Source, p.Target)
			out[i] = Outcome{Pair: p, Path: path, Err: err}
		}(i, p)
	}
	wg.Wait()

	return out
}
