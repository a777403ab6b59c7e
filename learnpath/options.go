// SPDX-License-Identifier: MIT
package learnpath

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/kanjipath/dijkstra"
)

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the per-query logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records query outcomes on m. Nil disables metrics.
func WithMetrics(m *Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithTracer opens a span per query on tr. Nil keeps the no-op tracer.
func WithTracer(tr trace.Tracer) ServiceOption {
	return func(s *Service) {
		if tr != nil {
			s.tracer = tr
		}
	}
}

// WithEngineOptions appends engine options applied to every query, e.g.
// dijkstra.WithSeeding or dijkstra.WithStepBudget. Source, target and context
// are always set by the service and override anything given here.
func WithEngineOptions(opts ...dijkstra.Option) ServiceOption {
	return func(s *Service) { s.engine = append(s.engine, opts...) }
}

// WithConcurrency bounds the number of pairs FindPaths runs at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) ServiceOption {
	return func(s *Service) {
		if n < 1 {
			n = 1
		}
		s.concurrency = n
	}
}

func defaultService() *Service {
	return &Service{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:      noop.NewTracerProvider().Tracer(tracerName),
		concurrency: 1,
	}
}
