// SPDX-License-Identifier: MIT
// Package: kanjipath/builder
//
// options.go: functional options and deterministic defaults for Build.
//
// Deterministic defaults (no surprises):
//   • policy = QuarticStroke{}
//   • logger = discard (nothing is written unless WithLogger is set)
//
// No hidden globals; everything flows through builderConfig.

package builder

import (
	"io"
	"log/slog"
)

// builderConfig aggregates all knobs used by Build.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	policy WeightPolicy
	logger *slog.Logger
}

// BuilderOption customizes Build by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithPolicy sets the edge-weight policy. A nil policy makes Build fail
// with ErrNilPolicy.
func WithPolicy(p WeightPolicy) BuilderOption {
	return func(c *builderConfig) {
		c.policy = p
	}
}

// WithLogger routes drop reports and build summaries to l.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		policy: QuarticStroke{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
