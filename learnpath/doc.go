// SPDX-License-Identifier: MIT

// Package learnpath answers "what should I learn next" queries: given two
// characters it returns the cheapest sequence of characters leading from
// the first to the second over a frozen core.Table.
//
// A Service runs one dijkstra search per query with early exit at the
// target, then walks the predecessor map back to the source (Reconstruct).
// Outcomes are distinguishable with errors.Is:
//
//   - ErrNotFound:       source or target is not a known character.
//   - ErrUnreachable:    both exist but no chain of compositions joins them.
//   - ErrCorruptedState: the predecessor map is inconsistent.
//
// Service errors also carry a machine-readable Code (CodeOf) and the
// query's fields (FieldsOf). Queries are logged with log/slog, counted in
// Prometheus collectors (Metrics) and traced with OpenTelemetry.
package learnpath
