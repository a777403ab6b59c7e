// SPDX-License-Identifier: MIT
//
// Package builder turns loader output into a frozen core.Table and owns the
// edge-weight policies.
//
// The package offers the following key components:
//
//   - Build(Input, ...BuilderOption) (*core.Table, *Report, error)
//     – one vertex per attributed character;
//     – one edge component → composed character per known relation;
//     – every skipped relation reported in Report.Dropped and logged.
//   - Invert: character → components becomes component → composed-by.
//   - Weight policies (WeightPolicy implementations):
//     – QuarticStroke:    (Δ strokes)^4.
//     – DifficultyBlend:  configurable blend of strokes, grade, JLPT and
//     inverse frequencies, scored on the destination character.
//     – PolicyByName:     resolves "quartic" | "difficulty" from configuration.
//   - Configuration primitives:
//     – BuilderOption / builderConfig: WithPolicy, WithLogger.
//
// Guarantees:
//
//   - All-or-nothing: malformed attributes (ErrMalformedInput) or a policy
//     yielding a negative weight abort the build; no partial table escapes.
//   - Deterministic: vertices and relations are processed in sorted order.
//   - One policy per build; weights are computed once per edge.
package builder
