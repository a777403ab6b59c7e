// SPDX-License-Identifier: MIT
// Package: kanjipath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Any returned error from Build is fatal to construction: no partial
//     table is ever returned alongside it.

package builder

import "errors"

// ErrMalformedInput indicates a record with missing or invalid required
// fields (empty character, stroke count < 1, negative frequency).
// Usage: if errors.Is(err, ErrMalformedInput) { /* abort startup */ }.
var ErrMalformedInput = errors.New("builder: malformed input")

// ErrUnknownPolicy indicates a weight policy name that PolicyByName does
// not recognize.
var ErrUnknownPolicy = errors.New("builder: unknown weight policy")

// ErrBadCoefficients indicates a difficulty coefficient set that is
// negative, non-finite, does not sum to 1, or has a non-positive scale.
var ErrBadCoefficients = errors.New("builder: invalid difficulty coefficients")

// ErrNilPolicy indicates Build was configured with a nil WeightPolicy.
var ErrNilPolicy = errors.New("builder: weight policy is nil")
