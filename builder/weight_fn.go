// SPDX-License-Identifier: MIT
// Package: kanjipath/builder
//
// weight_fn.go: edge-weight policies (learning cost of component → composed).
//
// Contract:
//   • A policy is pure and deterministic: same attributes in, same weight out.
//   • Every policy returns a finite value ≥ 0; Dijkstra depends on it.
//   • Exactly one policy is used per Build; policies are never mixed.
//   • Weights are computed once per edge at build time, never per relaxation.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kanjipath/core"
)

// Policy names accepted by PolicyByName.
const (
	PolicyQuartic    = "quartic"
	PolicyDifficulty = "difficulty"
)

// WeightPolicy maps an (origin, destination) attribute pair to a cost.
type WeightPolicy interface {
	// Name identifies the policy in logs and reports.
	Name() string
	// Weight returns the non-negative cost of learning to after from.
	Weight(from, to core.Attributes) float64
}

// QuarticStroke weighs an edge by (to.Strokes − from.Strokes)^4.
// The even power penalizes stroke disparity in either direction and keeps
// every weight ≥ 0 by construction.
// Complexity: O(1).
type QuarticStroke struct{}

// Name returns PolicyQuartic.
func (QuarticStroke) Name() string { return PolicyQuartic }

// Weight returns (to.Strokes − from.Strokes)^4.
func (QuarticStroke) Weight(from, to core.Attributes) float64 {
	d := float64(to.Strokes - from.Strokes)
	d2 := d * d

	return d2 * d2
}

// Coefficients are the blend weights of DifficultyBlend plus the scales used
// to normalize each attribute into roughly [0,1].
type Coefficients struct {
	Strokes   float64 `mapstructure:"strokes" json:"strokes"`
	Grade     float64 `mapstructure:"grade" json:"grade"`
	JLPT      float64 `mapstructure:"jlpt" json:"jlpt"`
	Frequency float64 `mapstructure:"frequency" json:"frequency"`
	Radical   float64 `mapstructure:"radical" json:"radical"`

	MaxStrokes float64 `mapstructure:"max_strokes" json:"max_strokes"`
	MaxGrade   float64 `mapstructure:"max_grade" json:"max_grade"`
	JLPTLevels float64 `mapstructure:"jlpt_levels" json:"jlpt_levels"`
}

// Default coefficient set: stroke count 0.2, grade 0.2, JLPT 0.3, inverse
// usage frequency 0.2, inverse radical frequency 0.1; 29 strokes, 7 grades
// (grade 7 = secondary school), 5 JLPT levels.
const (
	DefaultStrokesCoeff   = 0.2
	DefaultGradeCoeff     = 0.2
	DefaultJLPTCoeff      = 0.3
	DefaultFrequencyCoeff = 0.2
	DefaultRadicalCoeff   = 0.1

	DefaultMaxStrokes = 29.0
	DefaultMaxGrade   = 7.0
	DefaultJLPTLevels = 5.0

	// coeffSumTolerance bounds |Σcoeff − 1| in Validate.
	coeffSumTolerance = 1e-9
)

// DefaultCoefficients returns the documented default coefficient set.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Strokes:    DefaultStrokesCoeff,
		Grade:      DefaultGradeCoeff,
		JLPT:       DefaultJLPTCoeff,
		Frequency:  DefaultFrequencyCoeff,
		Radical:    DefaultRadicalCoeff,
		MaxStrokes: DefaultMaxStrokes,
		MaxGrade:   DefaultMaxGrade,
		JLPTLevels: DefaultJLPTLevels,
	}
}

// Validate checks that every coefficient is finite and ≥ 0, that they sum
// to 1, and that every scale is > 0.
func (c Coefficients) Validate() error {
	parts := map[string]float64{
		"strokes": c.Strokes, "grade": c.Grade, "jlpt": c.JLPT,
		"frequency": c.Frequency, "radical": c.Radical,
	}
	sum := 0.0
	for name, v := range parts {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: coefficient %s=%g", ErrBadCoefficients, name, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > coeffSumTolerance {
		return fmt.Errorf("%w: coefficients sum to %g, want 1", ErrBadCoefficients, sum)
	}
	if c.MaxStrokes <= 0 || c.MaxGrade <= 0 || c.JLPTLevels <= 0 {
		return fmt.Errorf("%w: scales must be positive (max_strokes=%g max_grade=%g jlpt_levels=%g)",
			ErrBadCoefficients, c.MaxStrokes, c.MaxGrade, c.JLPTLevels)
	}

	return nil
}

// DifficultyBlend weighs an edge by the difficulty of its destination:
//
//	Strokes·s/MaxStrokes + Grade·g/MaxGrade + JLPT·(JLPTLevels+1−j)/JLPTLevels
//	  + Frequency·inv(usage) + Radical·inv(radical)
//
// where inv(f) = 1/(f+1) for f > 0 and 1 otherwise (unranked characters are
// treated as rarest). Negative blends, possible only with out-of-range
// attributes, are clamped to 0.
type DifficultyBlend struct {
	Coefficients Coefficients
}

// NewDifficultyBlend validates c and returns the policy.
func NewDifficultyBlend(c Coefficients) (DifficultyBlend, error) {
	if err := c.Validate(); err != nil {
		return DifficultyBlend{}, err
	}

	return DifficultyBlend{Coefficients: c}, nil
}

// Name returns PolicyDifficulty.
func (DifficultyBlend) Name() string { return PolicyDifficulty }

// Weight returns Difficulty(to); the origin does not contribute.
func (p DifficultyBlend) Weight(_, to core.Attributes) float64 {
	return p.Difficulty(to)
}

// Difficulty scores a single character.
// Complexity: O(1).
func (p DifficultyBlend) Difficulty(a core.Attributes) float64 {
	c := p.Coefficients
	score := c.Strokes*float64(a.Strokes)/c.MaxStrokes +
		c.Grade*float64(a.Grade)/c.MaxGrade +
		c.JLPT*(c.JLPTLevels+1-float64(a.JLPT))/c.JLPTLevels +
		c.Frequency*inverseFreq(a.UsageFreq) +
		c.Radical*inverseFreq(a.RadicalFreq)
	if score < 0 || math.IsNaN(score) {
		return 0
	}

	return score
}

func inverseFreq(f int) float64 {
	if f > 0 {
		return 1 / float64(f+1)
	}

	return 1
}

// PolicyByName resolves a policy from configuration. coeffs is used only by
// the difficulty policy.
func PolicyByName(name string, coeffs Coefficients) (WeightPolicy, error) {
	switch name {
	case "", PolicyQuartic:
		return QuarticStroke{}, nil
	case PolicyDifficulty:
		return NewDifficultyBlend(coeffs)
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownPolicy, name, PolicyQuartic, PolicyDifficulty)
	}
}
