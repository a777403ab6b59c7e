// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kanjipath/builder"
	"github.com/katalvlaran/kanjipath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarticStroke(t *testing.T) {
	p := builder.QuarticStroke{}
	assert.Equal(t, builder.PolicyQuartic, p.Name())

	one := core.Attributes{Strokes: 1}
	three := core.Attributes{Strokes: 3}
	assert.Equal(t, float64(16), p.Weight(one, three))
	// Symmetric in the stroke difference.
	assert.Equal(t, float64(16), p.Weight(three, one))
	assert.Zero(t, p.Weight(three, three))
}

func TestDifficultyBlend_KnownValue(t *testing.T) {
	p, err := builder.NewDifficultyBlend(builder.DefaultCoefficients())
	require.NoError(t, err)
	assert.Equal(t, builder.PolicyDifficulty, p.Name())

	// 一: 1 stroke, grade 1, N5, usage 1, radical 0 (unranked → inverse 1).
	a := core.Attributes{Strokes: 1, Grade: 1, JLPT: 5, UsageFreq: 1}
	want := 0.2*1/29.0 + 0.2*1/7.0 + 0.3*(6-5)/5.0 + 0.2*(1/2.0) + 0.1*1
	assert.InDelta(t, want, p.Difficulty(a), 1e-12)

	// The origin does not contribute.
	assert.Equal(t, p.Difficulty(a), p.Weight(core.Attributes{Strokes: 20}, a))
}

func TestDifficultyBlend_ClampsNegative(t *testing.T) {
	c := builder.DefaultCoefficients()
	c.Strokes, c.Grade, c.JLPT, c.Frequency, c.Radical = 0, 0, 1, 0, 0
	p, err := builder.NewDifficultyBlend(c)
	require.NoError(t, err)

	// JLPT far outside the 1..5 range drives the blend negative.
	assert.Zero(t, p.Difficulty(core.Attributes{Strokes: 1, JLPT: 50}))
}

func TestCoefficients_Validate(t *testing.T) {
	require.NoError(t, builder.DefaultCoefficients().Validate())

	bad := []func(c *builder.Coefficients){
		func(c *builder.Coefficients) { c.Strokes = -0.1; c.Grade = 0.5 },
		func(c *builder.Coefficients) { c.Radical = 0.5 },
		func(c *builder.Coefficients) { c.MaxStrokes = 0 },
		func(c *builder.Coefficients) { c.JLPT = math.NaN() },
	}
	for i, mutate := range bad {
		c := builder.DefaultCoefficients()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), builder.ErrBadCoefficients, "case %d", i)
	}
}

func TestPolicyByName(t *testing.T) {
	p, err := builder.PolicyByName("", builder.Coefficients{})
	require.NoError(t, err)
	assert.Equal(t, builder.PolicyQuartic, p.Name())

	p, err = builder.PolicyByName(builder.PolicyDifficulty, builder.DefaultCoefficients())
	require.NoError(t, err)
	assert.Equal(t, builder.PolicyDifficulty, p.Name())

	_, err = builder.PolicyByName(builder.PolicyDifficulty, builder.Coefficients{})
	assert.ErrorIs(t, err, builder.ErrBadCoefficients)

	_, err = builder.PolicyByName("linear", builder.DefaultCoefficients())
	assert.ErrorIs(t, err, builder.ErrUnknownPolicy)
}

// TestPolicies_NonNegative guards the invariant Dijkstra relies on: if a
// policy ever yields a negative weight, shortest paths are no longer correct.
func TestPolicies_NonNegative(t *testing.T) {
	blend, err := builder.NewDifficultyBlend(builder.DefaultCoefficients())
	require.NoError(t, err)
	policies := []builder.WeightPolicy{builder.QuarticStroke{}, blend}

	rng := rand.New(rand.NewSource(7))
	randAttrs := func() core.Attributes {
		return core.Attributes{
			Strokes:     1 + rng.Intn(29),
			Grade:       rng.Intn(9),
			JLPT:        rng.Intn(6),
			RadicalFreq: rng.Intn(500),
			UsageFreq:   rng.Intn(100000),
		}
	}
	for _, p := range policies {
		for i := 0; i < 5000; i++ {
			w := p.Weight(randAttrs(), randAttrs())
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				t.Fatalf("policy %s produced weight %g: Dijkstra correctness no longer holds", p.Name(), w)
			}
		}
	}
}
