// SPDX-License-Identifier: MIT
package learnpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kanjipath/dijkstra"
	"github.com/katalvlaran/kanjipath/learnpath"
)

func TestReconstruct_Chain(t *testing.T) {
	res := &dijkstra.Result{
		Source: "A",
		Dist:   map[string]float64{"A": 0, "B": 1, "C": 2, "D": 3},
		Prev:   map[string]string{"A": "", "B": "A", "C": "B", "D": "C"},
	}
	p, err := learnpath.Reconstruct(res, "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.IDs)
	assert.Equal(t, 3.0, p.Weight)
	assert.Equal(t, "A", p.Source())
	assert.Equal(t, "D", p.Target())
	assert.Equal(t, 4, p.Steps())
	assert.Equal(t, "A → B → C → D", p.String())

	p, err = learnpath.Reconstruct(res, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.IDs)
	assert.Zero(t, p.Weight)
}

func TestReconstruct_Errors(t *testing.T) {
	inf := math.Inf(1)
	res := &dijkstra.Result{
		Source: "A",
		Dist:   map[string]float64{"A": 0, "B": inf},
		Prev:   map[string]string{"A": "", "B": ""},
	}
	_, err := learnpath.Reconstruct(res, "Z")
	assert.ErrorIs(t, err, learnpath.ErrNotFound)

	_, err = learnpath.Reconstruct(res, "B")
	assert.ErrorIs(t, err, learnpath.ErrUnreachable)

	_, err = learnpath.Reconstruct(nil, "A")
	assert.ErrorIs(t, err, learnpath.ErrCorruptedState)
}

func TestReconstruct_CorruptedPredecessors(t *testing.T) {
	cycle := &dijkstra.Result{
		Source: "A",
		Dist:   map[string]float64{"A": 0, "B": 1, "C": 2},
		Prev:   map[string]string{"A": "", "B": "C", "C": "B"},
	}
	_, err := learnpath.Reconstruct(cycle, "C")
	assert.ErrorIs(t, err, learnpath.ErrCorruptedState)

	// Chain terminates, but not at the source.
	orphan := &dijkstra.Result{
		Source: "A",
		Dist:   map[string]float64{"A": 0, "B": 1, "C": 2},
		Prev:   map[string]string{"A": "", "B": "", "C": "B"},
	}
	_, err = learnpath.Reconstruct(orphan, "C")
	assert.ErrorIs(t, err, learnpath.ErrCorruptedState)
}
