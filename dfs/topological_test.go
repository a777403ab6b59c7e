// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kanjipath/core"
	"github.com/katalvlaran/kanjipath/dfs"
)

// position returns the index of v in order, or -1.
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// cyclic: A→B→C→A plus C→D→C.
func cyclic(t *testing.T) *core.Table {
	return table(t, []edge{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "A", 1},
		{"C", "D", 2}, {"D", "C", 1},
	})
}

func TestTopo_NilAndEmpty(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrTableNil)

	order, err := dfs.TopologicalSort(core.NewTable())
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_EveryEdgeForward(t *testing.T) {
	tb := diamond(t, "X")
	order, err := dfs.TopologicalSort(tb)
	require.NoError(t, err)
	require.Len(t, order, tb.Len())

	for _, id := range tb.IDs() {
		edges, err := tb.Edges(id)
		require.NoError(t, err)
		for _, e := range edges {
			assert.Less(t, position(order, id), position(order, e.To), "%s → %s", id, e.To)
		}
	}
}

func TestTopo_Roots(t *testing.T) {
	order, err := dfs.TopologicalSort(diamond(t), dfs.WithRoots("C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "F", "E"}, order)

	_, err = dfs.TopologicalSort(diamond(t), dfs.WithRoots("Z"))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestTopo_Cycle(t *testing.T) {
	order, err := dfs.TopologicalSort(cyclic(t))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "A → B → C → A")
}

func TestTopo_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(diamond(t), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectCycles(t *testing.T) {
	cycles, err := dfs.DetectCycles(context.Background(), cyclic(t))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "A"},
		{"C", "D", "C"},
	}, cycles)

	cycles, err = dfs.DetectCycles(context.Background(), diamond(t))
	require.NoError(t, err)
	assert.Nil(t, cycles)

	_, err = dfs.DetectCycles(context.Background(), nil)
	assert.ErrorIs(t, err, dfs.ErrTableNil)
}

func TestDetectCycles_RotatesToSmallestID(t *testing.T) {
	// Entered at B from 0, the loop is still reported starting from A.
	tb := table(t, []edge{{"0", "B", 1}, {"B", "C", 1}, {"C", "A", 1}, {"A", "B", 1}})
	cycles, err := dfs.DetectCycles(context.Background(), tb)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}
