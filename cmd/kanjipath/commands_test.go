// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kanjipath/dfs"
	"github.com/katalvlaran/kanjipath/internal/loader"
	"github.com/katalvlaran/kanjipath/learnpath"
)

var (
	fixtureMetrics = filepath.Join("..", "..", "internal", "loader", "testdata", "metrics.csv")
	fixtureKrad    = filepath.Join("..", "..", "internal", "loader", "testdata", "krad.json")
)

// run executes the root command with the fixture data flags prepended.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(append([]string{
		"--metrics", fixtureMetrics,
		"--decomposition", fixtureKrad,
		"--log-level", "error",
	}, args...))

	err := root.Execute()

	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	for _, want := range []string{"path", "examples", "inspect", "order", "check", "serve", "import", "--config", "--metrics"} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "kanjipath dev")
}

func TestPathCommand(t *testing.T) {
	out, err := run(t, "path", "口", "話")
	require.NoError(t, err)
	assert.Equal(t, "口 → 言 → 話\nweight: 1552\nsteps: 3\n", out)
}

func TestPathCommand_JSON(t *testing.T) {
	out, err := run(t, "path", "--json", "口", "話")
	require.NoError(t, err)

	var got pathJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, pathJSON{Source: "口", Target: "話", Path: []string{"口", "言", "話"}, Weight: 1552, Steps: 3}, got)
}

func TestPathCommand_Failures(t *testing.T) {
	_, err := run(t, "path", "人", "働")
	assert.ErrorIs(t, err, learnpath.ErrUnreachable)

	_, err = run(t, "path", "醸", "森")
	assert.ErrorIs(t, err, learnpath.ErrNotFound)

	_, err = run(t, "path", "口")
	assert.Error(t, err)
}

func TestPathCommand_DifficultyPolicy(t *testing.T) {
	out, err := run(t, "--policy", "difficulty", "path", "木", "森")
	require.NoError(t, err)
	assert.Contains(t, out, "木 → 森")
}

func TestPathCommand_MissingData(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"path", "口", "話"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.metrics and data.decomposition are required")
}

func TestPathCommand_ConfigFile(t *testing.T) {
	abs := func(p string) string {
		a, err := filepath.Abs(p)
		require.NoError(t, err)
		return a
	}
	cfg := filepath.Join(t.TempDir(), "kanjipath.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"data:\n  metrics: "+abs(fixtureMetrics)+"\n  decomposition: "+abs(fixtureKrad)+"\nengine:\n  seeding: eager\n",
	), 0o644))

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--config", cfg, "path", "木", "林"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "木 → 林")
}

func TestPathCommand_BadConfigFile(t *testing.T) {
	_, err := run(t, "--config", "/nonexistent/kanjipath.yaml", "path", "口", "話")
	assert.Error(t, err)
}

func TestExamplesCommand(t *testing.T) {
	out, err := run(t, "examples")
	require.NoError(t, err)

	assert.Contains(t, out, "一 → 謝: not found\n")
	assert.Contains(t, out, "人 → 働: unreachable\n")
	assert.Contains(t, out, "口 → 話: 口 → 言 → 話 (weight 1552)\n")
	assert.Contains(t, out, "森 → 鑑: unreachable\n")
	assert.Contains(t, out, "醸 → 森: not found\n")
	assert.Contains(t, out, "1 of 5 paths found; 3 unique characters: 口 言 話\n")
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", "木")
	require.NoError(t, err)

	assert.Contains(t, out, "strokes: 4  grade: 1  jlpt: 5  radical freq: 196  usage freq: 317")
	assert.Contains(t, out, "edges (3):")
	assert.Contains(t, out, "→ 休  16\n")
	assert.Contains(t, out, "→ 林  256\n")
	assert.Contains(t, out, "→ 森  4096\n")
	assert.Contains(t, out, "reach: 4 characters, max depth 1")
}

func TestInspectCommand_UnknownCharacter(t *testing.T) {
	_, err := run(t, "inspect", "醸")
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "metrics.db")
	out, err := run(t, "import", fixtureMetrics, db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 19 characters")

	// The imported database answers the same query as the CSV.
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--metrics", db, "--decomposition", fixtureKrad, "path", "口", "話"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "weight: 1552")

	attrs, err := loader.ReadMetricsSQLite(context.Background(), db, loader.DefaultMetricsTable)
	require.NoError(t, err)
	assert.Len(t, attrs, 19)
}

func TestOrderCommand(t *testing.T) {
	out, err := run(t, "order", "口")
	require.NoError(t, err)
	assert.Equal(t, "口 言 舌 話\n", out)

	out, err = run(t, "order", "--limit", "2", "口")
	require.NoError(t, err)
	assert.Equal(t, "口 言\n", out)

	out, err = run(t, "order")
	require.NoError(t, err)
	order := strings.Fields(out)
	assert.Len(t, order, 19)
	assert.Less(t, indexOf(order, "木"), indexOf(order, "森"))
	assert.Less(t, indexOf(order, "重"), indexOf(order, "働"))

	_, err = run(t, "order", "醸")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "policy: quartic\n")
	assert.Contains(t, out, "characters: 19\n")
	assert.Contains(t, out, "dropped: 3\n")
	assert.Contains(t, out, "  unknown_component: 2\n")
	assert.Contains(t, out, "  unknown_composed: 1\n")
	assert.Contains(t, out, "cycles: 0\n")
}
