// SPDX-License-Identifier: MIT

// Package loader reads the character metrics table and the decomposition
// list from disk and assembles a builder.Input.
package loader

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/kanjipath/builder"
	"github.com/katalvlaran/kanjipath/core"
)

// Sources names the files to load.
type Sources struct {
	Metrics       string // .csv, or a SQLite database (.db, .sqlite, .sqlite3)
	MetricsTable  string // SQLite table; DefaultMetricsTable when empty
	Decomposition string // .json, .yaml or .yml
}

// Load reads both sources and returns the builder input with the
// decomposition already inverted into ComposedBy.
func Load(ctx context.Context, src Sources) (builder.Input, error) {
	attrs, err := LoadMetrics(ctx, src.Metrics, src.MetricsTable)
	if err != nil {
		return builder.Input{}, err
	}
	decomp, err := LoadDecomposition(src.Decomposition)
	if err != nil {
		return builder.Input{}, err
	}

	return builder.Input{
		Attributes: attrs,
		ComposedBy: builder.Invert(decomp),
	}, nil
}

// LoadMetrics dispatches on the file extension of path.
func LoadMetrics(ctx context.Context, path, table string) (map[string]core.Attributes, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, unreadable(path, err)
		}
		defer f.Close()

		return ReadMetricsCSV(path, f)
	case ".db", ".sqlite", ".sqlite3":
		return ReadMetricsSQLite(ctx, path, table)
	default:
		return nil, malformed(path, "unsupported metrics source (want .csv, .db, .sqlite)")
	}
}

// LoadDecomposition dispatches on the file extension of path.
func LoadDecomposition(path string) (map[string][]string, error) {
	format, ok := formatOf(path)
	if !ok {
		return nil, malformed(path, "unsupported decomposition source (want .json, .yaml, .yml)")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, unreadable(path, err)
	}
	defer f.Close()

	return ReadDecomposition(path, f, format)
}

func formatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

func sortedIDs(m map[string]core.Attributes) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
