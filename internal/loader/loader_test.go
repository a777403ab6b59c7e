// SPDX-License-Identifier: MIT
package loader_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kanjipath/builder"
	"github.com/katalvlaran/kanjipath/core"
	"github.com/katalvlaran/kanjipath/internal/loader"
)

const header = "id,Kanji,Strokes,Grade,JLPT-test,Radical Freq.,Kanji Frequency without Proper Nouns\n"

func codeOf(err error) any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}

	return oopsErr.Code()
}

func TestReadMetricsCSV_Fixture(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "metrics.csv"))
	require.NoError(t, err)
	defer f.Close()

	attrs, err := loader.ReadMetricsCSV("metrics.csv", f)
	require.NoError(t, err)
	assert.Len(t, attrs, 19)
	assert.Equal(t, core.Attributes{Strokes: 12, Grade: 1, JLPT: 4, RadicalFreq: 196, UsageFreq: 1090}, attrs["森"])

	// Radicals carry only a stroke count.
	assert.Equal(t, core.Attributes{Strokes: 2}, attrs["亻"])
}

func TestReadMetricsCSV_ColumnOrderAndExtras(t *testing.T) {
	in := "\ufeffKanji Frequency without Proper Nouns,Meaning,Radical Freq.,JLPT-test,Grade,Strokes,Kanji\n" +
		"5,tree,196,5,1,4.0,木\n" +
		"\n"
	attrs, err := loader.ReadMetricsCSV("reordered", strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]core.Attributes{
		"木": {Strokes: 4, Grade: 1, JLPT: 5, RadicalFreq: 196, UsageFreq: 5},
	}, attrs)
}

func TestReadMetricsCSV_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"missing column":  "Kanji,Strokes\n木,4\n",
		"blank strokes":   header + "1,木,,1,5,1,1\n",
		"bad integer":     header + "1,木,four,1,5,1,1\n",
		"fractional":      header + "1,木,4.5,1,5,1,1\n",
		"empty kanji":     header + "1,,4,1,5,1,1\n",
		"duplicate kanji": header + "1,木,4,1,5,1,1\n2,木,4,1,5,1,1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			attrs, err := loader.ReadMetricsCSV(name, strings.NewReader(in))
			assert.ErrorIs(t, err, builder.ErrMalformedInput)
			assert.Equal(t, loader.CodeInputMalformed, codeOf(err))
			assert.Nil(t, attrs)
		})
	}
}

func TestReadMetricsCSV_ErrorNamesLineAndColumn(t *testing.T) {
	in := header + "1,木,4,1,5,1,1\n2,林,8,x,4,1,1\n"
	_, err := loader.ReadMetricsCSV("metrics.csv", strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"Grade"`)
}

func TestReadDecomposition_JSONAndYAMLAgree(t *testing.T) {
	j, err := loader.LoadDecomposition(filepath.Join("testdata", "krad.json"))
	require.NoError(t, err)
	y, err := loader.LoadDecomposition(filepath.Join("testdata", "krad.yaml"))
	require.NoError(t, err)

	assert.Equal(t, j, y)
	assert.Equal(t, []string{"亻", "木"}, j["休"])
	assert.Equal(t, []string{}, j["人"])
}

func TestReadDecomposition_Errors(t *testing.T) {
	_, err := loader.ReadDecomposition("x", strings.NewReader(`[{"literal":"","components":["木"]}]`), loader.FormatJSON)
	assert.ErrorIs(t, err, builder.ErrMalformedInput)

	_, err = loader.ReadDecomposition("x", strings.NewReader(`{"literal":`), loader.FormatJSON)
	assert.ErrorIs(t, err, builder.ErrMalformedInput)

	_, err = loader.ReadDecomposition("x", strings.NewReader("- literal: [oops"), loader.FormatYAML)
	assert.ErrorIs(t, err, builder.ErrMalformedInput)

	_, err = loader.ReadDecomposition("x", strings.NewReader("[]"), loader.Format("toml"))
	assert.ErrorIs(t, err, builder.ErrMalformedInput)

	_, err = loader.LoadDecomposition("krad.txt")
	assert.ErrorIs(t, err, builder.ErrMalformedInput)

	_, err = loader.LoadDecomposition(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Equal(t, loader.CodeSourceUnreadable, codeOf(err))
}

func TestReadDecomposition_MergesRepeatedLiterals(t *testing.T) {
	in := "- literal: 休\n  components: [亻]\n- literal: 休\n  components: [木, ' ']\n"
	d, err := loader.ReadDecomposition("x", strings.NewReader(in), loader.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"休": {"亻", "木"}}, d)
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	want := map[string]core.Attributes{
		"木": {Strokes: 4, Grade: 1, JLPT: 5, RadicalFreq: 196, UsageFreq: 317},
		"亻": {Strokes: 2},
	}
	path := filepath.Join(t.TempDir(), "metrics.db")
	require.NoError(t, loader.WriteMetricsSQLite(ctx, path, "", want))

	got, err := loader.ReadMetricsSQLite(ctx, path, loader.DefaultMetricsTable)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Same data through the extension dispatcher.
	got, err = loader.LoadMetrics(ctx, path, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLite_NullColumns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "metrics.sqlite")
	require.NoError(t, loader.WriteMetricsSQLite(ctx, path, "radicals", map[string]core.Attributes{}))

	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO radicals (kanji, strokes) VALUES ('亻', 2)`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	got, err := loader.ReadMetricsSQLite(ctx, path, "radicals")
	require.NoError(t, err)
	assert.Equal(t, map[string]core.Attributes{"亻": {Strokes: 2}}, got)
}

func TestSQLite_Errors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := loader.ReadMetricsSQLite(ctx, filepath.Join(dir, "absent.db"), "")
	assert.Equal(t, loader.CodeSourceUnreadable, codeOf(err))
	_, statErr := os.Stat(filepath.Join(dir, "absent.db"))
	assert.True(t, os.IsNotExist(statErr), "reader must not create the database")

	path := filepath.Join(dir, "metrics.db")
	require.NoError(t, loader.WriteMetricsSQLite(ctx, path, "", map[string]core.Attributes{"木": {Strokes: 4}}))

	_, err = loader.ReadMetricsSQLite(ctx, path, "kanji; DROP TABLE kanji_metrics")
	assert.ErrorIs(t, err, builder.ErrMalformedInput)

	_, err = loader.ReadMetricsSQLite(ctx, path, "other_table")
	assert.Equal(t, loader.CodeSourceUnreadable, codeOf(err))

	_, err = loader.LoadMetrics(ctx, "metrics.xlsx", "")
	assert.ErrorIs(t, err, builder.ErrMalformedInput)
}

func TestLoad_Fixture(t *testing.T) {
	in, err := loader.Load(context.Background(), loader.Sources{
		Metrics:       filepath.Join("testdata", "metrics.csv"),
		Decomposition: filepath.Join("testdata", "krad.json"),
	})
	require.NoError(t, err)
	assert.Len(t, in.Attributes, 19)
	assert.Equal(t, []string{"休", "林", "森"}, in.ComposedBy["木"])
	assert.Equal(t, []string{"話"}, in.ComposedBy["舌"])

	tb, rep, err := builder.Build(in)
	require.NoError(t, err)
	assert.Equal(t, 19, tb.Len())
	assert.Equal(t, 3, len(rep.Dropped)) // 言→謝, 身→謝, 寸→謝

	edges, err := tb.Edges("口")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{To: "舌", Weight: 81},
		{To: "言", Weight: 256},
		{To: "話", Weight: 10000},
	}, edges)
}
