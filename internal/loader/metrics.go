// SPDX-License-Identifier: MIT
package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/kanjipath/core"
)

// CSV column headers of the kanji metrics table.
const (
	ColKanji       = "Kanji"
	ColStrokes     = "Strokes"
	ColGrade       = "Grade"
	ColJLPT        = "JLPT-test"
	ColRadicalFreq = "Radical Freq."
	ColUsageFreq   = "Kanji Frequency without Proper Nouns"
)

var requiredColumns = []string{ColKanji, ColStrokes, ColGrade, ColJLPT, ColRadicalFreq, ColUsageFreq}

// ReadMetricsCSV parses the metrics table. Columns are located by header,
// so extra columns (id, meanings, readings) are ignored. Blank cells in the
// numeric columns other than Strokes read as 0; the table leaves them empty
// for characters outside the school grades and JLPT lists.
//
// Errors wrap builder.ErrMalformedInput with the row and column at fault.
func ReadMetricsCSV(source string, r io.Reader) (map[string]core.Attributes, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(source, "empty metrics table")
	}
	if err != nil {
		return nil, malformed(source, "header: %v", err)
	}

	// 1) Locate columns.
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, malformed(source, "missing column %q", col)
		}
	}

	// 2) Parse rows. Line numbers are 1-based and count the header.
	out := make(map[string]core.Attributes)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(source, "line %d: %v", line, err)
		}
		if blankRecord(rec) {
			continue
		}

		cell := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		kanji := cell(ColKanji)
		if kanji == "" {
			return nil, malformed(source, "line %d: empty %s", line, ColKanji)
		}
		if _, dup := out[kanji]; dup {
			return nil, malformed(source, "line %d: duplicate character %q", line, kanji)
		}

		var a core.Attributes
		fields := []struct {
			col      string
			dst      *int
			required bool
		}{
			{ColStrokes, &a.Strokes, true},
			{ColGrade, &a.Grade, false},
			{ColJLPT, &a.JLPT, false},
			{ColRadicalFreq, &a.RadicalFreq, false},
			{ColUsageFreq, &a.UsageFreq, false},
		}
		for _, f := range fields {
			n, err := parseCount(cell(f.col), f.required)
			if err != nil {
				return nil, malformed(source, "line %d, column %q: %v", line, f.col, err)
			}
			*f.dst = n
		}
		out[kanji] = a
	}

	return out, nil
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

var errBlank = errors.New("value is required")

// parseCount accepts integers and integral decimals ("3.0"), which
// spreadsheet exports produce for columns with missing values.
func parseCount(s string, required bool) (int, error) {
	if s == "" {
		if required {
			return 0, errBlank
		}
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, strconv.ErrSyntax
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, strconv.ErrRange
	}

	return int(f), nil
}
