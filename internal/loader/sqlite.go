// SPDX-License-Identifier: MIT
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/kanjipath/core"
)

// DefaultMetricsTable is the SQLite table read by ReadMetricsSQLite.
const DefaultMetricsTable = "kanji_metrics"

// MetricsSchema creates a metrics table with the columns ReadMetricsSQLite
// expects. %s is the table name.
const MetricsSchema = `CREATE TABLE IF NOT EXISTS %s (
	kanji        TEXT PRIMARY KEY,
	strokes      INTEGER NOT NULL,
	grade        INTEGER,
	jlpt         INTEGER,
	radical_freq INTEGER,
	usage_freq   INTEGER
)`

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReadMetricsSQLite reads character metrics from table in the SQLite
// database at path. NULL numeric columns read as 0 except strokes, which
// must be present.
func ReadMetricsSQLite(ctx context.Context, path, table string) (map[string]core.Attributes, error) {
	if table == "" {
		table = DefaultMetricsTable
	}
	if !identRe.MatchString(table) {
		return nil, malformed(path, "invalid table name %q", table)
	}

	// sql.Open would create a missing file.
	if _, err := os.Stat(path); err != nil {
		return nil, unreadable(path, err)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unreadable(path, fmt.Errorf("opening database: %w", err))
	}
	defer conn.Close()

	// Fail early if connection is bad
	if err := conn.PingContext(ctx); err != nil {
		return nil, unreadable(path, fmt.Errorf("ping db: %w", err))
	}

	rows, err := conn.QueryContext(ctx, fmt.Sprintf(
		`SELECT kanji, strokes, grade, jlpt, radical_freq, usage_freq FROM %s ORDER BY kanji`, table))
	if err != nil {
		return nil, unreadable(path, fmt.Errorf("querying %s: %w", table, err))
	}
	defer rows.Close()

	out := make(map[string]core.Attributes)
	for rows.Next() {
		var (
			kanji                               sql.NullString
			strokes, grade, jlpt, radical, freq sql.NullInt64
		)
		if err := rows.Scan(&kanji, &strokes, &grade, &jlpt, &radical, &freq); err != nil {
			return nil, malformed(path, "scanning %s: %v", table, err)
		}
		id := strings.TrimSpace(kanji.String)
		if id == "" {
			return nil, malformed(path, "%s: row with empty kanji", table)
		}
		if !strokes.Valid {
			return nil, malformed(path, "%s: %q has no stroke count", table, id)
		}
		if _, dup := out[id]; dup {
			return nil, malformed(path, "%s: duplicate character %q", table, id)
		}
		out[id] = core.Attributes{
			Strokes:     int(strokes.Int64),
			Grade:       int(grade.Int64),
			JLPT:        int(jlpt.Int64),
			RadicalFreq: int(radical.Int64),
			UsageFreq:   int(freq.Int64),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, unreadable(path, err)
	}

	return out, nil
}

// WriteMetricsSQLite stores attrs into table at path, creating the table
// when needed. Used by the import command and by tests.
func WriteMetricsSQLite(ctx context.Context, path, table string, attrs map[string]core.Attributes) error {
	if table == "" {
		table = DefaultMetricsTable
	}
	if !identRe.MatchString(table) {
		return malformed(path, "invalid table name %q", table)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(MetricsSchema, table)); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT OR REPLACE INTO %s (kanji, strokes, grade, jlpt, radical_freq, usage_freq) VALUES (?, ?, ?, ?, ?, ?)`, table))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range sortedIDs(attrs) {
		a := attrs[id]
		if _, err := stmt.ExecContext(ctx, id, a.Strokes, a.Grade, a.JLPT, a.RadicalFreq, a.UsageFreq); err != nil {
			return fmt.Errorf("inserting %q: %w", id, err)
		}
	}

	return tx.Commit()
}
