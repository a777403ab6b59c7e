// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"sort"
	"strings"

	"github.com/katalvlaran/kanjipath/core"
)

// DetectCycles reports the cycles closed by back-edges during a full DFS
// of t. Decomposition data may list two characters as components of each
// other; such loops do not break shortest paths but make a learning order
// impossible.
//
// Each cycle is closed ([v0, …, v0]) and rotated so its smallest ID comes
// first; cycles are deduplicated and sorted. A table without cycles yields
// nil.
// Complexity: O(V + E + C·L) for C cycles of average length L.
func DetectCycles(ctx context.Context, t *core.Table) ([][]string, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d := &cycleDetector{
		table: t,
		ctx:   ctx,
		state: make(map[string]int, t.Len()),
		seen:  make(map[string]bool),
	}
	for _, id := range t.IDs() {
		if d.state[id] == White {
			if err := d.visit(id); err != nil {
				return nil, err
			}
		}
	}
	sort.Slice(d.cycles, func(i, j int) bool {
		return strings.Join(d.cycles[i], ",") < strings.Join(d.cycles[j], ",")
	})

	return d.cycles, nil
}

type cycleDetector struct {
	table  *core.Table
	ctx    context.Context
	state  map[string]int
	path   []string
	seen   map[string]bool
	cycles [][]string
}

func (d *cycleDetector) visit(id string) error {
	if err := d.ctx.Err(); err != nil {
		return err
	}
	d.state[id] = Gray
	d.path = append(d.path, id)

	edges, err := d.table.Edges(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		switch d.state[e.To] {
		case White:
			if err = d.visit(e.To); err != nil {
				return err
			}
		case Gray:
			d.record(d.path[indexOf(d.path, e.To):])
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black

	return nil
}

// record stores an open cycle segment in canonical closed form.
func (d *cycleDetector) record(segment []string) {
	canon := minimalRotation(segment)
	canon = append(canon, canon[0])
	sig := strings.Join(canon, ",")
	if d.seen[sig] {
		return
	}
	d.seen[sig] = true
	d.cycles = append(d.cycles, canon)
}
