// SPDX-License-Identifier: MIT
package learnpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/kanjipath/dijkstra"
)

// Path is an ordered learning sequence from source to target inclusive and
// its total weight. Paths are values; nothing mutates them after creation.
type Path struct {
	IDs    []string
	Weight float64
}

// Source returns the first character, or "" for the zero Path.
func (p Path) Source() string {
	if len(p.IDs) == 0 {
		return ""
	}

	return p.IDs[0]
}

// Target returns the last character, or "" for the zero Path.
func (p Path) Target() string {
	if len(p.IDs) == 0 {
		return ""
	}

	return p.IDs[len(p.IDs)-1]
}

// Steps returns the number of characters on the path.
func (p Path) Steps() int { return len(p.IDs) }

// String renders the path as "一 → 二 → 三".
func (p Path) String() string { return strings.Join(p.IDs, " → ") }

// Reconstruct walks res.Prev from target back to the source and returns the
// path in source → target order.
//
// Errors:
//   - ErrNotFound:       target is not in res.Dist.
//   - ErrUnreachable:    res.Dist[target] is +Inf.
//   - ErrCorruptedState: the chain is longer than |V| or ends somewhere
//     other than res.Source.
//
// Complexity: O(path length).
func Reconstruct(res *dijkstra.Result, target string) (Path, error) {
	if res == nil {
		return Path{}, fmt.Errorf("%w: nil result", ErrCorruptedState)
	}
	d, ok := res.Dist[target]
	if !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	if math.IsInf(d, 1) {
		return Path{}, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, res.Source)
	}

	// A well-formed chain visits each vertex at most once.
	limit := len(res.Dist)
	ids := make([]string, 0, 8)
	for cur := target; cur != ""; cur = res.Prev[cur] {
		if len(ids) >= limit {
			return Path{}, fmt.Errorf("%w: chain from %q exceeds %d steps", ErrCorruptedState, target, limit)
		}
		ids = append(ids, cur)
	}
	if ids[len(ids)-1] != res.Source {
		return Path{}, fmt.Errorf("%w: chain from %q ends at %q, not source %q",
			ErrCorruptedState, target, ids[len(ids)-1], res.Source)
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return Path{IDs: ids, Weight: d}, nil
}
