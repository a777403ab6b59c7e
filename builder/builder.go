// SPDX-License-Identifier: MIT
// Package: kanjipath/builder
//
// builder.go: external data → frozen core.Table.
//
// Edge direction is fixed: component → composed character (learn the
// component first). Relations naming a character without attributes are
// dropped, each drop is recorded in the Report and logged. Invalid
// attributes abort the whole build.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kanjipath/core"
)

// Input is what the loader hands to Build.
type Input struct {
	// Attributes maps each character to its static attributes.
	Attributes map[string]core.Attributes

	// ComposedBy maps a component to the characters built from it
	// (the inverse of a character → components decomposition; see Invert).
	ComposedBy map[string][]string
}

// DropReason explains why a relation did not become an edge.
type DropReason string

const (
	// DropUnknownComponent: the component side has no attributes.
	DropUnknownComponent DropReason = "unknown_component"
	// DropUnknownComposed: the composed side has no attributes.
	DropUnknownComposed DropReason = "unknown_composed"
	// DropSelfRelation: a character listed as its own component.
	DropSelfRelation DropReason = "self_relation"
	// DropDuplicate: the same relation listed more than once.
	DropDuplicate DropReason = "duplicate"
)

// Drop records one relation that was left out of the table.
type Drop struct {
	Component string
	Composed  string
	Reason    DropReason
}

// Report summarizes a build.
type Report struct {
	Policy   string
	Vertices int
	Edges    int
	Dropped  []Drop
}

// DroppedBy counts drops with the given reason.
func (r *Report) DroppedBy(reason DropReason) int {
	n := 0
	for _, d := range r.Dropped {
		if d.Reason == reason {
			n++
		}
	}

	return n
}

// Build constructs and freezes a core.Table from in.
//
// Steps:
//  1. Validate every attribute record (ErrMalformedInput on the first bad one).
//  2. Add one vertex per attributed character, in sorted order.
//  3. For every ComposedBy relation A→B with both ends known, add the edge
//     weighted by the policy; record every other relation as a Drop.
//  4. Freeze the table (edge lists sorted by ascending weight).
//
// Errors abort the build; the returned table and report are nil then.
// Complexity: O(V log V + E log E).
func Build(in Input, opts ...BuilderOption) (*core.Table, *Report, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.policy == nil {
		return nil, nil, ErrNilPolicy
	}

	chars := sortedKeys(in.Attributes)
	for _, ch := range chars {
		if err := validateAttributes(ch, in.Attributes[ch]); err != nil {
			return nil, nil, err
		}
	}

	t := core.NewTable()
	for _, ch := range chars {
		if err := t.AddVertex(ch, in.Attributes[ch]); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}

	rep := &Report{Policy: cfg.policy.Name(), Vertices: len(chars)}
	for _, comp := range sortedKeys(in.ComposedBy) {
		fromAttrs, known := in.Attributes[comp]
		seen := make(map[string]bool, len(in.ComposedBy[comp]))
		for _, composed := range in.ComposedBy[comp] {
			var reason DropReason
			toAttrs, composedKnown := in.Attributes[composed]
			switch {
			case composed == comp:
				reason = DropSelfRelation
			case !known:
				reason = DropUnknownComponent
			case !composedKnown:
				reason = DropUnknownComposed
			case seen[composed]:
				reason = DropDuplicate
			}
			if reason != "" {
				rep.Dropped = append(rep.Dropped, Drop{Component: comp, Composed: composed, Reason: reason})
				cfg.logger.Debug("relation dropped",
					"component", comp, "composed", composed, "reason", string(reason))
				continue
			}
			seen[composed] = true

			w := cfg.policy.Weight(fromAttrs, toAttrs)
			if err := t.AddEdge(comp, composed, w); err != nil {
				return nil, nil, fmt.Errorf("builder: policy %s produced an unusable edge: %w", cfg.policy.Name(), err)
			}
			rep.Edges++
		}
	}
	t.Freeze()

	if len(rep.Dropped) > 0 {
		cfg.logger.Info("relations dropped during build",
			"total", len(rep.Dropped),
			string(DropUnknownComponent), rep.DroppedBy(DropUnknownComponent),
			string(DropUnknownComposed), rep.DroppedBy(DropUnknownComposed),
			string(DropSelfRelation), rep.DroppedBy(DropSelfRelation),
			string(DropDuplicate), rep.DroppedBy(DropDuplicate),
		)
	}
	cfg.logger.Info("vertex table built",
		"policy", rep.Policy, "vertices", rep.Vertices, "edges", rep.Edges)

	return t, rep, nil
}

// Invert turns a character → components decomposition into the
// component → composed-characters map Build expects. Self-components are
// skipped; output lists are sorted and free of duplicates.
// Complexity: O(R log R) for R relations.
func Invert(decomposition map[string][]string) map[string][]string {
	out := make(map[string][]string)
	seen := make(map[[2]string]bool)
	for ch, comps := range decomposition {
		for _, comp := range comps {
			if comp == ch || comp == "" {
				continue
			}
			key := [2]string{comp, ch}
			if seen[key] {
				continue
			}
			seen[key] = true
			out[comp] = append(out[comp], ch)
		}
	}
	for comp := range out {
		sort.Strings(out[comp])
	}

	return out
}

func validateAttributes(ch string, a core.Attributes) error {
	switch {
	case ch == "":
		return fmt.Errorf("%w: empty character", ErrMalformedInput)
	case a.Strokes < 1:
		return fmt.Errorf("%w: %q has stroke count %d", ErrMalformedInput, ch, a.Strokes)
	case a.Grade < 0 || a.JLPT < 0:
		return fmt.Errorf("%w: %q has negative grade/JLPT (%d/%d)", ErrMalformedInput, ch, a.Grade, a.JLPT)
	case a.RadicalFreq < 0 || a.UsageFreq < 0:
		return fmt.Errorf("%w: %q has negative frequency (radical=%d usage=%d)",
			ErrMalformedInput, ch, a.RadicalFreq, a.UsageFreq)
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
