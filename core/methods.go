// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Table lifecycle (AddVertex, AddEdge, Freeze) and read-only queries.
//
// Determinism:
//   - IDs() returns vertex IDs sorted lexicographically ascending.
//   - After Freeze(), every edge list is ordered by (Weight asc, To asc).
//
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.
//   - Returned slices are fresh copies.
//
// AI-Hints (file):
//   - Algorithms iterate with EachEdge to avoid a copy per visited vertex.
//   - Edge order is a hint only; no algorithm may depend on it for correctness.
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex registers a character with its attributes and an empty edge list.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under write lock, reject frozen tables and duplicates.
//   - Stage 3: Allocate the record with a non-nil edge slice.
//
// Errors:
//   - ErrEmptyVertexID, ErrFrozen, ErrDuplicateVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (t *Table) AddVertex(id string, attrs Attributes) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return ErrFrozen
	}
	if _, exists := t.vertices[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}

	// A vertex with no known relations has an empty edge list, not a nil one.
	t.vertices[id] = &Vertex{ID: id, Attrs: attrs, Edges: make([]Edge, 0)}

	return nil
}

// AddEdge appends the directed edge from→to with the given weight.
//
// Implementation:
//   - Stage 1: Validate IDs, reject self-loops and bad weights.
//   - Stage 2: Under write lock, reject frozen tables and unknown endpoints.
//   - Stage 3: Append to the owner's edge list.
//
// Behavior highlights:
//   - Both endpoints must already exist; AddEdge never creates vertices.
//   - Parallel edges are not deduplicated here; the builder collapses them.
//
// Errors:
//   - ErrEmptyVertexID, ErrSelfLoop, ErrNegativeWeight, ErrFrozen, ErrVertexNotFound.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (t *Table) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return ErrFrozen
	}
	owner, ok := t.vertices[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok = t.vertices[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	owner.Edges = append(owner.Edges, Edge{To: to, Weight: weight})
	t.edges++

	return nil
}

// Freeze sorts every edge list by ascending weight (ties by target ID) and
// makes the table read-only. Calling Freeze twice is a no-op.
//
// Complexity:
//   - Time O(V + E log E), Space O(1) extra.
func (t *Table) Freeze() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return
	}
	for _, v := range t.vertices {
		sortEdges(v.Edges)
	}
	t.frozen = true
}

// Frozen reports whether Freeze has been called.
func (t *Table) Frozen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.frozen
}

// Has reports whether id is present (empty ID ⇒ false).
// Complexity: O(1).
func (t *Table) Has(id string) bool {
	if id == "" {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.vertices[id]

	return ok
}

// Vertex returns a copy of the record for id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (t *Table) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := Vertex{ID: v.ID, Attrs: v.Attrs, Edges: make([]Edge, len(v.Edges))}
	copy(out.Edges, v.Edges)

	return out, nil
}

// Attrs returns the attributes of id without copying its edges.
func (t *Table) Attrs(id string) (Attributes, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.vertices[id]
	if !ok {
		return Attributes{}, false
	}

	return v.Attrs, true
}

// Edges returns a copy of the outgoing edges of id.
// Errors: ErrVertexNotFound.
func (t *Table) Edges(id string) ([]Edge, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(v.Edges))
	copy(out, v.Edges)

	return out, nil
}

// EachEdge calls fn for every outgoing edge of id in stored order and
// reports whether id exists. fn must not call mutating Table methods.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (t *Table) EachEdge(id string, fn func(Edge)) bool {
	// AI-HINT: Hot path for shortest-path relaxation; no allocation.
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.vertices[id]
	if !ok {
		return false
	}
	for _, e := range v.Edges {
		fn(e)
	}

	return true
}

// IDs returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (t *Table) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.vertices))
	for id := range t.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Len returns the number of vertices.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.vertices)
}

// EdgeCount returns the total number of edges.
func (t *Table) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.edges
}

// sortEdges orders edges by (Weight asc, To asc) in place.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}

		return edges[i].To < edges[j].To
	})
}
