// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Attributes, Edge and Table declarations, sentinel errors.
//
// Invariants (enforced at insertion time, never re-checked by readers):
//   - Vertex IDs are unique and non-empty.
//   - Edge weights are finite and ≥ 0.
//   - No self-loops: an edge From==To is rejected.
//   - Every vertex owns a non-nil (possibly empty) edge list.
//
// Concurrency:
//   - A single sync.RWMutex guards the catalog; after Freeze() the table is
//     read-only and any number of goroutines may query it.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for table operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates a second insertion of an existing vertex ID.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative, NaN or infinite edge weight.
	ErrNegativeWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrFrozen indicates a mutation attempted after Freeze().
	ErrFrozen = errors.New("core: table is frozen")
)

// Attributes are the static, learning-relevant properties of one character.
//
// JLPT follows the test convention: lower level means more advanced (N1 hardest).
// Zero values for Grade, JLPT and the frequencies mean "not ranked".
type Attributes struct {
	Strokes     int // stroke count, ≥ 1
	Grade       int // school grade the character is taught in
	JLPT        int // proficiency level, lower = more advanced
	RadicalFreq int // how often the character appears as a component, ≥ 0
	UsageFreq   int // corpus frequency, ≥ 0
}

// Edge is a directed, weighted composed-by relation: the owning vertex is a
// component of To, so the owner should be learned before To.
type Edge struct {
	// To is the composed (more complex) character.
	To string

	// Weight is the learning cost of moving from the owner to To.
	Weight float64
}

// Vertex is one character with fixed attributes and its outgoing edges.
// Vertex values handed out by Table are copies; mutating them never
// affects the table.
type Vertex struct {
	// ID is the character itself.
	ID string

	// Attrs holds the static attributes.
	Attrs Attributes

	// Edges are the outgoing composed-by edges, ascending by weight.
	Edges []Edge
}

// Table is the vertex table: one record per character plus its outgoing
// edge list. Build it with NewTable/AddVertex/AddEdge, then call Freeze.
type Table struct {
	mu sync.RWMutex // guards everything below

	frozen   bool
	vertices map[string]*Vertex // ID → record
	edges    int                // total edge count
}

// NewTable creates an empty, mutable Table.
// Complexity: O(1).
func NewTable() *Table {
	return &Table{vertices: make(map[string]*Vertex)}
}
