// SPDX-License-Identifier: MIT
package learnpath

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Sentinel outcomes. Match them with errors.Is; every error returned by
// Service also carries a Code (see CodeOf) and the query's fields.
var (
	// ErrNotFound: the source or target is not in the table. No search ran.
	ErrNotFound = errors.New("learnpath: character not found")

	// ErrUnreachable: both characters exist but no path joins them.
	ErrUnreachable = errors.New("learnpath: target unreachable from source")

	// ErrCorruptedState: the predecessor chain did not lead back to the
	// source within |V| steps. Indicates a broken engine invariant.
	ErrCorruptedState = errors.New("learnpath: corrupted predecessor map")
)

// Code is the machine-readable identifier attached to service errors.
type Code string

const (
	CodeQueryNotFound       Code = "learnpath.query.not_found"
	CodeQueryUnreachable    Code = "learnpath.query.unreachable"
	CodeQueryInvalid        Code = "learnpath.query.invalid_input"
	CodeQueryBudgetExceeded Code = "learnpath.query.budget_exceeded"
	CodeQueryCanceled       Code = "learnpath.query.canceled"
	CodeStateCorrupted      Code = "learnpath.state.corrupted"
	CodeEngineFailure       Code = "learnpath.engine.failure"
)

// wrap attaches code and structured fields to err. errors.Is keeps working
// through the oops wrapper.
func wrap(err error, code Code, fields ...any) error {
	if err == nil {
		return nil
	}

	return oops.
		Code(string(code)).
		In("learnpath").
		With(fields...).
		Wrap(err)
}

// CodeOf extracts the Code attached by the service, or "" for plain errors.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}

	return Code(fmt.Sprint(oopsErr.Code()))
}

// FieldsOf returns the structured fields attached to a service error.
func FieldsOf(err error) map[string]any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}

	return oopsErr.Context()
}
