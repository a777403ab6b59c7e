// SPDX-License-Identifier: MIT
package loader

import (
	"fmt"

	"github.com/samber/oops"

	"github.com/katalvlaran/kanjipath/builder"
)

// CodeInputMalformed is attached to every malformed-input error.
const CodeInputMalformed = "loader.input.malformed"

// CodeSourceUnreadable is attached when a source cannot be opened or read.
const CodeSourceUnreadable = "loader.source.read_failure"

// malformed wraps builder.ErrMalformedInput so callers can match either the
// sentinel or the code.
func malformed(source string, format string, args ...any) error {
	return oops.
		Code(CodeInputMalformed).
		In("loader").
		With("source", source).
		Wrap(fmt.Errorf("%w: %s", builder.ErrMalformedInput, fmt.Sprintf(format, args...)))
}

func unreadable(source string, err error) error {
	return oops.
		Code(CodeSourceUnreadable).
		In("loader").
		With("source", source).
		Wrapf(err, "reading %s", source)
}
