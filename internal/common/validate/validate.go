// Released under an MIT license. See LICENSE.

// Package validate checks argument lists.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// Fixed returns the n elements of the list actual. If actual does not end
// in NIL, Fixed returns a BadArguments error. If actual does not have
// exactly n elements, Fixed returns an ArityMismatch error.
// Name is the name of the function being validated.
func Fixed(name string, actual cell.I, n int) ([]cell.I, error) {
	expected, tail := list.Elements(actual)
	if !sym.IsNull(tail) {
		return nil, errsys.Errorf(errsys.BadArguments,
			"%s has bad arguments", name)
	}

	if len(expected) != n {
		s := Count(n, "argument", "s")

		return nil, errsys.Errorf(errsys.ArityMismatch,
			"%s expected %s, passed %d", name, s, len(expected))
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
