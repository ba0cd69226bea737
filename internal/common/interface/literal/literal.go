// Released under an MIT license. See LICENSE.

// Package literal renders cells in list notation.
package literal

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// I (literal) is satisfied by every atom and pair. Literal returns list
// notation: (A B C) for a proper list and (A B . C) for an improper one.
type I interface {
	Literal() string
}

// String returns the list notation for c.
func String(c cell.I) string {
	if l, ok := c.(I); ok {
		return l.Literal()
	}

	panic(c.Name() + " has no list notation")
}
