// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating cells.
package create

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// Bool returns T or NIL depending on the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return sym.True
	}

	return sym.Nil
}
