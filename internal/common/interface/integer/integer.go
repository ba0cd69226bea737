// Released under an MIT license. See LICENSE.

// Package integer converts a cell to an int64 value, if possible.
package integer

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// I (integer) is any type that may hold an integer value.
type I interface {
	Int() (int64, bool)
}

// Value returns the int64 value for a cell and true, if the cell holds an
// integer. Otherwise it returns 0 and false.
func Value(c cell.I) (int64, bool) {
	i, ok := c.(I)
	if !ok {
		return 0, false
	}

	return i.Int()
}
