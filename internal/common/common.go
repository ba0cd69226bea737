// Released under an MIT license. See LICENSE.

// Package common renders cells in dot notation.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// Stringer is satisfied by every atom and pair. String returns dot notation.
type Stringer = fmt.Stringer

// String returns the dot notation for c.
func String(c cell.I) string {
	if s, ok := c.(Stringer); ok {
		return s.String()
	}

	panic(c.Name() + " has no dot notation")
}
