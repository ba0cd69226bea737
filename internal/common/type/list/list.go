// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// Elements returns the car of each pair in list, in order, stopping at the
// first atom. The atom that ends the list is returned as well.
// The list must be non-circular.
func Elements(list cell.I) ([]cell.I, cell.I) {
	var elements []cell.I

	for pair.Is(list) {
		elements = append(elements, pair.Car(list))

		list = pair.Cdr(list)
	}

	return elements, list
}

// Length returns 0 for the null atom, 1 for any other atom, and otherwise
// one more than the length of the list's cdr. A list that does not end in
// NIL counts its final atom.
// The list must be non-circular.
func Length(list cell.I) int {
	length := 0

	for pair.Is(list) {
		length++

		list = pair.Cdr(list)
	}

	if !sym.IsNull(list) {
		length++
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Improper(sym.Nil, elements...)
}

// Improper creates a new list composed of all of the elements in elements
// that ends in tail instead of NIL.
func Improper(tail cell.I, elements ...cell.I) cell.I {
	list := tail

	for i := len(elements) - 1; i >= 0; i-- {
		list = pair.Cons(elements[i], list)
	}

	return list
}
