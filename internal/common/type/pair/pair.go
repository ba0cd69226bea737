// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

const name = "cons"

// T (pair) is a cons cell. A pair's members are fixed at construction.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	return Is(c) && p.car.Equal(Car(c)) && p.cdr.Equal(Cdr(c))
}

// Literal returns the list notation for the pair p.
func (p *pair) Literal() string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(literal.String(p.car))

	tail := p.cdr
	for Is(tail) {
		b.WriteString(" ")
		b.WriteString(literal.String(Car(tail)))

		tail = Cdr(tail)
	}

	if !sym.IsNull(tail) {
		b.WriteString(" . ")
		b.WriteString(literal.String(tail))
	}

	b.WriteString(")")

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the dot notation for the pair p.
func (p *pair) String() string {
	return "(" + common.String(p.car) + " . " + common.String(p.cdr) + ")"
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caddr(c cell.I) cell.I {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if p, ok := c.(*pair); ok {
		return p
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a list notation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}
