// Released under an MIT license. See LICENSE.

// Package commands provides the primitive functions.
package commands

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

// Primitive identifies a built-in function.
type Primitive int

// Primitives.
const (
	None Primitive = iota

	Atom
	Car
	Cdr
	Cons
	Eq
	Greater
	Int
	Less
	Minus
	Null
	Plus
	Quotient
	Remainder
	Times

	count
)

//nolint:gochecknoglobals
var names = [count]string{
	None:      "",
	Atom:      "ATOM",
	Car:       "CAR",
	Cdr:       "CDR",
	Cons:      "CONS",
	Eq:        "EQ",
	Greater:   "GREATER",
	Int:       "INT",
	Less:      "LESS",
	Minus:     "MINUS",
	Null:      "NULL",
	Plus:      "PLUS",
	Quotient:  "QUOTIENT",
	Remainder: "REMAINDER",
	Times:     "TIMES",
}

// Lookup returns the primitive named s, compared without regard to case.
func Lookup(s string) (Primitive, bool) {
	for p := Atom; p < count; p++ {
		if strings.EqualFold(names[p], s) {
			return p, true
		}
	}

	return None, false
}

// Names returns the name of every primitive.
func Names() []string {
	return append([]string(nil), names[Atom:]...)
}

// Apply validates the number of arguments in args and applies p to them.
func (p Primitive) Apply(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(p.String(), args, p.Arity())
	if err != nil {
		return nil, err
	}

	switch p {
	case Atom:
		return atom(v)
	case Car:
		return car(v)
	case Cdr:
		return cdr(v)
	case Cons:
		return cons(v)
	case Eq:
		return eq(v)
	case Greater:
		return greater(v)
	case Int:
		return isInt(v)
	case Less:
		return less(v)
	case Minus:
		return minus(v)
	case Null:
		return null(v)
	case Plus:
		return plus(v)
	case Quotient:
		return quotient(v)
	case Remainder:
		return remainder(v)
	case Times:
		return times(v)
	case None, count:
	}

	panic("unknown primitive " + p.String())
}

// Arity returns the number of arguments p expects.
func (p Primitive) Arity() int {
	switch p {
	case Atom, Car, Cdr, Int, Null:
		return 1
	case Cons, Eq, Greater, Less, Minus, Plus, Quotient, Remainder, Times:
		return 2
	case None, count:
	}

	return 0
}

// String returns the name of p.
func (p Primitive) String() string {
	if p < None || p >= count {
		return "Primitive(?)"
	}

	return names[p]
}
