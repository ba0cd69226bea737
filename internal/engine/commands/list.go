// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/create"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

func atom(v []cell.I) (cell.I, error) {
	return create.Bool(sym.Is(v[0])), nil
}

func car(v []cell.I) (cell.I, error) {
	if !pair.Is(v[0]) {
		return nil, notPair(Car, v[0])
	}

	return pair.Car(v[0]), nil
}

func cdr(v []cell.I) (cell.I, error) {
	if !pair.Is(v[0]) {
		return nil, notPair(Cdr, v[0])
	}

	return pair.Cdr(v[0]), nil
}

func cons(v []cell.I) (cell.I, error) {
	return pair.Cons(v[0], v[1]), nil
}

func null(v []cell.I) (cell.I, error) {
	return create.Bool(sym.IsNull(v[0])), nil
}

func notPair(p Primitive, c cell.I) error {
	return errsys.Errorf(errsys.OperandNotPair,
		"%s cannot be performed on atom %s", p, sym.Quote(sym.To(c).String()))
}
