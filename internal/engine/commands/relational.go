// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/create"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

func eq(v []cell.I) (cell.I, error) {
	if !sym.Is(v[0]) || !sym.Is(v[1]) {
		return nil, errsys.New(errsys.AtomsOnly, "EQ compares atoms only")
	}

	return create.Bool(sym.Same(v[0], v[1])), nil
}

func greater(v []cell.I) (cell.I, error) {
	a, b, err := operands(Greater, v)
	if err != nil {
		return nil, err
	}

	return create.Bool(a > b), nil
}

func less(v []cell.I) (cell.I, error) {
	a, b, err := operands(Less, v)
	if err != nil {
		return nil, err
	}

	return create.Bool(a < b), nil
}
