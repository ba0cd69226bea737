// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/integer"
	"github.com/michaelmacinnis/lisp/internal/common/type/create"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

func isInt(v []cell.I) (cell.I, error) {
	return create.Bool(sym.IsInteger(v[0])), nil
}

func operands(p Primitive, v []cell.I) (int64, int64, error) {
	a, ok := integer.Value(v[0])
	if !ok {
		return 0, 0, nonInteger(p)
	}

	b, ok := integer.Value(v[1])
	if !ok {
		return 0, 0, nonInteger(p)
	}

	return a, b, nil
}

func nonInteger(p Primitive) error {
	return errsys.Errorf(errsys.NonIntegerOperand, "%s: integers only", p)
}
