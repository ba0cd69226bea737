// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// Arithmetic is on int64 and wraps on overflow. Division truncates toward
// zero so a remainder has the sign of the dividend.

func minus(v []cell.I) (cell.I, error) {
	a, b, err := operands(Minus, v)
	if err != nil {
		return nil, err
	}

	return sym.Int(a - b), nil
}

func plus(v []cell.I) (cell.I, error) {
	a, b, err := operands(Plus, v)
	if err != nil {
		return nil, err
	}

	return sym.Int(a + b), nil
}

func quotient(v []cell.I) (cell.I, error) {
	a, b, err := divisible(Quotient, v)
	if err != nil {
		return nil, err
	}

	return sym.Int(a / b), nil
}

func remainder(v []cell.I) (cell.I, error) {
	a, b, err := divisible(Remainder, v)
	if err != nil {
		return nil, err
	}

	return sym.Int(a % b), nil
}

func times(v []cell.I) (cell.I, error) {
	a, b, err := operands(Times, v)
	if err != nil {
		return nil, err
	}

	return sym.Int(a * b), nil
}

func divisible(p Primitive, v []cell.I) (int64, int64, error) {
	a, b, err := operands(p, v)
	if err != nil {
		return 0, 0, err
	}

	if b == 0 {
		return 0, 0, errsys.Errorf(errsys.DivisionByZero, "%s: division by zero", p)
	}

	return a, b, nil
}
