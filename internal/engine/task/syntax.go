// Released under an MIT license. See LICENSE.

package task

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

// A form is evaluated by a fixed rule instead of evaluate-then-apply.
// It receives its operands unevaluated.
type form func(t *T, args cell.I, e *env.T, top bool) (cell.I, error)

// Forms returns the name of every special form.
func Forms() []string {
	return []string{"COND", "DEFUN", "QUOTE"}
}

func lookupForm(name string) (form, bool) {
	switch strings.ToUpper(name) {
	case "COND":
		return cond, true
	case "DEFUN":
		return defun, true
	case "QUOTE":
		return quote, true
	}

	return nil, false
}

// (COND (test result) ...)
func cond(t *T, args cell.I, e *env.T, _ bool) (cell.I, error) {
	clauses, err := conditional(args)
	if err != nil {
		return nil, err
	}

	return t.evcon(clauses, e)
}

// (DEFUN name (param ...) body)
func defun(t *T, args cell.I, _ *env.T, top bool) (cell.I, error) {
	if !top {
		return nil, errsys.New(errsys.NestedDefunForbidden,
			"nested DEFUN is not allowed")
	}

	v, tail := list.Elements(args)
	if len(v) != 3 || !sym.IsNull(tail) {
		return nil, errsys.New(errsys.MalformedDefun,
			"function definition is not in good form")
	}

	name, params, body := v[0], v[1], v[2]

	if !sym.Is(name) || !sym.IsIdentifier(sym.To(name).String()) {
		return nil, errsys.Errorf(errsys.MalformedDefun,
			"'%s' is a bad function name", sym.Quote(literal.String(name)))
	}

	ps, tail := list.Elements(params)
	if !sym.IsNull(tail) {
		return nil, errsys.Errorf(errsys.MalformedDefun,
			"'%s' is a bad parameter list", sym.Quote(literal.String(params)))
	}

	for _, p := range ps {
		if !sym.Is(p) || !sym.IsIdentifier(sym.To(p).String()) {
			return nil, errsys.Errorf(errsys.MalformedDefun,
				"'%s' is a bad parameter", sym.Quote(literal.String(p)))
		}
	}

	t.defs.Add(sym.To(name).String(), params, body)

	return name, nil
}

// (QUOTE expression)
func quote(_ *T, args cell.I, _ *env.T, _ bool) (cell.I, error) {
	v, err := validate.Fixed("QUOTE", args, 1)
	if err != nil {
		return nil, err
	}

	return v[0], nil
}

// conditional returns the clauses of a COND after checking that there is
// at least one and that each is a two element list.
func conditional(args cell.I) ([]cell.I, error) {
	clauses, tail := list.Elements(args)
	if len(clauses) == 0 || !sym.IsNull(tail) {
		return nil, errsys.New(errsys.MalformedConditional,
			"conditional must be a non-empty list of clauses")
	}

	for _, c := range clauses {
		v, tail := list.Elements(c)
		if len(v) != 2 || !sym.IsNull(tail) {
			return nil, errsys.Errorf(errsys.MalformedConditional,
				"'%s' is not a (test result) clause", sym.Quote(literal.String(c)))
		}
	}

	return clauses, nil
}

// evcon evaluates the result of the first clause whose test is T.
func (t *T) evcon(clauses []cell.I, e *env.T) (cell.I, error) {
	for _, c := range clauses {
		test, err := t.Eval(pair.Car(c), e, false)
		if err != nil {
			return nil, err
		}

		if test == sym.True {
			return t.Eval(pair.Cadr(c), e, false)
		}
	}

	return nil, errsys.New(errsys.NoMatchingClause, "no conditional clause is true")
}
