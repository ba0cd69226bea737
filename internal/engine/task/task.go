// Released under an MIT license. See LICENSE.

// Package task provides the evaluator: EVAL, APPLY, EVLIS and EVCON.
package task

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/struct/defs"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
)

// T (task) evaluates S-expressions. Definitions made by DEFUN are added to
// the task's defs and persist across calls to Eval.
type T struct {
	defs  *defs.T
	depth int // Current evaluation depth.
	limit int // Maximum evaluation depth. Zero or less means unlimited.
}

// New creates a new task that records definitions in d and allows
// evaluation to nest at most limit levels deep.
func New(d *defs.T, limit int) *T {
	return &T{defs: d, limit: limit}
}

// Eval evaluates c with the bindings in e. Top must be true only when c is
// a top-level expression. DEFUN is not allowed anywhere else.
func (t *T) Eval(c cell.I, e *env.T, top bool) (cell.I, error) {
	if t.limit > 0 && t.depth >= t.limit {
		return nil, errsys.Errorf(errsys.RecursionTooDeep,
			"evaluation nested more than %d levels deep", t.limit)
	}

	t.depth++
	defer func() { t.depth-- }()

	if !pair.Is(c) {
		return t.atom(c, e)
	}

	head := pair.Car(c)
	if !sym.Is(head) {
		return nil, errsys.Errorf(errsys.IllegalFunctionName,
			"'%s' is an illegal function name", literal.String(head))
	}

	name := sym.To(head).String()
	args := pair.Cdr(c)

	if f, ok := lookupForm(name); ok {
		return f(t, args, e, top)
	}

	p, primitive := commands.Lookup(name)
	if !primitive && t.defs.Get(name) == nil {
		return nil, undefined(name)
	}

	if !pair.Is(args) && !sym.IsNull(args) {
		return nil, badArguments(name)
	}

	v, err := t.evlis(name, args, e)
	if err != nil {
		return nil, err
	}

	if primitive {
		return p.Apply(v)
	}

	return t.apply(name, v, e)
}

// Depth returns the current evaluation depth.
func (t *T) Depth() int {
	return t.depth
}

func (t *T) apply(name string, args cell.I, e *env.T) (cell.I, error) {
	def := t.defs.Get(name)
	if def == nil {
		return nil, undefined(name)
	}

	if _, err := validate.Fixed(name, args, list.Length(def.Params)); err != nil {
		return nil, err
	}

	return t.Eval(def.Body, e.Extend(def.Params, args), false)
}

func (t *T) atom(c cell.I, e *env.T) (cell.I, error) {
	if b := sym.Boolean(c); b != nil {
		return b, nil
	}

	if sym.IsInteger(c) {
		return c, nil
	}

	s := sym.To(c).String()
	if !sym.IsIdentifier(s) {
		return nil, errsys.Errorf(errsys.InvalidIdentifier,
			"'%s' is not a valid identifier", sym.Quote(s))
	}

	v, ok := e.Lookup(s)
	if !ok {
		return nil, errsys.Errorf(errsys.UnboundIdentifier,
			"%s is not bound", s)
	}

	return v, nil
}

// evlis evaluates, in order, each element of the argument list args.
func (t *T) evlis(name string, args cell.I, e *env.T) (cell.I, error) {
	expressions, tail := list.Elements(args)
	if !sym.IsNull(tail) {
		return nil, badArguments(name)
	}

	values := make([]cell.I, len(expressions))

	for i, c := range expressions {
		v, err := t.Eval(c, e, false)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	return list.New(values...), nil
}

func badArguments(name string) error {
	return errsys.Errorf(errsys.BadArguments, "'%s' has bad arguments", sym.Quote(name))
}

func undefined(name string) error {
	return errsys.Errorf(errsys.UndefinedFunction, "'%s' is not defined", sym.Quote(name))
}
