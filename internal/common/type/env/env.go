// Released under an MIT license. See LICENSE.

// Package env provides the association list used to bind parameters.
//
// An env is persistent. Extending an env returns a new env that shares
// every existing binding with the original. The original is unchanged so
// that a callee's bindings are never visible to its caller or siblings.
package env

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// T (env) is a single binding and the bindings that precede it.
// The nil *T is the empty env.
type T struct {
	name     string
	value    cell.I
	previous *env
}

type env = T

// Bind returns a new env with k bound to v in front of the bindings in e.
func (e *env) Bind(k string, v cell.I) *env {
	return &env{name: k, value: v, previous: e}
}

// Extend returns a new env with each sym in names bound to the
// corresponding element of values. Binding stops at the end of the
// shorter list. Later names shadow earlier ones with the same name.
func (e *env) Extend(names, values cell.I) *env {
	for pair.Is(names) && pair.Is(values) {
		e = e.Bind(sym.To(pair.Car(names)).String(), pair.Car(values))

		names = pair.Cdr(names)
		values = pair.Cdr(values)
	}

	return e
}

// Len returns the number of bindings in e, including shadowed bindings.
func (e *env) Len() int {
	n := 0

	for ; e != nil; e = e.previous {
		n++
	}

	return n
}

// Lookup returns the most recent value bound to k in e. Names are compared
// without regard to case.
func (e *env) Lookup(k string) (cell.I, bool) {
	for ; e != nil; e = e.previous {
		if strings.EqualFold(e.name, k) {
			return e.value, true
		}
	}

	return nil, false
}
