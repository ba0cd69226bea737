// Released under an MIT license. See LICENSE.

// Package cell defines the expression interface.
package cell

// I (cell) is an expression: an atom or a pair. No other types implement I.
type I interface {
	// Equal reports structural equality. Atoms compare tokens exactly.
	Equal(c I) bool

	// Name is "atom" or "cons". It appears in internal panics only.
	Name() string
}
