// Released under an MIT license. See LICENSE.

// Package loc tracks where in its input a token starts.
package loc

import (
	"strconv"
)

// T (loc) is a position in a named input. Lines and characters count
// from 1. Characters are runes, not bytes.
type T struct {
	Char int
	Line int
	Name string
}

type loc = T

// Advance moves l past the rune r.
func (l *loc) Advance(r rune) {
	if r == '\n' {
		l.Line++
		l.Char = 1

		return
	}

	l.Char++
}

// String returns l as name:line:char.
func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
