// Released under an MIT license. See LICENSE.

// Package sym provides the atom cell type.
package sym

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/integer"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const name = "atom"

// T (sym) wraps Go's string type. An atom's token never changes.
type T string

type sym = T

//nolint:gochecknoglobals
var (
	// Nil is the null atom. It is false and the empty list.
	Nil cell.I

	// True is the true atom.
	True cell.I
)

// New creates a sym cell. The tokens T and NIL yield the singletons.
func New(v string) cell.I {
	switch v {
	case "T":
		return True
	case "NIL":
		return Nil
	}

	s := sym(v)

	return &s
}

// Int creates a sym cell for the integer i.
func Int(i int64) cell.I {
	return New(strconv.FormatInt(i, 10))
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Int returns the integer value of the sym s, if it has one.
func (s *sym) Int() (int64, bool) {
	i, err := strconv.ParseInt(string(*s), 10, 64)
	if err != nil {
		return 0, false
	}

	return i, true
}

// Literal returns the list notation for the sym s. It is the token.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the dot notation for the sym s. It is the token.
func (s *sym) String() string {
	return string(*s)
}

// Functions specific to sym.

// Boolean returns the canonical singleton if c is a sym whose token is T
// or NIL in any case. Otherwise it returns nil.
func Boolean(c cell.I) cell.I {
	if !Is(c) {
		return nil
	}

	switch t := To(c).String(); {
	case strings.EqualFold(t, "T"):
		return True
	case strings.EqualFold(t, "NIL"):
		return Nil
	}

	return nil
}

// IsIdentifier returns true if v starts with a letter and contains only
// letters and digits.
func IsIdentifier(v string) bool {
	for i, r := range v {
		if !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}

	return v != ""
}

// IsInteger returns true if c is a sym that holds an integer.
func IsInteger(c cell.I) bool {
	_, ok := integer.Value(c)

	return ok
}

// IsNull returns true if c is a sym whose token is NIL in any case.
func IsNull(c cell.I) bool {
	return Is(c) && strings.EqualFold(To(c).String(), "NIL")
}

// Quote returns v unchanged if it can be shown on a single line as is.
// Otherwise it returns v in dollar single-quoted form.
func Quote(v string) string {
	q := adapted.CanonicalString(v)

	if v == "" || q[2:len(q)-1] != v {
		return q
	}

	return v
}

// Same returns true if a and b are both syms with tokens that are equal
// under case folding.
func Same(a, b cell.I) bool {
	return Is(a) && Is(b) && strings.EqualFold(To(a).String(), To(b).String())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type may hold an integer.
	_ = integer.I(&t)

	// The sym type has a list notation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	t := sym("T")
	True = &t

	n := sym("NIL")
	Nil = &n
}
