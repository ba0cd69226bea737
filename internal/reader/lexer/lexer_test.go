// Released under an MIT license. See LICENSE.

package lexer

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/michaelmacinnis/lisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
)

type harness struct {
	label string
	lexer *T
	t     *testing.T
}

func TestDot(t *testing.T) {
	h := setup(t, "Dot", "(A . B)")

	h.expect(
		h.literal("(", 1, 1),
		h.symbol("A", 1, 2),
		h.literal(".", 1, 4),
		h.symbol("B", 1, 6),
		h.literal(")", 1, 7),
		nil,
	)
}

func TestDotInsideSymbol(t *testing.T) {
	h := setup(t, "DotInsideSymbol", "A.B .C")

	h.expect(
		h.symbol("A.B", 1, 1),
		h.literal(".", 1, 5),
		h.symbol("C", 1, 6),
		nil,
	)
}

func TestEmpty(t *testing.T) {
	h := setup(t, "Empty", " \t\n ")

	h.expect(nil)
}

func TestMultipleLines(t *testing.T) {
	h := setup(t, "MultipleLines", "(PLUS\n\t1\n  22)\n")

	h.expect(
		h.literal("(", 1, 1),
		h.symbol("PLUS", 1, 2),
		h.symbol("1", 2, 2),
		h.symbol("22", 3, 3),
		h.literal(")", 3, 5),
		nil,
	)
}

func TestNestedParens(t *testing.T) {
	h := setup(t, "NestedParens", "(()A)")

	h.expect(
		h.literal("(", 1, 1),
		h.literal("(", 1, 2),
		h.literal(")", 1, 3),
		h.symbol("A", 1, 4),
		h.literal(")", 1, 5),
		nil,
	)
}

func TestReadError(t *testing.T) {
	failure := errors.New("failure")

	l := New("ReadError", iotest.ErrReader(failure))

	if l.Token() != nil {
		t.Fatal("Expected no tokens")
	}

	if !errors.Is(l.Err(), failure) {
		t.Fatalf("Expected %v; got %v", failure, l.Err())
	}
}

func TestSymbols(t *testing.T) {
	h := setup(t, "Symbols", "-12 foo+bar ü")

	h.expect(
		h.symbol("-12", 1, 1),
		h.symbol("foo+bar", 1, 5),
		h.symbol("ü", 1, 13),
		nil,
	)
}

func setup(t *testing.T, label, input string) *harness {
	return &harness{
		label: label,
		lexer: New(label, strings.NewReader(input)),
		t:     t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string, line, char int) *token.T {
	return token.New(token.Class(s[0]), s, h.loc(line, char))
}

func (h *harness) loc(line, char int) loc.T {
	return loc.T{
		Char: char,
		Line: line,
		Name: h.label,
	}
}

func (h *harness) symbol(s string, line, char int) *token.T {
	return token.New(token.Symbol, s, h.loc(line, char))
}
