// Released under an MIT license. See LICENSE.

package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/engine/boot"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// all parses every expression in s, stopping at the first error.
func all(s string) ([]cell.I, error) {
	p := New(lexer.New("test", strings.NewReader(s)).Token)

	var cs []cell.I

	for {
		c, err := p.Parse()
		if errors.Is(err, io.EOF) {
			return cs, nil
		}

		if err != nil {
			return cs, err
		}

		cs = append(cs, c)
	}
}

// check parses s, prints each expression in dot notation, and checks
// that reparsing the result produces equal expressions.
func check(t *testing.T, s string) {
	t.Helper()

	parsed, err := all(s)
	require.NoError(t, err)

	printed := make([]string, len(parsed))
	for i, c := range parsed {
		printed[i] = common.String(c)
	}

	reparsed, err := all(strings.Join(printed, "\n"))
	require.NoError(t, err)
	require.Len(t, reparsed, len(parsed))

	for i := range parsed {
		assert.True(t, parsed[i].Equal(reparsed[i]),
			"Parsed (%s) and reparsed (%s) do not match",
			printed[i], common.String(reparsed[i]))
	}
}

func TestBoot(t *testing.T) {
	check(t, boot.Script())
}

func TestDottedPair(t *testing.T) {
	cs, err := all("(A . B)")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "(A . B)", common.String(cs[0]))
}

func TestEmptyList(t *testing.T) {
	cs, err := all("() ( )")
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Same(t, sym.Nil, cs[0])
	assert.Same(t, sym.Nil, cs[1])
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		input  string
		reason string
	}{
		{")", "test:1:1: ')' is a bad s-expression"},
		{".", "test:1:1: '.' is a bad s-expression"},
		{"(. A)", "test:1:2: misplaced '.'"},
		{"(A . B C)", "test:1:8: expected ')' got 'C'"},
		{"(A . )", "test:1:6: ')' is a bad s-expression"},
		{"(A . B", "expected ')' got end of input"},
		{"(A (B)", "unexpected end of input in list"},
	} {
		_, err := all(tc.input)
		assert.ErrorIs(t, err, errsys.MalformedInput, tc.input)
		assert.EqualError(t, err, tc.reason, tc.input)
	}
}

func TestImproperList(t *testing.T) {
	cs, err := all("(A B . C)")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "(A . (B . C))", common.String(cs[0]))
}

func TestList(t *testing.T) {
	cs, err := all("(CONS 1 (CONS 2 NIL))")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "(CONS . (1 . ((CONS . (2 . (NIL . NIL))) . NIL)))",
		common.String(cs[0]))
}

func TestRecoveryAfterError(t *testing.T) {
	p := New(lexer.New("test", strings.NewReader(") A")).Token)

	_, err := p.Parse()
	assert.ErrorIs(t, err, errsys.MalformedInput)

	c, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, "A", common.String(c))

	_, err = p.Parse()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRoundTrip(t *testing.T) {
	check(t, "A\n-7\n(A)\n(A . B)\n((A . B) . (C . D))\n(1 (2 3) . 4)\n")
}

func TestSingletons(t *testing.T) {
	cs, err := all("T NIL nil")
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Same(t, sym.True, cs[0])
	assert.Same(t, sym.Nil, cs[1])
	assert.NotSame(t, sym.Nil, cs[2])
}
