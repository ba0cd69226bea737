// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(t *testing.T, e *T, input string) []string {
	t.Helper()

	var b bytes.Buffer

	err := e.Session(reader.New("test", strings.NewReader(input)), &b)
	require.NoError(t, err)

	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func TestBoot(t *testing.T) {
	e := New(0)
	require.NoError(t, e.Boot())

	e.ListNotation(true)

	assert.Equal(t, []string{
		"(1 2 3)",
		"(3 2 1)",
		"3",
		"T",
		"NIL",
		"T",
		"C",
		"NIL",
		"T",
	}, session(t, e, `
(APPEND (QUOTE (1 2)) (QUOTE (3)))
(REVERSE (QUOTE (1 2 3)))
(LEN (QUOTE (A B C)))
(MEMBER (QUOTE (B)) (QUOTE (A (B) C)))
(MEMBER 4 (QUOTE (1 2 3)))
(EQUAL (QUOTE (A (B . C))) (QUOTE (a (b . c))))
(NTH 2 (QUOTE (A B C)))
(AND T NIL)
(NOT (OR NIL NIL))
`))

	assert.Contains(t, e.Names(), "REVAPPEND")
}

func TestDotNotation(t *testing.T) {
	e := New(0)

	assert.Equal(t, []string{
		"(1 . (2 . NIL))",
		"(A . B)",
		"NIL",
	}, session(t, e, "(CONS 1 (CONS 2 NIL)) (QUOTE (A . B)) (QUOTE ())"))
}

func TestErrorsContinue(t *testing.T) {
	e := New(0)

	assert.Equal(t, []string{
		"DOUBLE",
		"10",
		"**ERR** B is not bound",
		"**ERR** CAR cannot be performed on atom A",
		"**ERR** 'FOO' is not defined",
		"**ERR** test:6:1: ')' is a bad s-expression",
		"3",
	}, session(t, e, `(DEFUN DOUBLE (X) (PLUS X X))
(DOUBLE 5)
(COND ((EQ 1 2) A) (T B))
(CAR (QUOTE A))
(FOO)
`+")\n(PLUS 1 2)"))
}

func TestListNotation(t *testing.T) {
	e := New(0)
	e.ListNotation(true)

	assert.Equal(t, []string{
		"(1 2)",
		"(A . B)",
		"(1 2 . 3)",
	}, session(t, e, "(CONS 1 (CONS 2 NIL)) (QUOTE (A . B)) (CONS 1 (CONS 2 3))"))

	e.ListNotation(false)

	assert.Equal(t, []string{"(1 . 2)"}, session(t, e, "(CONS 1 2)"))
}

func TestNames(t *testing.T) {
	e := New(0)

	names := e.Names()
	assert.Contains(t, names, "COND")
	assert.Contains(t, names, "PLUS")
	assert.NotContains(t, names, "DOUBLE")
	assert.IsNonDecreasing(t, names)

	_, err := e.Evaluate(mustRead(t, "(DEFUN DOUBLE (X) (PLUS X X))"))
	require.NoError(t, err)
	assert.Contains(t, e.Names(), "DOUBLE")
}

func TestReadFailure(t *testing.T) {
	failure := errors.New("failure")

	e := New(0)

	var b bytes.Buffer

	err := e.Session(reader.New("test", iotest.ErrReader(failure)), &b)
	assert.ErrorIs(t, err, failure)
	assert.Empty(t, b.String())
}

func TestWriteFailure(t *testing.T) {
	failure := errors.New("failure")

	e := New(0)

	err := e.Session(reader.New("test", strings.NewReader("1")), failingWriter{failure})
	assert.ErrorIs(t, err, failure)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func mustRead(t *testing.T, s string) cell.I {
	t.Helper()

	c, err := reader.New(t.Name(), strings.NewReader(s)).Read()
	require.NoError(t, err)

	return c
}
