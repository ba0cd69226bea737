// Released under an MIT license. See LICENSE.

package validate

import (
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	assert.Equal(t, "1 argument", Count(1, "argument", "s"))
	assert.Equal(t, "2 arguments", Count(2, "argument", "s"))
	assert.Equal(t, "0 arguments", Count(0, "argument", "s"))
}

func TestFixed(t *testing.T) {
	v, err := Fixed("CONS", list.New(sym.New("1"), sym.New("2")), 2)
	require.NoError(t, err)
	assert.Len(t, v, 2)

	_, err = Fixed("CAR", list.New(sym.New("1"), sym.New("2")), 1)
	assert.ErrorIs(t, err, errsys.ArityMismatch)
	assert.EqualError(t, err, "CAR expected 1 argument, passed 2")

	_, err = Fixed("QUOTE", pair.Cons(sym.New("1"), sym.New("2")), 2)
	assert.ErrorIs(t, err, errsys.BadArguments)

	v, err = Fixed("F", sym.Nil, 0)
	require.NoError(t, err)
	assert.Empty(t, v)
}
