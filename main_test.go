// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingScript(t *testing.T) {
	var b bytes.Buffer

	err := script(engine.New(0), filepath.Join(t.TempDir(), "missing.lisp"), &b)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScript(t *testing.T) {
	e := engine.New(100)
	require.NoError(t, e.Boot())

	var b bytes.Buffer

	require.NoError(t, script(e, filepath.Join("examples", "sample.lisp"), &b))
	assert.Equal(t, `DOUBLE
10
FACT
3628800
(1 . (2 . NIL))
(C . (B . (A . NIL)))
**ERR** B is not bound
**ERR** CAR cannot be performed on atom A
OUTER
**ERR** nested DEFUN is not allowed
**ERR** QUOTIENT: division by zero
-1
`, b.String())
}
