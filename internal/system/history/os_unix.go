// Released under an MIT license. See LICENSE.

//go:build unix

package history

import (
	"os"
	"path"

	"golang.org/x/sys/unix"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(path.Join(os.Getenv("HOME"), ".lisp_history"))
}

// The lock is released when f is closed.
func lock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}
