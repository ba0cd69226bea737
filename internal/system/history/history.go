// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
package history

import (
	"io"
	"os"
)

// Load passes the history file to read, if it exists.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save passes the history file, locked and truncated, to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(func(name string) (*os.File, error) {
		return os.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o600)
	})
	if err != nil {
		return err
	}

	err = lock(f)
	if err == nil {
		err = f.Truncate(0)
	}

	if err == nil {
		_, err = write(f)
	}

	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
