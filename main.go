/*
Lisp is a read-eval-print interpreter for a small LISP dialect. Each
S-expression read is evaluated and its value printed in dot notation:

    >>> (DEFUN DOUBLE (X) (PLUS X X))
    DOUBLE
    >>> (DOUBLE 5)
    10
    >>> (CONS 1 (CONS 2 NIL))
    (1 . (2 . NIL))
    >>> (CAR (QUOTE A))
    **ERR** CAR cannot be performed on atom A

The primitives are CAR, CDR, CONS, ATOM, EQ, NULL, INT, PLUS, MINUS,
TIMES, QUOTIENT, REMAINDER, LESS and GREATER. The special forms are
QUOTE, COND and DEFUN.

Lisp is released under an MIT license.
*/
package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/ui"
)

func main() {
	if err := options.Parse(); err != nil {
		println(err.Error())
		os.Exit(2)
	}

	e := engine.New(options.Depth())
	e.ListNotation(options.List())

	if options.Prelude() {
		if err := e.Boot(); err != nil {
			println(err.Error())
			os.Exit(1)
		}
	}

	if err := run(e); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run(e *engine.T) error {
	if c := options.Command(); c != "" {
		return e.Session(reader.New("command", strings.NewReader(c)), os.Stdout)
	}

	if s := options.Script(); s != "" {
		return script(e, s, os.Stdout)
	}

	if options.Interactive() {
		return interactive(e)
	}

	return e.Session(reader.New("stdin", os.Stdin), os.Stdout)
}

func interactive(e *engine.T) error {
	cli := ui.New(e.Names)

	defer func() {
		if err := cli.Close(); err != nil {
			println("Error writing history: " + err.Error())
		}
	}()

start:
	err := e.Session(reader.New("stdin", cli), os.Stdout)
	if errors.Is(err, ui.ErrAborted) {
		goto start
	}

	if err == nil {
		os.Stdout.Write([]byte("\n"))
	}

	return err
}

func script(e *engine.T, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return e.Session(reader.New(path, f), w)
}
