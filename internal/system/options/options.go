// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed in response to -v.
const Version = "lisp 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	depth       int
	interactive bool
	list        bool
	prelude     bool
	script      string
	usage       = `lisp

Usage:
  lisp [-lp] [-d DEPTH] SCRIPT
  lisp [-lp] [-d DEPTH] -c EXPRESSIONS
  lisp [-ilp] [-d DEPTH] [-s]
  lisp -h
  lisp -v

Arguments:
  SCRIPT  Path to a file of S-expressions.

Options:
  -c, --command=EXPRESSIONS  Evaluate the specified S-expressions.
  -d, --depth=DEPTH          Maximum evaluation depth [default: 10000].
  -i, --interactive          Invert interactive mode.
  -l, --list                 Print results in list notation.
  -p, --prelude              Define the standard functions before reading.
  -s, --stdin                Read S-expressions from stdin.
  -h, --help                 Display this help.
  -v, --version              Print the version.

If stdin is a TTY, and lisp was invoked with no SCRIPT or EXPRESSIONS,
interactive line editing and history are enabled. Otherwise, they are not.
A DEPTH of 0 removes the limit on evaluation depth.
`
)

func Command() string {
	return command
}

func Depth() int {
	return depth
}

func Interactive() bool {
	return interactive
}

func List() bool {
	return list
}

// Parse parses os.Args. It exits for -h and -v.
func Parse() error {
	return parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

func Prelude() bool {
	return prelude
}

func Script() string {
	return script
}

func parse(argv []string, terminal bool) error {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = command == "" && script == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	list, _ = opts.Bool("--list")
	prelude, _ = opts.Bool("--prelude")

	depth, err = opts.Int("--depth")
	if err != nil {
		return fmt.Errorf("invalid depth: %w", err)
	}

	return nil
}
