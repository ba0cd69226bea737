// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed S-expressions.
package engine

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/struct/defs"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/engine/boot"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/engine/task"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

// Marker prefixes the line printed for an expression that fails.
const Marker = "**ERR** "

// Reader is the interface for things that produce S-expressions.
// Read returns io.EOF when there are no more S-expressions.
type Reader interface {
	Read() (cell.I, error)
}

// T (engine) is a facade in front of the machinery for evaluating
// S-expressions. Definitions persist for the lifetime of the engine.
type T struct {
	defs *defs.T
	task *task.T
	text func(cell.I) string
}

// New creates a new T that allows evaluation to nest at most depth levels.
// A depth of zero or less means unlimited.
func New(depth int) *T {
	d := defs.New()

	return &T{
		defs: d,
		task: task.New(d, depth),
		text: common.String,
	}
}

// Boot evaluates each definition in the prelude.
func (e *T) Boot() error {
	r := reader.New("boot", strings.NewReader(boot.Script()))

	for {
		c, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err == nil {
			_, err = e.Evaluate(c)
		}

		if err != nil {
			return fmt.Errorf("boot: %w", err)
		}
	}
}

// Evaluate evaluates the top-level expression c.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	return e.task.Eval(c, nil, true)
}

// ListNotation makes Session print results in list notation if on is
// true and in dot notation otherwise.
func (e *T) ListNotation(on bool) {
	if on {
		e.text = literal.String
	} else {
		e.text = common.String
	}
}

// Names returns the name of every special form, primitive and
// user-defined function.
func (e *T) Names() []string {
	names := task.Forms()
	names = append(names, commands.Names()...)
	names = append(names, e.defs.Names()...)

	sort.Strings(names)

	return names
}

// Session reads, evaluates and prints each expression from r until r
// returns io.EOF. Each result, or error, is written to w on its own line.
// Session returns early only if reading from r or writing to w fails.
func (e *T) Session(r Reader, w io.Writer) error {
	for {
		c, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err == nil {
			c, err = e.Evaluate(c)
		} else if errsys.KindOf(err) == errsys.Unknown {
			return err
		}

		line := ""
		if err != nil {
			line = Marker + err.Error()
		} else {
			line = e.text(c)
		}

		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
}
