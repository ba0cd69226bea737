// Released under an MIT license. See LICENSE.

// Package reader reads S-expressions, one at a time, from an io.Reader.
package reader

import (
	"io"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
)

// T (reader) encapsulates the lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for the input named name.
func New(name string, input io.Reader) *T {
	s := lexer.New(name, input)

	return &T{
		p: parser.New(s.Token),
		s: s,
	}
}

// Read returns the next S-expression. At the end of input Read returns
// io.EOF. An error reading input is returned in place of io.EOF.
func (r *reader) Read() (cell.I, error) {
	c, err := r.p.Parse()
	if err == io.EOF { //nolint:errorlint
		if rerr := r.s.Err(); rerr != nil {
			return nil, rerr
		}
	}

	return c, err
}
