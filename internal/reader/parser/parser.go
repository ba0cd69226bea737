// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for S-expressions.
package parser

import (
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
	"github.com/michaelmacinnis/lisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes tokens produced by item.
// Item should return nil when there are no more tokens.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes the tokens for one S-expression and returns it.
// If there are no more tokens, Parse returns io.EOF.
// Any other error is an errsys.T of kind errsys.MalformedInput.
func (p *T) Parse() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		// Whatever was peeked at is part of the bad input.
		p.ahead = 0
		p.token = nil

		c = nil

		switch r := r.(type) {
		case *errsys.T:
			err = r
		case error:
			err = errsys.New(errsys.MalformedInput, r.Error())
		case string:
			err = errsys.New(errsys.MalformedInput, r)
		case common.Stringer:
			err = errsys.New(errsys.MalformedInput, r.String())
		default:
			err = errsys.New(errsys.MalformedInput, "unexpected error")
		}
	}()

	if p.peek() == nil {
		return nil, io.EOF
	}

	return p.expression(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic(errors.New("nothing to consume"))
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) expect(cs ...token.Class) {
	t := p.peek()
	if t.Is(cs...) {
		p.consume()

		return
	}

	e := make([]string, len(cs))
	for i, c := range cs {
		e[i] = c.String()
	}

	p.fail(t, "expected "+strings.Join(e, " or ")+" got "+describe(t))
}

func (p *T) fail(t *token.T, msg string) {
	if t != nil {
		msg = t.Source().String() + ": " + msg
	}

	panic(errsys.New(errsys.MalformedInput, msg))
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <expression> ::= '(' <list> | Symbol .
func (p *T) expression() cell.I {
	t := p.peek()

	switch {
	case t == nil:
		p.fail(t, "unexpected end of input")
	case t.Is('('):
		p.consume()

		return p.list()
	case t.Is(token.Symbol):
		p.consume()

		return sym.New(t.Value())
	}

	p.fail(t, describe(t)+" is a bad s-expression")

	return nil
}

// <list> ::= ')' | <expression>+ ('.' <expression>)? ')' .
func (p *T) list() cell.I {
	var elements []cell.I

	for {
		t := p.peek()

		switch {
		case t == nil:
			p.fail(t, "unexpected end of input in list")
		case t.Is(')'):
			p.consume()

			return list.New(elements...)
		case t.Is('.'):
			if len(elements) == 0 {
				p.fail(t, "misplaced '.'")
			}

			p.consume()

			tail := p.expression()

			p.expect(')')

			return list.Improper(tail, elements...)
		default:
			elements = append(elements, p.expression())
		}
	}
}

func describe(t *token.T) string {
	if t == nil {
		return "end of input"
	}

	return "'" + sym.Quote(t.Value()) + "'"
}
