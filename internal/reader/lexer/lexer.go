// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for S-expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	err    error          // First error, other than io.EOF, from input.
	input  io.RuneScanner // Source of runes.
	next   loc.T          // Location of the next rune.
	source loc.T          // Location of the current token's first rune.
	state  action         // Current action.
	text   strings.Builder

	tokens []*token.T // Tokens waiting to be returned.
}

// New creates a new T that reads from input. Label can be a file name or
// other identifier.
func New(label string, input io.Reader) *T {
	rs, ok := input.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(input)
	}

	l := &T{
		input: rs,
		next: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.skip()

	l.state = skipWhitespace

	return l
}

// Err returns the first error, other than io.EOF, encountered reading input.
func (l *T) Err() error {
	return l.err
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.text.String()
}

// Token returns the next scanned token, or nil if there are no more tokens.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept() rune {
	r, _, err := l.input.ReadRune()
	if err != nil {
		l.fail(err)

		return eof
	}

	l.next.Advance(r)

	l.text.WriteRune(r)

	return r
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.source))
	l.skip()
}

func (l *T) fail(err error) {
	if l.err == nil && !errors.Is(err, io.EOF) {
		l.err = err
	}
}

func (l *T) peek() rune {
	r, _, err := l.input.ReadRune()
	if err != nil {
		l.fail(err)

		return eof
	}

	if err := l.input.UnreadRune(); err != nil {
		l.fail(err)

		return eof
	}

	return r
}

func (l *T) skip() {
	l.source = l.next
	l.text.Reset()
}

// T states.

func scanSymbol(l *T) action {
	for {
		switch l.peek() {
		case eof, '\t', '\n', ' ', '(', ')':
			l.emit(token.Symbol)
			return skipWhitespace
		default:
			l.accept()
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', ' ':
			l.accept()
			l.skip()
		case '(', ')', '.':
			l.accept()
			l.emit(token.Class(r))
			return skipWhitespace
		default:
			return scanSymbol
		}
	}
}
