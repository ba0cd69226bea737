// Released under an MIT license. See LICENSE.

// Package ui provides an interactive line editor that can be read from
// like any other io.Reader.
package ui

import (
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/system/history"
	"github.com/peterh/liner"
)

// Prompts.
const (
	Continue = "... "
	Start    = ">>> "
)

// ErrAborted is returned by Read when the user presses Ctrl-C.
var ErrAborted = liner.ErrPromptAborted //nolint:gochecknoglobals

// T (ui) prompts for lines of input as they are needed.
type T struct {
	*liner.State

	buffer string // Unread input.
	depth  int    // Unclosed parentheses in the input so far.
}

type ui = T

// New creates a new ui. Names supplies the words used for completion.
func New(names func() []string) *T {
	u := &T{State: liner.NewLiner()}

	_ = history.Load(u.ReadHistory)

	u.SetCtrlCAborts(true)
	u.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return Complete(names(), line, pos)
	})

	return u
}

// Close saves the history and restores the terminal.
func (u *ui) Close() error {
	err := history.Save(u.WriteHistory)

	if cerr := u.State.Close(); err == nil {
		err = cerr
	}

	return err
}

// Read fills p with input, prompting for another line when all previous
// input has been read. Read returns io.EOF when the user presses Ctrl-D.
func (u *ui) Read(p []byte) (int, error) {
	if u.buffer == "" {
		prompt := Start
		if u.depth > 0 {
			prompt = Continue
		}

		line, err := u.Prompt(prompt)

		switch {
		case err == nil:
			if strings.TrimSpace(line) != "" {
				u.AppendHistory(line)
			}
		case errors.Is(err, liner.ErrPromptAborted):
			u.depth = 0

			return 0, ErrAborted
		default:
			return 0, io.EOF
		}

		u.depth = Depth(u.depth, line)
		u.buffer = line + "\n"
	}

	n := copy(p, u.buffer)
	u.buffer = u.buffer[n:]

	return n, nil
}

// Complete returns the completions, from names, for the word ending at pos
// in line. Pos counts runes. Names are matched without regard to case.
func Complete(names []string, line string, pos int) (string, []string, string) {
	runes := []rune(line)
	head := string(runes[:pos])
	tail := string(runes[pos:])

	start := strings.LastIndexAny(head, " \t()") + 1
	word := strings.ToUpper(head[start:])

	if word == "" {
		return head, nil, tail
	}

	completions := []string{}

	for _, name := range names {
		if strings.HasPrefix(strings.ToUpper(name), word) {
			completions = append(completions, name)
		}
	}

	return head[:start], completions, tail
}

// Depth returns the number of parentheses left open after line, given
// that depth were open before it. Depth never goes below zero.
func Depth(depth int, line string) int {
	for _, r := range line {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}

	return depth
}
