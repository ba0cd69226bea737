// Released under an MIT license. See LICENSE.

// Package errsys provides the error type returned by the reader and the
// evaluator.
package errsys

import (
	"errors"
	"fmt"
)

// Kind classifies an error. A Kind is itself an error so that callers can
// test for it with errors.Is.
type Kind int

// Error kinds.
const (
	Unknown Kind = iota

	// Parse errors.
	MalformedInput

	// Identifier errors.
	InvalidIdentifier
	UnboundIdentifier

	// Form errors.
	BadArguments
	IllegalFunctionName
	MalformedConditional
	MalformedDefun
	NestedDefunForbidden

	// Arity errors.
	ArityMismatch

	// Type errors.
	AtomsOnly
	NonIntegerOperand
	OperandNotPair

	// Arithmetic errors.
	DivisionByZero

	// Lookup errors.
	NoMatchingClause
	UndefinedFunction

	// Resource errors.
	RecursionTooDeep
)

// Error returns the name of the Kind k.
func (k Kind) Error() string {
	return k.String()
}

// String returns the name of the Kind k. Useful for debugging.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case MalformedInput:
		return "MalformedInput"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case UnboundIdentifier:
		return "UnboundIdentifier"
	case BadArguments:
		return "BadArguments"
	case IllegalFunctionName:
		return "IllegalFunctionName"
	case MalformedConditional:
		return "MalformedConditional"
	case MalformedDefun:
		return "MalformedDefun"
	case NestedDefunForbidden:
		return "NestedDefunForbidden"
	case ArityMismatch:
		return "ArityMismatch"
	case AtomsOnly:
		return "AtomsOnly"
	case NonIntegerOperand:
		return "NonIntegerOperand"
	case OperandNotPair:
		return "OperandNotPair"
	case DivisionByZero:
		return "DivisionByZero"
	case NoMatchingClause:
		return "NoMatchingClause"
	case UndefinedFunction:
		return "UndefinedFunction"
	case RecursionTooDeep:
		return "RecursionTooDeep"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// T (errsys) is an error with a Kind and a human-readable reason.
type T struct {
	kind   Kind
	reason string
}

type errsys = T

// New creates a new errsys of kind k with the reason s.
func New(k Kind, s string) *errsys {
	return &errsys{kind: k, reason: s}
}

// Errorf creates a new errsys of kind k with a formatted reason.
func Errorf(k Kind, format string, args ...interface{}) *errsys {
	return New(k, fmt.Sprintf(format, args...))
}

// Error returns the reason for the errsys e.
func (e *errsys) Error() string {
	return e.reason
}

// Kind returns the kind of the errsys e.
func (e *errsys) Kind() Kind {
	return e.kind
}

// Unwrap returns the Kind of the errsys e so that errors.Is matches it.
func (e *errsys) Unwrap() error {
	return e.kind
}

// KindOf returns the Kind of err, or Unknown if err is not an errsys.
func KindOf(err error) Kind {
	var e *errsys
	if errors.As(err, &e) {
		return e.kind
	}

	return Unknown
}
