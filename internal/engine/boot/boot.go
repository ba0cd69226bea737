// Released under an MIT license. See LICENSE.

// Package boot provides the prelude: definitions, written in the
// interpreted language, that may be loaded before a session starts.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

// Script returns the prelude.
func Script() string {
	return script
}
