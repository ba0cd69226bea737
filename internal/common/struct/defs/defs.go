// Released under an MIT license. See LICENSE.

// Package defs provides the table of user-defined functions.
package defs

import (
	"sort"
	"strings"
	"sync"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// Definition is a function's parameter list and body.
type Definition struct {
	Name   string
	Params cell.I
	Body   cell.I

	shadowed *Definition
}

// T (defs) maps function names to definitions. Names are compared without
// regard to case. Definitions are never removed. A later definition with
// the same name shadows an earlier one.
type T struct {
	sync.RWMutex
	m map[string]*Definition
}

type defs = T

// New creates a new defs.
func New() *defs {
	return &defs{m: map[string]*Definition{}}
}

// Add makes the definition of k the one returned by Get.
func (d *defs) Add(k string, params, body cell.I) *Definition {
	d.Lock()
	defer d.Unlock()

	key := strings.ToUpper(k)

	def := &Definition{
		Name:     k,
		Params:   params,
		Body:     body,
		shadowed: d.m[key],
	}

	d.m[key] = def

	return def
}

// Get retrieves the most recent definition of k.
func (d *defs) Get(k string) *Definition {
	if d == nil {
		return nil
	}

	d.RLock()
	defer d.RUnlock()

	return d.m[strings.ToUpper(k)]
}

// Names returns the name of every defined function, sorted.
func (d *defs) Names() []string {
	d.RLock()
	defer d.RUnlock()

	names := make([]string, 0, len(d.m))
	for _, def := range d.m {
		names = append(names, def.Name)
	}

	sort.Strings(names)

	return names
}

// Size returns the number of distinct function names in d.
func (d *defs) Size() int {
	d.RLock()
	defer d.RUnlock()

	return len(d.m)
}

// Shadowed returns the definition that def replaced, if any.
func (def *Definition) Shadowed() *Definition {
	return def.shadowed
}
