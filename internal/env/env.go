// Package env implements Mython closures: spec.md §3.4's "ordered
// mapping from identifier to value holder" per lexical scope.
//
// Grounded on the teacher's environment/env.go, keeping only its
// map-backed shape (no outer pointer, no outward Find; Get reports a
// miss with a bool rather than an error), specialized to object.Holder
// values and to the object package's narrow Env interface
// (internal/object/class.go) so method calls can build closures
// without object importing env.
package env

import "github.com/mythonlang/mython/internal/object"

// Env is a symbol table from name to object.Holder. Mython closures
// don't nest lexically: the root program closure is the only
// top-level scope, and a method call gets a brand new, flat closure
// of its own (spec.md §3.4; see object.Env's doc comment for why
// Fresh returns an unrelated Env rather than a child of the
// receiver).
type Env struct {
	vars map[string]object.Holder
}

// New builds an empty closure.
func New() *Env {
	return &Env{vars: make(map[string]object.Holder)}
}

// Fresh satisfies object.Env: a method call's closure is independent
// of whatever Env it was reached through.
func (e *Env) Fresh() object.Env {
	return New()
}

// Set binds (inserting or overwriting) name in this scope.
func (e *Env) Set(name string, h object.Holder) {
	e.vars[name] = h
}

// Get looks up name in this scope.
func (e *Env) Get(name string) (object.Holder, bool) {
	h, ok := e.vars[name]
	return h, ok
}
