// Package environment implements the lexically-chained variable
// scopes the interpreter evaluates against, including the closure
// chain captured by function values at declaration time.
package environment

import "github.com/loxlang/lox/internal/value"

// Environment is one lexical scope: a binding map plus a link to the
// enclosing scope. The global environment has a nil Parent; every
// block and function-body environment has one, set at creation time.
type Environment struct {
	values map[string]value.Value
	Parent *Environment
}

// New creates a scope chained to parent. Pass nil to create the
// global scope.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Parent: parent}
}

// Define binds name to v in this scope, unconditionally — redeclaring
// a name already bound in the same scope is allowed and simply
// overwrites it.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name starting in this scope and walking parents,
// returning ok=false if no scope in the chain binds it.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign writes v into the nearest scope in the chain that already
// binds name, returning ok=false (and writing nothing) if no scope
// binds it. Assign never creates a new binding.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}
