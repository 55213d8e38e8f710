// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package interp

import (
	"github.com/rlox-lang/rlox/internal/lox/token"
)

// Environment is a lexical scope: a name-to-value table with a pointer to
// the enclosing scope. Lookups walk outward until the global scope.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		enclosing: enclosing,
		values:    map[string]Value{},
	}
}

// Define binds a name in this scope. Redefining an existing name is allowed
// and replaces the old value.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get resolves a variable, walking enclosing scopes.
func (e *Environment) Get(name token.Token) (Value, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, runtimeErrorf(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign updates an existing binding, walking enclosing scopes. Assigning
// to an undeclared name is a runtime error; declaration requires "var".
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return runtimeErrorf(name, "Undefined variable '%s'.", name.Lexeme)
}

// GetAt reads a binding a known number of scopes away. The resolver
// guarantees the binding exists at that distance.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes a binding a known number of scopes away.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	e.ancestor(distance).values[name.Lexeme] = value
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}
