// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package interp

import (
	"errors"
	"fmt"

	"github.com/rlox-lang/rlox/internal/lox/ast"
)

// Function is a user-declared function or method together with the
// environment it closed over.
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*Function)(nil)

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) Call(in *Interpreter, arguments []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	if err := in.executeBlock(f.declaration.Body, env); err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			if f.isInitializer {
				return f.closure.GetAt(0, "this"), nil
			}
			return ret.value, nil
		}
		return nil, err
	}

	// An initializer always returns the instance, even without an explicit
	// return statement.
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// bind returns a copy of the method with "this" bound to the instance.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
