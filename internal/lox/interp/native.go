// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package interp

import (
	"time"
)

// NativeFunction wraps a Go function as a Lox callable.
type NativeFunction struct {
	Name  string
	arity int
	fn    func(in *Interpreter, arguments []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) Arity() int {
	return n.arity
}

func (n *NativeFunction) Call(in *Interpreter, arguments []Value) (Value, error) {
	return n.fn(in, arguments)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}

// defineNatives installs the built-in functions into the global scope.
func defineNatives(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		Name:  "clock",
		arity: 0,
		fn: func(*Interpreter, []Value) (Value, error) {
			return float64(time.Now().UnixMilli()) / 1000.0, nil
		},
	})
}
