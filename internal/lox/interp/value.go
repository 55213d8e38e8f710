// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package interp

import (
	"fmt"
	"strconv"
)

// Value is a Lox runtime value: nil, bool, float64, string, a Callable or
// an *Instance.
type Value any

// Callable is anything invokable with parentheses: declared functions,
// native functions and classes (construction).
type Callable interface {
	Arity() int
	Call(in *Interpreter, arguments []Value) (Value, error)
}

// Truthy follows Lox's rule: nil and false are falsey, everything else is
// truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// Equal implements Lox ==. nil equals only nil; otherwise values are equal
// when they have the same type and the same value.
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a value the way the print statement does: "nil" for
// nil, and numbers without a trailing ".0" when integral.
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// StringifyREPL is Stringify except that strings keep their quotes, so an
// echoed "a" + "b" is visibly a string.
func StringifyREPL(v Value) string {
	if s, ok := v.(string); ok {
		return "\"" + s + "\""
	}
	return Stringify(v)
}
