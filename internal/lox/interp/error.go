// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package interp

import (
	"fmt"

	"github.com/rlox-lang/rlox/internal/lox/token"
)

// RuntimeError is an error raised while evaluating Lox code. It carries the
// token whose evaluation failed so the report can name the source line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func runtimeErrorf(tok token.Token, format string, args ...any) error {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the interpreter out of a function body when a return
// statement executes. It travels as an error but is not a failure;
// Function.Call intercepts it.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string {
	return "return outside of function"
}
