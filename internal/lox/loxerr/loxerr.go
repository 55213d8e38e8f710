// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package loxerr defines the error values reported while scanning and
// parsing Lox source.
package loxerr

import (
	"fmt"

	"github.com/rlox-lang/rlox/internal/lox/token"
)

// Syntax is an error found while scanning or parsing. It renders in the
// classic Lox reporting format:
//
//	[line 4] Error at '}': Expect expression.
type Syntax struct {
	Line    int
	Where   string // " at 'lexeme'", " at end", or ""
	Message string
}

func (e *Syntax) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// NewSyntax reports an error at a bare source line, with no token context.
func NewSyntax(line int, message string) error {
	return &Syntax{Line: line, Message: message}
}

// NewSyntaxAt reports an error at a specific token.
func NewSyntaxAt(tok token.Token, message string) error {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = " at end"
	}
	return &Syntax{Line: tok.Line, Where: where, Message: message}
}
