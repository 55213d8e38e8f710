// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlox-lang/rlox/internal/lox/token"
)

func TestPrint(t *testing.T) {
	// The classic example: -123 * (45.67).
	expr := &Binary{
		Left: &Unary{
			Operator: token.Token{Type: token.Minus, Lexeme: "-"},
			Right:    &Literal{Value: 123.0},
		},
		Operator: token.Token{Type: token.Star, Lexeme: "*"},
		Right:    &Grouping{Expression: &Literal{Value: 45.67}},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", PrintExpr(expr))
}

func TestPrintLiterals(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: "nil"},
		{name: "bool", value: true, expected: "true"},
		{name: "integral number", value: 2.0, expected: "2"},
		{name: "fractional number", value: 2.5, expected: "2.5"},
		{name: "string", value: "hi", expected: "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrintExpr(&Literal{Value: tt.value}))
		})
	}
}

func TestPrintStmt(t *testing.T) {
	stmt := &Var{
		Name:        token.Token{Type: token.Identifier, Lexeme: "x"},
		Initializer: &Literal{Value: 1.0},
	}
	assert.Equal(t, "(var x = 1)", PrintStmt(stmt))

	block := &Block{Statements: []Stmt{
		&Print{Expression: &Variable{Name: token.Token{Type: token.Identifier, Lexeme: "x"}}},
	}}
	assert.Equal(t, "(block (print x))", PrintStmt(block))
}
