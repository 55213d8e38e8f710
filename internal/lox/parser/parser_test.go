// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlox-lang/rlox/internal/lox/ast"
	"github.com/rlox-lang/rlox/internal/lox/scanner"
)

func parseSource(t *testing.T, source string) ([]ast.Stmt, []error) {
	t.Helper()
	tokens, errs := scanner.New(source).Scan()
	require.Empty(t, errs)
	return New(tokens).Parse()
}

func parseExprString(t *testing.T, source string) string {
	t.Helper()
	tokens, errs := scanner.New(source).Scan()
	require.Empty(t, errs)
	expr, parseErrs := New(tokens).ParseExpression()
	require.Empty(t, parseErrs)
	return ast.PrintExpr(expr)
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "factor binds tighter than term", source: "1 + 2 * 3", expected: "(+ 1 (* 2 3))"},
		{name: "left associative term", source: "1 - 2 - 3", expected: "(- (- 1 2) 3)"},
		{name: "grouping overrides precedence", source: "(1 + 2) * 3", expected: "(* (group (+ 1 2)) 3)"},
		{name: "comparison over equality", source: "1 < 2 == 3 >= 4", expected: "(== (< 1 2) (>= 3 4))"},
		{name: "unary chains", source: "!!true", expected: "(! (! true))"},
		{name: "negation of product", source: "-123 * (45.67)", expected: "(* (- 123) (group 45.67))"},
		{name: "and over or", source: "a or b and c", expected: "(or a (and b c))"},
		{name: "assignment is right associative", source: "a = b = c", expected: "(= a (= b c))"},
		{name: "call with arguments", source: "f(1, 2)", expected: "(call f 1 2)"},
		{name: "property chain", source: "a.b.c", expected: "(.c (.b a))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseExprString(t, tt.source))
		})
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "print", source: "print 1 + 2;", expected: "(print (+ 1 2))"},
		{name: "var without initializer", source: "var x;", expected: "(var x)"},
		{name: "var with initializer", source: "var x = 1;", expected: "(var x = 1)"},
		{name: "block", source: "{ print 1; }", expected: "(block (print 1))"},
		{name: "if", source: "if (true) print 1;", expected: "(if true (print 1))"},
		{name: "if else", source: "if (x) print 1; else print 2;", expected: "(if-else x (print 1) (print 2))"},
		{name: "while", source: "while (x) print 1;", expected: "(while x (print 1))"},
		{name: "function", source: "fun add(a, b) { return a + b; }", expected: "(fun add (a b) (return (+ a b)))"},
		{name: "class", source: "class A < B { m() { return 1; } }", expected: "(class A < B (fun m () (return 1)))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements, errs := parseSource(t, tt.source)
			require.Empty(t, errs)
			require.Len(t, statements, 1)
			assert.Equal(t, tt.expected, ast.PrintStmt(statements[0]))
		})
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	statements, errs := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Empty(t, errs)
	require.Len(t, statements, 1)
	assert.Equal(t,
		"(block (var i = 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))",
		ast.PrintStmt(statements[0]))
}

func TestParseForWithEmptyClauses(t *testing.T) {
	statements, errs := parseSource(t, "for (;;) print 1;")
	require.Empty(t, errs)
	require.Len(t, statements, 1)
	assert.Equal(t, "(while true (print 1))", ast.PrintStmt(statements[0]))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{name: "missing semicolon", source: "print 1", wantErr: "[line 1] Error at end: Expect ';' after value."},
		{name: "missing expression", source: ";", wantErr: "[line 1] Error at ';': Expect expression."},
		{name: "unclosed paren", source: "(1 + 2;", wantErr: "[line 1] Error at ';': Expect ')' after expression."},
		{name: "invalid assignment target", source: "1 = 2;", wantErr: "[line 1] Error at '=': Invalid assignment target."},
		{name: "missing variable name", source: "var = 1;", wantErr: "[line 1] Error at '=': Expect variable name."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parseSource(t, tt.source)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantErr, errs[0].Error())
		})
	}
}

func TestParseSynchronizesAfterError(t *testing.T) {
	// The bad statement is dropped, but the statements around it survive.
	statements, errs := parseSource(t, "var a = 1;\nvar = oops;\nprint a;")
	require.Len(t, errs, 1)
	require.Len(t, statements, 2)
	assert.Equal(t, "(var a = 1)", ast.PrintStmt(statements[0]))
	assert.Equal(t, "(print a)", ast.PrintStmt(statements[1]))
}
