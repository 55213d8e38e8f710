// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package interp

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlox-lang/rlox/internal/lox/parser"
	"github.com/rlox-lang/rlox/internal/lox/scanner"
)

func resolveSource(t *testing.T, source string) []error {
	t.Helper()
	tokens, scanErrs := scanner.New(source).Scan()
	require.Empty(t, scanErrs)
	statements, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)
	return NewResolver(New(io.Discard)).Resolve(statements)
}

func TestResolverErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{
			name:    "return at top level",
			source:  "return 1;",
			wantErr: "[line 1] Error at 'return': Can't return from top-level code.",
		},
		{
			name:    "return a value from init",
			source:  "class A { init() { return 1; } }",
			wantErr: "[line 1] Error at 'return': Can't return a value from an initializer.",
		},
		{
			name:    "local read in its own initializer",
			source:  "{ var a = a; }",
			wantErr: "[line 1] Error at 'a': Can't read local variable in its own initializer.",
		},
		{
			name:    "duplicate declaration in scope",
			source:  "{ var a = 1; var a = 2; }",
			wantErr: "[line 1] Error at 'a': Already a variable with this name in this scope.",
		},
		{
			name:    "this outside a class",
			source:  "print this;",
			wantErr: "[line 1] Error at 'this': Can't use 'this' outside of a class.",
		},
		{
			name:    "super outside a class",
			source:  "super.cook();",
			wantErr: "[line 1] Error at 'super': Can't use 'super' outside of a class.",
		},
		{
			name:    "super without a superclass",
			source:  "class A { m() { return super.m(); } }",
			wantErr: "[line 1] Error at 'super': Can't use 'super' in a class with no superclass.",
		},
		{
			name:    "class inheriting from itself",
			source:  "class A < A {}",
			wantErr: "[line 1] Error at 'A': A class can't inherit from itself.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := resolveSource(t, tt.source)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantErr, errs[0].Error())
		})
	}
}

func TestResolverAllowsValidPrograms(t *testing.T) {
	sources := []string{
		"fun f() { return 1; }",
		"class A { init() { return; } }",
		"var a = 1; var a = 2;",
		"class A { m() { return this; } }",
		"class A {} class B < A { m() { return super.m; } }",
	}
	for _, source := range sources {
		assert.Empty(t, resolveSource(t, source), "source: %s", source)
	}
}
