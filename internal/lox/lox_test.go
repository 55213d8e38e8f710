// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package lox

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlox-lang/rlox/internal/lox/interp"
)

func newTestRunner() (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewRunner(&stdout, &stderr), &stdout, &stderr
}

func TestRun(t *testing.T) {
	r, stdout, stderr := newTestRunner()
	err := r.Run(`print "hello" + ", " + "world";`)
	require.NoError(t, err)
	assert.Equal(t, "hello, world\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunSyntaxError(t *testing.T) {
	r, stdout, stderr := newTestRunner()
	err := r.Run("print 1")
	require.ErrorIs(t, err, ErrSyntax)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "[line 1] Error at end: Expect ';' after value.\n", stderr.String())
}

func TestRunReportsEveryStaticError(t *testing.T) {
	r, _, stderr := newTestRunner()
	err := r.Run("var a = ;\nvar b = ;")
	require.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t,
		"[line 1] Error at ';': Expect expression.\n"+
			"[line 2] Error at ';': Expect expression.\n",
		stderr.String())
}

func TestRunResolverError(t *testing.T) {
	r, _, stderr := newTestRunner()
	err := r.Run("return 1;")
	require.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, "[line 1] Error at 'return': Can't return from top-level code.\n", stderr.String())
}

func TestRunRuntimeError(t *testing.T) {
	r, _, stderr := newTestRunner()
	err := r.Run(`print 1 + "one";`)
	var runtimeErr *interp.RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", stderr.String())
}

func TestRunnerKeepsStateBetweenChunks(t *testing.T) {
	r, stdout, _ := newTestRunner()
	require.NoError(t, r.Run("var a = 1;"))
	require.NoError(t, r.Run("a = a + 1;"))
	require.NoError(t, r.Run("print a;"))
	assert.Equal(t, "2\n", stdout.String())
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte("print 40 + 2;"), 0o644))

	r, stdout, _ := newTestRunner()
	require.NoError(t, r.RunFile(path))
	assert.Equal(t, "42\n", stdout.String())
}

func TestRunFileMissing(t *testing.T) {
	r, _, _ := newTestRunner()
	err := r.RunFile(filepath.Join(t.TempDir(), "nope.lox"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunREPLLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		echoed  string
		printed string
	}{
		{name: "expression echoes its value", line: "1 + 2", echoed: "3"},
		{name: "string values echo quoted", line: `"hi"`, echoed: `"hi"`},
		{name: "nil echoes", line: "nil", echoed: "nil"},
		{name: "statement prints without echo", line: "print 7;", printed: "7\n"},
		{name: "declaration has no output", line: "var x = 1;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, stdout, _ := newTestRunner()
			var echoed []string
			err := r.RunREPLLine(tt.line, func(s string) { echoed = append(echoed, s) })
			require.NoError(t, err)
			assert.Equal(t, tt.printed, stdout.String())
			if tt.echoed == "" {
				assert.Empty(t, echoed)
			} else {
				assert.Equal(t, []string{tt.echoed}, echoed)
			}
		})
	}
}

func TestRunREPLLineSharesGlobals(t *testing.T) {
	r, _, _ := newTestRunner()
	var echoed []string
	echo := func(s string) { echoed = append(echoed, s) }

	require.NoError(t, r.RunREPLLine("var n = 10;", echo))
	require.NoError(t, r.RunREPLLine("n * n", echo))
	assert.Equal(t, []string{"100"}, echoed)
}

func TestRunREPLLineStaticError(t *testing.T) {
	// Expression lines are resolved like any other code, so invalid 'this'
	// and 'super' uses fail statically instead of reaching the evaluator.
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{
			name:    "this outside a class",
			line:    "this",
			wantErr: "[line 1] Error at 'this': Can't use 'this' outside of a class.\n",
		},
		{
			name:    "super outside a class",
			line:    "super.cook",
			wantErr: "[line 1] Error at 'super': Can't use 'super' outside of a class.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, stdout, stderr := newTestRunner()
			err := r.RunREPLLine(tt.line, func(string) { t.Fatal("value echoed for an invalid line") })
			require.ErrorIs(t, err, ErrSyntax)
			assert.Empty(t, stdout.String())
			assert.Equal(t, tt.wantErr, stderr.String())
		})
	}
}

func TestRunREPLLineRuntimeError(t *testing.T) {
	r, _, stderr := newTestRunner()
	err := r.RunREPLLine("missing", func(string) {})
	var runtimeErr *interp.RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal(t, "Undefined variable 'missing'.\n[line 1]\n", stderr.String())
}
