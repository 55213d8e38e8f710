// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package loxcli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlox-lang/rlox/internal/loxcli/midcobra"
)

// execute runs the CLI against a fresh root command and returns the exit
// code with the captured output streams.
func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	exe := midcobra.New(cmd)
	exe.AddMiddleware(debugMiddleware)
	code = exe.Execute(context.Background(), args)
	return code, out.String(), errOut.String()
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestExecuteScript(t *testing.T) {
	path := writeScript(t, "print 1 + 2;")
	code, stdout, stderr := execute(t, path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", stdout)
	assert.Empty(t, stderr)
}

func TestExecuteRunSubcommand(t *testing.T) {
	path := writeScript(t, `print "via run";`)
	code, stdout, _ := execute(t, "run", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "via run\n", stdout)
}

func TestExecuteUsageError(t *testing.T) {
	code, _, _ := execute(t, "a.lox", "b.lox")
	assert.Equal(t, 64, code)
}

func TestExecuteSyntaxError(t *testing.T) {
	path := writeScript(t, "print 1")
	code, _, stderr := execute(t, path)
	assert.Equal(t, 65, code)
	assert.Contains(t, stderr, "[line 1] Error at end: Expect ';' after value.")
}

func TestExecuteRuntimeError(t *testing.T) {
	path := writeScript(t, `-"muffin";`)
	code, _, stderr := execute(t, path)
	assert.Equal(t, 70, code)
	assert.Contains(t, stderr, "Operand must be a number.")
}

func TestExecuteInitRejectsNonDirectory(t *testing.T) {
	path := writeScript(t, "print 1;")
	code, _, stderr := execute(t, "init", path, "--name", "calculator")
	assert.Equal(t, 64, code)
	assert.Contains(t, stderr, "is not a directory")
}

func TestExecuteVersion(t *testing.T) {
	code, stdout, _ := execute(t, "version")
	assert.Equal(t, 0, code)
	assert.NotEmpty(t, stdout)
}
