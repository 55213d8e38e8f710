// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{
		// Comments and trailing commas are fine, this is JWCC.
		"name": "calculator",
		"entry": "src/calc.lox",
		"scripts": {
			"demo": "examples/demo.lox",
			"bench": "examples/bench.lox",
		},
		"tools": ["rlox", "just"],
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "calculator", cfg.Name)
	assert.Equal(t, "src/calc.lox", cfg.Entry)
	assert.Equal(t, []string{"rlox", "just"}, cfg.Tools)
	assert.Equal(t, filepath.Dir(path), cfg.Dir)
}

func TestLoadDefaultsEntry(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"name": "calculator"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "main.lox", cfg.Entry)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing name", content: `{"entry": "main.lox"}`},
		{name: "invalid json", content: `{"name": `},
		{name: "wrong structure", content: `{"name": "x", "scripts": ["not", "a", "map"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"name": "calculator"}`)
	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, DefaultName), path)
}

func TestFindNotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rlox init")
}

func TestScript(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"name": "calculator",
		"scripts": {"demo": "examples/demo.lox"},
	}`)

	cfg, err := Open(dir)
	require.NoError(t, err)

	path, err := cfg.Script("demo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "examples/demo.lox"), path)

	_, err = cfg.Script("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no script named "missing"`)
}

func TestScriptNamesKeepDeclarationOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"name": "calculator",
		"scripts": {
			"zeta": "z.lox",
			"alpha": "a.lox",
			"mid": "m.lox",
		},
	}`)

	cfg, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, cfg.ScriptNames())
}

func TestScriptNamesEmpty(t *testing.T) {
	cfg := &Config{Name: "calculator"}
	assert.Empty(t, cfg.ScriptNames())
}

func TestEntryPath(t *testing.T) {
	cfg := &Config{Name: "calculator", Entry: "main.lox", Dir: "/proj"}
	assert.Equal(t, filepath.Join("/proj", "main.lox"), cfg.EntryPath())
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "calculator"))

	cfg, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "calculator", cfg.Name)
	assert.Equal(t, "main.lox", cfg.Entry)

	raw, err := os.ReadFile(filepath.Join(dir, "main.lox"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "print")
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "calculator"))
	assert.Error(t, Init(dir, "other"))
}
