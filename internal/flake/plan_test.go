// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package flake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlox-lang/rlox/internal/project"
)

func TestNewPlanDefaults(t *testing.T) {
	plan, err := NewPlan(&project.Config{Name: "calculator", Entry: "main.lox"})
	require.NoError(t, err)
	assert.Equal(t, "calculator", plan.ProjectName)
	assert.Equal(t, "main.lox", plan.Entry)
	assert.Equal(t, DefaultTools, plan.Tools)
	assert.Equal(t, "github:NixOS/nixpkgs/nixos-unstable", plan.Nixpkgs.String())
}

func TestNewPlanCustomTools(t *testing.T) {
	plan, err := NewPlan(&project.Config{
		Name:  "calculator",
		Tools: []string{"rlox", "just"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"rlox", "just"}, plan.Tools)
}

func TestNewPlanRejectsWrongToolCount(t *testing.T) {
	tests := []struct {
		name  string
		tools []string
	}{
		{name: "one tool", tools: []string{"rlox"}},
		{name: "three tools", tools: []string{"rlox", "just", "jq"}},
		{name: "duplicates collapse", tools: []string{"rlox", "rlox"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(&project.Config{Name: "calculator", Tools: tt.tools})
			assert.Error(t, err)
		})
	}
}

func TestPlanOutputs(t *testing.T) {
	plan, err := NewPlan(&project.Config{Name: "calculator", Entry: "main.lox"})
	require.NoError(t, err)

	outputs := plan.Outputs()

	// Exactly one named package plus its default alias.
	require.Len(t, outputs.Packages, 2)
	assert.Equal(t, "calculator", outputs.Packages["calculator"])
	assert.Equal(t, outputs.Packages["calculator"], outputs.Packages[DefaultOutput])

	// Exactly one named app plus its default alias, running the built binary.
	require.Len(t, outputs.Apps, 2)
	assert.Equal(t, "bin/calculator", outputs.Apps["calculator"])
	assert.Equal(t, outputs.Apps["calculator"], outputs.Apps[DefaultOutput])

	// One dev shell with exactly two tools.
	require.Len(t, outputs.DevShells, 1)
	assert.Len(t, outputs.DevShells[DefaultOutput].Tools, 2)
}

func TestPlanWrite(t *testing.T) {
	dir := t.TempDir()
	plan, err := NewPlan(&project.Config{Name: "calculator", Entry: "main.lox"})
	require.NoError(t, err)

	path, err := plan.Write(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flake.nix"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, `packages."calculator"`)
	assert.Contains(t, content, "packages.default")
	assert.Contains(t, content, `apps."calculator"`)
	assert.Contains(t, content, "apps.default")
	assert.Contains(t, content, "devShells.default")
	assert.Contains(t, content, "github:NixOS/nixpkgs/nixos-unstable")
	for _, tool := range DefaultTools {
		assert.Contains(t, content, tool)
	}
	// The dev shell names exactly two tools and nothing else.
	assert.Equal(t, 1, strings.Count(content, "devShells"))
}

func TestPlanWriteRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	plan, err := NewPlan(&project.Config{Name: "calculator", Entry: "main.lox"})
	require.NoError(t, err)

	_, err = plan.Write(dir, false)
	require.NoError(t, err)

	_, err = plan.Write(dir, false)
	require.Error(t, err)

	_, err = plan.Write(dir, true)
	assert.NoError(t, err)
}
