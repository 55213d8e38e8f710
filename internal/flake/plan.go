// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package flake

import (
	"github.com/samber/lo"

	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
	"github.com/rlox-lang/rlox/internal/project"
)

// DefaultOutput is the alias every flake output set carries alongside the
// named output, so `nix build` and `nix run` work without an attribute.
const DefaultOutput = "default"

// DefaultTools is the dev shell tool pair used when rlox.json doesn't
// choose its own: the interpreter itself and a Nix formatter.
var DefaultTools = []string{"rlox", "nixpkgs-fmt"}

// devShellToolCount is fixed: a generated dev shell always names exactly
// two build-time tools.
const devShellToolCount = 2

// Plan is the evaluated descriptor for a project flake. It contains
// everything the flake.nix template needs.
type Plan struct {
	// ProjectName names the package and app outputs.
	ProjectName string

	// Entry is the project's entry script, relative to the project root.
	Entry string

	// Tools are the dev shell's build-time tools, always exactly two.
	Tools []string

	// Nixpkgs is the pinned nixpkgs input.
	Nixpkgs Ref
}

// NewPlan evaluates a project config into a flake plan. A config that
// overrides the dev shell tools must name exactly two distinct tools.
func NewPlan(cfg *project.Config) (*Plan, error) {
	tools := cfg.Tools
	if len(tools) == 0 {
		tools = DefaultTools
	}
	if len(lo.Uniq(tools)) != devShellToolCount {
		return nil, usererr.New(
			"the dev shell must name exactly %d distinct tools, got %v",
			devShellToolCount, cfg.Tools,
		)
	}

	return &Plan{
		ProjectName: cfg.Name,
		Entry:       cfg.Entry,
		Tools:       tools,
		Nixpkgs:     Ref{Type: TypeGitHub, Owner: "NixOS", Repo: "nixpkgs", Ref: "nixos-unstable"},
	}, nil
}

// DevShell is a declared development environment: a named list of tools to
// put on PATH.
type DevShell struct {
	Tools []string
}

// Outputs is the output set the flake declares for one target system.
type Outputs struct {
	// Packages maps output name to the package it builds. The default
	// alias points at the same package as the named output.
	Packages map[string]string

	// Apps maps output name to the program a `nix run` executes.
	Apps map[string]string

	// DevShells holds the declared development environments.
	DevShells map[string]DevShell
}

// Outputs evaluates the plan's output set. For any system it yields exactly
// one named package plus its default alias, one named app plus its default
// alias, and one dev shell naming exactly two tools.
func (p *Plan) Outputs() Outputs {
	program := "bin/" + p.ProjectName
	return Outputs{
		Packages: map[string]string{
			p.ProjectName: p.ProjectName,
			DefaultOutput: p.ProjectName,
		},
		Apps: map[string]string{
			p.ProjectName: program,
			DefaultOutput: program,
		},
		DevShells: map[string]DevShell{
			DefaultOutput: {Tools: p.Tools},
		},
	}
}
