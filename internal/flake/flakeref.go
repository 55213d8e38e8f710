// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package flake models the Nix flake that packages an rlox project: flake
// references for inputs, and the evaluated output set (packages, apps, dev
// shells) the flake declares.
package flake

import (
	"net/url"
	"strings"

	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

// Flake reference types supported by this package. This is the subset a
// generated project flake actually needs for its inputs.
const (
	TypeIndirect = "indirect"
	TypePath     = "path"
	TypeGitHub   = "github"
)

// Ref is a parsed Nix flake reference, such as "nixpkgs",
// "github:numtide/flake-utils" or "./vendor/flake".
type Ref struct {
	// Type is one of TypeIndirect, TypePath or TypeGitHub.
	Type string `json:"type,omitempty"`

	// ID is the flake's identifier when Type is "indirect". A common
	// example is nixpkgs.
	ID string `json:"id,omitempty"`

	// Path is the path to the flake directory when Type is "path".
	Path string `json:"path,omitempty"`

	// Owner and Repo are the repository owner and name when Type is
	// "github".
	Owner string `json:"owner,omitempty"`
	Repo  string `json:"repo,omitempty"`

	// Ref is the git branch or tag when Type is "github" or "indirect".
	Ref string `json:"ref,omitempty"`
}

// ParseRef parses a raw flake reference the way the Nix CLI would:
//
//   - Indirect references such as "nixpkgs" or "nixpkgs/nixos-unstable".
//   - Path references starting with '.' or '/'.
//   - GitHub references: "github:owner/repo" or "github:owner/repo/ref".
func ParseRef(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, usererr.New("empty flake reference")
	}

	if raw[0] == '.' || raw[0] == '/' {
		if strings.ContainsAny(raw, "?#") {
			return Ref{}, usererr.New("path-style flake reference %q contains a '?' or '#'", raw)
		}
		return Ref{Type: TypePath, Path: raw}, nil
	}

	if rest, ok := strings.CutPrefix(raw, "github:"); ok {
		owner, repoAndRef, ok := strings.Cut(rest, "/")
		if !ok || owner == "" || repoAndRef == "" {
			return Ref{}, usererr.New("github flake reference %q must look like github:owner/repo", raw)
		}
		repo, ref, _ := strings.Cut(repoAndRef, "/")
		return Ref{Type: TypeGitHub, Owner: owner, Repo: repo, Ref: ref}, nil
	}

	// Everything else is an indirect reference: [flake:]<id>(/<ref>)?
	rest := strings.TrimPrefix(raw, "flake:")
	if _, err := url.Parse(rest); err != nil {
		return Ref{}, usererr.New("invalid flake reference %q", raw)
	}
	id, ref, _ := strings.Cut(rest, "/")
	if id == "" {
		return Ref{}, usererr.New("invalid flake reference %q", raw)
	}
	return Ref{Type: TypeIndirect, ID: id, Ref: ref}, nil
}

// String renders the reference back in its URL-like form. The zero Ref
// renders as the empty string.
func (r Ref) String() string {
	switch r.Type {
	case TypeIndirect:
		if r.Ref != "" {
			return r.ID + "/" + r.Ref
		}
		return r.ID
	case TypePath:
		return r.Path
	case TypeGitHub:
		s := "github:" + r.Owner + "/" + r.Repo
		if r.Ref != "" {
			s += "/" + r.Ref
		}
		return s
	default:
		return ""
	}
}
