// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package flake

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"

	"github.com/rlox-lang/rlox/internal/fileutil"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

//go:embed tmpl/*
var tmplFS embed.FS

const flakeFileName = "flake.nix"

// Write renders the plan's flake.nix into dir. An existing flake.nix is
// only replaced when force is set.
func (p *Plan) Write(dir string, force bool) (string, error) {
	path := filepath.Join(dir, flakeFileName)
	if !force && fileutil.Exists(path) {
		return "", usererr.New("%s already exists, use --force to overwrite it", path)
	}

	tmpl, err := template.ParseFS(tmplFS, "tmpl/flake.nix.tmpl")
	if err != nil {
		return "", errors.WithStack(err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", errors.WithStack(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.WithStack(err)
	}
	return path, nil
}
