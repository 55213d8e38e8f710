// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package project reads and writes rlox.json, the per-project descriptor.
// The file is JWCC (JSON with comments and trailing commas), the same
// dialect devcontainers and similar tools use.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rlox-lang/rlox/internal/fileutil"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

const DefaultName = "rlox.json"

// Config is a parsed rlox.json.
type Config struct {
	// Name is the project name; it becomes the package and app output name
	// in a generated flake.
	Name string `json:"name"`

	// Entry is the script run by a bare "rlox run". Defaults to main.lox.
	Entry string `json:"entry,omitempty"`

	// Scripts maps script names to .lox files, in declaration order.
	Scripts *orderedmap.OrderedMap[string, string] `json:"scripts,omitempty"`

	// Tools lists the dev shell tools for a generated flake. When set it
	// must name exactly two tools; when empty the defaults apply.
	Tools []string `json:"tools,omitempty"`

	// Dir is the directory containing the config file. Not serialized.
	Dir string `json:"-"`
}

// Load parses the config file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Standardize strips comments and trailing commas so the stdlib
	// decoder can take it from there.
	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, usererr.WithUserMessage(err, "%s is not valid JSON", path)
	}

	cfg := &Config{}
	if err := json.Unmarshal(std, cfg); err != nil {
		return nil, usererr.WithUserMessage(err, "%s has an invalid structure", path)
	}
	if cfg.Name == "" {
		return nil, usererr.New("%s is missing the required \"name\" field", path)
	}
	if cfg.Entry == "" {
		cfg.Entry = "main.lox"
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Find walks up from dir looking for rlox.json and returns its path.
func Find(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WithStack(err)
	}
	for {
		path := filepath.Join(absDir, DefaultName)
		if fileutil.IsFile(path) {
			return path, nil
		}
		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", usererr.New(
				"no %s found in %s or any parent directory. Run `rlox init` to create one.",
				DefaultName, dir,
			)
		}
		absDir = parent
	}
}

// Open finds and loads the config governing dir.
func Open(dir string) (*Config, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Script resolves a script name to a path relative to the project root.
// Unknown names are a user error.
func (c *Config) Script(name string) (string, error) {
	if c.Scripts != nil {
		if path, ok := c.Scripts.Get(name); ok {
			return filepath.Join(c.Dir, path), nil
		}
	}
	return "", usererr.New("no script named %q in %s", name, filepath.Join(c.Dir, DefaultName))
}

// ScriptNames returns the script names in declaration order.
func (c *Config) ScriptNames() []string {
	if c.Scripts == nil {
		return nil
	}
	names := make([]string, 0, c.Scripts.Len())
	for pair := c.Scripts.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// EntryPath returns the absolute path of the entry script.
func (c *Config) EntryPath() string {
	return filepath.Join(c.Dir, c.Entry)
}
