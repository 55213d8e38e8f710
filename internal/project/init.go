// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pkg/errors"

	"github.com/rlox-lang/rlox/internal/fileutil"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

// Init writes a starter rlox.json and entry script into dir. It refuses to
// overwrite an existing config.
func Init(dir, name string) error {
	configPath := filepath.Join(dir, DefaultName)
	if fileutil.Exists(configPath) {
		return usererr.New("%s already exists in %s", DefaultName, dir)
	}

	config := fmt.Sprintf(heredoc.Doc(`
		{
		  // The project name. It becomes the package and app name in a
		  // generated flake.
		  "name": %q,

		  // The script run by a bare "rlox run".
		  "entry": "main.lox",
		}
	`), name)
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		return errors.WithStack(err)
	}

	entryPath := filepath.Join(dir, "main.lox")
	if fileutil.Exists(entryPath) {
		return nil
	}
	entry := heredoc.Doc(`
		print "Hello from Lox!";
	`)
	return errors.WithStack(os.WriteFile(entryPath, []byte(entry), 0o644))
}
