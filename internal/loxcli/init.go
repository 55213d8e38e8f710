// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package loxcli

import (
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/fileutil"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
	"github.com/rlox-lang/rlox/internal/project"
	"github.com/rlox-lang/rlox/internal/ux"
)

type initCmdFlags struct {
	name string
}

func initCmd() *cobra.Command {
	flags := initCmdFlags{}
	command := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create an rlox.json in the current directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return initCmdFunc(cmd, dir, flags)
		},
	}

	command.Flags().StringVar(
		&flags.name, "name", "", "project name (defaults to the directory name)")
	return command
}

func initCmdFunc(cmd *cobra.Command, dir string, flags initCmdFlags) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.WithStack(err)
	}
	if !fileutil.IsDir(absDir) {
		return usererr.New("%s is not a directory", dir)
	}

	name := flags.name
	if name == "" {
		name = filepath.Base(absDir)
		if isatty.IsTerminal(os.Stdin.Fd()) {
			prompt := &survey.Input{
				Message: "Project name:",
				Default: name,
			}
			if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	if err := project.Init(absDir, name); err != nil {
		return err
	}
	ux.Fsuccess(cmd.ErrOrStderr(), "created %s for project %q\n", project.DefaultName, name)
	return nil
}
