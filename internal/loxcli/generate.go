// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package loxcli

import (
	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/flake"
	"github.com/rlox-lang/rlox/internal/project"
	"github.com/rlox-lang/rlox/internal/ux"
)

type generateFlakeFlags struct {
	force bool
}

func generateCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate supporting files for the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	command.AddCommand(generateFlakeCmd())
	return command
}

func generateFlakeCmd() *cobra.Command {
	flags := generateFlakeFlags{}
	command := &cobra.Command{
		Use:   "flake",
		Short: "Generate a flake.nix that packages the project",
		Long: "Writes a flake.nix exposing the project as a buildable package, a " +
			"runnable app (both with default aliases), and a dev shell with the " +
			"project's tools.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateFlakeCmdFunc(cmd, flags)
		},
	}
	command.Flags().BoolVarP(
		&flags.force, "force", "f", false, "overwrite an existing flake.nix")
	return command
}

func generateFlakeCmdFunc(cmd *cobra.Command, flags generateFlakeFlags) error {
	cfg, err := project.Open(".")
	if err != nil {
		return err
	}
	plan, err := flake.NewPlan(cfg)
	if err != nil {
		return err
	}
	path, err := plan.Write(cfg.Dir, flags.force)
	if err != nil {
		return err
	}
	ux.Fsuccess(cmd.ErrOrStderr(), "generated %s\n", path)
	return nil
}
