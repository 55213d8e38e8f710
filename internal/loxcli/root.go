// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package loxcli implements the rlox command line interface.
package loxcli

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/debug"
	"github.com/rlox-lang/rlox/internal/envir"
	"github.com/rlox-lang/rlox/internal/loxcli/midcobra"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

var debugMiddleware = &midcobra.DebugMiddleware{}

type rootCmdFlags struct {
	quiet bool
}

func RootCmd() *cobra.Command {
	flags := rootCmdFlags{}
	command := &cobra.Command{
		Use:   "rlox [script]",
		Short: "A tree-walking interpreter for the Lox language",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usererr.New("Usage: rlox [script]")
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.quiet {
				cmd.SetErr(io.Discard)
			}
			if envir.IsColorDisabled() {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no script, rlox drops into the REPL, same as
			// `rlox repl`.
			if len(args) == 0 {
				return runREPL(cmd)
			}
			return runScriptFile(cmd, args[0])
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.AddCommand(astCmd())
	command.AddCommand(generateCmd())
	command.AddCommand(initCmd())
	command.AddCommand(replCmd())
	command.AddCommand(runCmd())
	command.AddCommand(tokensCmd())
	command.AddCommand(versionCmd())

	command.PersistentFlags().BoolVarP(
		&flags.quiet, "quiet", "q", false, "suppresses logs")
	debugMiddleware.AttachToFlag(command.PersistentFlags(), "debug")

	return command
}

func Execute(ctx context.Context, args []string) int {
	defer debug.Recover()
	exe := midcobra.New(RootCmd())
	exe.AddMiddleware(debugMiddleware)
	return exe.Execute(ctx, args)
}

func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:]))
}
