// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package loxcli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/build"
	"github.com/rlox-lang/rlox/internal/debug"
	"github.com/rlox-lang/rlox/internal/lox"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Lox session",
		Long: "Starts a read-eval-print loop. Expressions have their value echoed " +
			"back; statements run silently. The session keeps one global scope, so " +
			"variables and functions persist between lines.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	stdout := cmd.OutOrStdout()
	interactive := isatty.IsTerminal(os.Stdin.Fd())

	if interactive {
		fmt.Fprintf(stdout, "rlox %s\n", build.Version)
	}

	// One runner for the whole session: globals persist between lines.
	runner := lox.NewRunner(stdout, cmd.ErrOrStderr())
	prompt := color.New(color.FgCyan).Sprint("> ")

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			fmt.Fprint(stdout, prompt)
		}
		if !in.Scan() {
			if interactive {
				fmt.Fprintln(stdout)
			}
			return in.Err()
		}
		line := in.Text()
		if line == "" {
			continue
		}

		// Errors don't end the session; they were already reported.
		if err := runner.RunREPLLine(line, func(result string) {
			fmt.Fprintln(stdout, result)
		}); err != nil {
			debug.Log("repl line failed: %v", err)
		}
	}
}
