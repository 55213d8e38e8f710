// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package loxcli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/lox/ast"
	"github.com/rlox-lang/rlox/internal/lox/parser"
	"github.com/rlox-lang/rlox/internal/lox/scanner"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

func astCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "ast <script.lox>",
		Short:  "Print the syntax tree of a script",
		Hidden: true, // debugging aid
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return astCmdFunc(cmd, args[0])
		},
	}
}

func astCmdFunc(cmd *cobra.Command, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}

	tokens, scanErrs := scanner.New(string(source)).Scan()
	statements, parseErrs := parser.New(tokens).Parse()

	staticErrs := append(scanErrs, parseErrs...)
	for _, staticErr := range staticErrs {
		fmt.Fprintln(cmd.ErrOrStderr(), staticErr.Error())
	}
	if len(staticErrs) > 0 {
		return usererr.NewExitError(usererr.CodeData, staticErrs[0])
	}

	for _, stmt := range statements {
		fmt.Fprintln(cmd.OutOrStdout(), ast.PrintStmt(stmt))
	}
	return nil
}
