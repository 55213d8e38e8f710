// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package loxcli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/lox/interp"
	"github.com/rlox-lang/rlox/internal/lox/scanner"
	"github.com/rlox-lang/rlox/internal/lox/token"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "tokens <script.lox>",
		Short:  "Print the token stream of a script",
		Hidden: true, // debugging aid
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tokensCmdFunc(cmd, args[0])
		},
	}
}

func tokensCmdFunc(cmd *cobra.Command, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}

	tokens, scanErrs := scanner.New(string(source)).Scan()
	for _, scanErr := range scanErrs {
		fmt.Fprintln(cmd.ErrOrStderr(), scanErr.Error())
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("LINE", "TYPE", "LEXEME", "LITERAL")
	rows := lo.Map(tokens, func(tok token.Token, _ int) []string {
		literal := ""
		if tok.Literal != nil {
			literal = interp.Stringify(tok.Literal)
		}
		return []string{strconv.Itoa(tok.Line), tok.Type.String(), tok.Lexeme, literal}
	})
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return errors.WithStack(err)
		}
	}
	if err := table.Render(); err != nil {
		return errors.WithStack(err)
	}

	if len(scanErrs) > 0 {
		return usererr.NewExitError(usererr.CodeData, scanErrs[0])
	}
	return nil
}
