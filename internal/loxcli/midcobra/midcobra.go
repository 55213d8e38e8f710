// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package midcobra wraps cobra command execution with middleware hooks and
// maps errors to process exit codes.
package midcobra

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
)

type Executable interface {
	AddMiddleware(mids ...Middleware)
	Execute(ctx context.Context, args []string) int
}

type Middleware interface {
	preRun(cmd *cobra.Command, args []string)
	postRun(cmd *cobra.Command, args []string, runErr error)
}

func New(cmd *cobra.Command) Executable {
	return &midcobraExecutable{
		cmd:         cmd,
		middlewares: []Middleware{},
	}
}

type midcobraExecutable struct {
	cmd *cobra.Command

	middlewares []Middleware
}

var _ Executable = (*midcobraExecutable)(nil)

func (ex *midcobraExecutable) AddMiddleware(mids ...Middleware) {
	ex.middlewares = append(ex.middlewares, mids...)
}

func (ex *midcobraExecutable) Execute(ctx context.Context, args []string) int {
	// Ensure cobra uses the same arguments
	ex.cmd.SetContext(ctx)
	_ = ex.cmd.ParseFlags(args)

	// Run the 'pre' hooks
	for _, m := range ex.middlewares {
		m.preRun(ex.cmd, args)
	}

	// set args (needed in case caller transforms args in any way)
	ex.cmd.SetArgs(args)

	// Execute the cobra command:
	err := ex.cmd.Execute()

	// Run the 'post' hooks. Unlike cobra's PostRun these run even when the
	// command failed, which is where error reporting happens.
	for i := len(ex.middlewares) - 1; i >= 0; i-- {
		ex.middlewares[i].postRun(ex.cmd, args, err)
	}

	return exitCode(err)
}

// exitCode maps an error to the process exit code. Reporting has already
// happened, either in the interpreter or in a middleware postRun.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	// Interpreter failures carry their own sysexits-style code.
	var exitErr *usererr.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	if _, ok := usererr.Extract(err); ok {
		return usererr.CodeUsage
	}
	return 1
}
