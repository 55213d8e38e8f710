// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package lox runs Lox programs: it wires the scanner, parser, resolver and
// interpreter together and owns error reporting.
package lox

import (
	"errors"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/rlox-lang/rlox/internal/debug"
	"github.com/rlox-lang/rlox/internal/lox/ast"
	"github.com/rlox-lang/rlox/internal/lox/interp"
	"github.com/rlox-lang/rlox/internal/lox/parser"
	"github.com/rlox-lang/rlox/internal/lox/scanner"
)

// ErrSyntax is returned by Run and RunFile when scanning, parsing or
// resolution reported errors. The individual diagnostics have already been
// written to the runner's stderr; callers only need the exit code mapping.
var ErrSyntax = errors.New("syntax errors in source")

// Runner executes Lox source chunks against a single persistent
// interpreter, so REPL lines share one global scope.
type Runner struct {
	interp *interp.Interpreter
	stderr io.Writer
}

func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{
		interp: interp.New(stdout),
		stderr: stderr,
	}
}

// RunFile reads and runs a script. Syntax errors yield ErrSyntax and
// runtime errors yield *interp.RuntimeError, both after reporting to
// stderr.
func (r *Runner) RunFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return pkgerrors.WithStack(err)
	}
	return r.Run(string(source))
}

// Run executes a chunk of source to completion.
func (r *Runner) Run(source string) error {
	statements, err := r.compile(source)
	if err != nil {
		return err
	}
	return r.report(r.interp.Interpret(statements))
}

// RunREPLLine executes one line of interactive input. When the line is a
// single expression its value is echoed through echo. Errors are reported
// and returned but the session is expected to continue.
func (r *Runner) RunREPLLine(line string, echo func(string)) error {
	// Expression lines get their value printed back; anything that doesn't
	// parse as a lone expression is run as a program.
	tokens, scanErrs := scanner.New(line).Scan()
	if len(scanErrs) == 0 {
		if expr, errs := parser.New(tokens).ParseExpression(); len(errs) == 0 {
			// Expressions go through the resolver like any statement would,
			// so 'this' and 'super' fail statically instead of at runtime.
			wrapped := []ast.Stmt{&ast.Expression{Expression: expr}}
			if errs := interp.NewResolver(r.interp).Resolve(wrapped); len(errs) > 0 {
				return r.reportStatic(errs)
			}
			value, err := r.interp.Evaluate(expr)
			if err != nil {
				return r.report(err)
			}
			echo(interp.StringifyREPL(value))
			return nil
		}
	}
	return r.Run(line)
}

// compile scans, parses and resolves a chunk, reporting every diagnostic.
func (r *Runner) compile(source string) ([]ast.Stmt, error) {
	tokens, scanErrs := scanner.New(source).Scan()
	statements, parseErrs := parser.New(tokens).Parse()

	errs := append(scanErrs, parseErrs...)
	if len(errs) == 0 {
		errs = interp.NewResolver(r.Interpreter()).Resolve(statements)
	}
	if len(errs) > 0 {
		return nil, r.reportStatic(errs)
	}
	return statements, nil
}

// reportStatic writes every scan, parse or resolve diagnostic to stderr and
// collapses them into ErrSyntax.
func (r *Runner) reportStatic(errs []error) error {
	for _, err := range errs {
		debug.Log("static error: %v", err)
		io.WriteString(r.stderr, err.Error()+"\n")
	}
	return ErrSyntax
}

func (r *Runner) report(err error) error {
	if err == nil {
		return nil
	}
	var runtimeErr *interp.RuntimeError
	if errors.As(err, &runtimeErr) {
		io.WriteString(r.stderr, runtimeErr.Error()+"\n")
	}
	return err
}

// Interpreter exposes the underlying interpreter, mainly for the resolver.
func (r *Runner) Interpreter() *interp.Interpreter {
	return r.interp
}
