// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package usererr

import "errors"

// Conventional interpreter exit codes, from BSD sysexits.
const (
	CodeUsage    = 64 // command line usage error
	CodeData     = 65 // malformed input: scan or parse errors
	CodeSoftware = 70 // Lox runtime error
)

// ExitError wraps an error with the exit code the process should terminate
// with. The message, if any, has already been reported by the time it
// reaches the top of the CLI.
type ExitError struct {
	code int
	err  error
}

func NewExitError(code int, source error) error {
	return &ExitError{code: code, err: source}
}

func (e *ExitError) Error() string {
	if e.err == nil {
		return "exit"
	}
	return e.err.Error()
}

func (e *ExitError) Is(target error) bool {
	return errors.Is(e.err, target)
}

func (e *ExitError) ExitCode() int {
	return e.code
}

// Unwrap provides compatibility for Go 1.13 error chains.
func (e *ExitError) Unwrap() error { return e.err }
