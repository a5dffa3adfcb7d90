// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// Exit codes shared by every ntaccount command.
const (
	// ExitOK means every name resolved (or the compared names matched).
	ExitOK = 0
	// ExitNegative is a well-defined negative answer: a name that does
	// not map to any principal, or two names that differ.
	ExitNegative = 1
	// ExitFailure is any error: platform failure, bad usage, I/O.
	ExitFailure = 2
)

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command handler returns an ExitError, main
// exits with the specified code without printing the error string;
// the command has already written its own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. lib/process checks for this
// interface to distinguish "handled non-zero exit" from "unexpected
// error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
