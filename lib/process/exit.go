// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// FailureCode is the exit code for errors that carry no code of their
// own.
const FailureCode = 2

// Exit terminates the process for the result of the command tree: 0
// for nil, the error's own code when it has an ExitCode() method (the
// command has already written its output), and otherwise FailureCode
// after writing "error: err" to stderr.
func Exit(err error) {
	os.Exit(report(os.Stderr, err))
}

// report writes what Exit would print and returns the exit code.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return FailureCode
}
