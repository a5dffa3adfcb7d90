// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("exit %d", e.code) }
func (e *codedError) ExitCode() int { return e.code }

func TestReport(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantOutput string
	}{
		{"nil", nil, 0, ""},
		{"plain error", errors.New("lookup failed"), FailureCode, "error: lookup failed\n"},
		{"coded error", &codedError{code: 1}, 1, ""},
		{"wrapped coded error", fmt.Errorf("resolve: %w", &codedError{code: 1}), 1, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			if got := report(&output, test.err); got != test.wantCode {
				t.Errorf("code = %d, want %d", got, test.wantCode)
			}
			if output.String() != test.wantOutput {
				t.Errorf("output = %q, want %q", output.String(), test.wantOutput)
			}
		})
	}
}
