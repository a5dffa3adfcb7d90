// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// recordingTB captures Fatalf instead of stopping the test.
type recordingTB struct {
	testing.TB
	message string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Fatalf(format string, args ...any) {
	r.message = fmt.Sprintf(format, args...)
	panic(r)
}

// expectFatal runs fn and returns the Fatalf message it produced.
func expectFatal(t *testing.T, fn func(tb testing.TB)) (message string) {
	t.Helper()
	recorder := &recordingTB{TB: t}
	defer func() {
		if recovered := recover(); recovered != recorder {
			if recovered != nil {
				panic(recovered)
			}
			t.Fatal("helper did not fail the test")
		}
		message = recorder.message
	}()
	fn(recorder)
	return ""
}

func TestRequireReceive(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 42
	if got := RequireReceive(t, ch, Timeout, "buffered value"); got != 42 {
		t.Errorf("RequireReceive = %d, want 42", got)
	}
}

func TestRequireReceive_Timeout(t *testing.T) {
	message := expectFatal(t, func(tb testing.TB) {
		RequireReceive(tb, make(chan int), 10*time.Millisecond, "waiting for %s", "lookup")
	})
	if !strings.Contains(message, "waiting for lookup") {
		t.Errorf("failure message = %q", message)
	}
}

func TestRequireReceive_Closed(t *testing.T) {
	ch := make(chan int)
	close(ch)
	expectFatal(t, func(tb testing.TB) {
		RequireReceive(tb, ch, Timeout, "closed channel")
	})
}

func TestRequireSend(t *testing.T) {
	ch := make(chan string, 1)
	RequireSend(t, ch, "value", Timeout, "buffered send")
	if got := <-ch; got != "value" {
		t.Errorf("received %q, want value", got)
	}

	expectFatal(t, func(tb testing.TB) {
		RequireSend(tb, make(chan string), "value", 10*time.Millisecond, "unbuffered send")
	})
}

func TestRequireClosed(t *testing.T) {
	done := make(chan struct{})
	close(done)
	RequireClosed(t, done, Timeout, "closed")

	expectFatal(t, func(tb testing.TB) {
		RequireClosed(tb, make(chan struct{}), 10*time.Millisecond, "never closed")
	})
}
