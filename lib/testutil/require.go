// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"testing"
	"time"
)

// Timeout bounds every wait in this package unless the caller passes
// its own. It only matters when a test is already broken.
const Timeout = 5 * time.Second

// RequireReceive reads one value from ch within timeout, or fails the
// test with the formatted description.
//
//	name := testutil.RequireReceive(t, platform.entered, testutil.Timeout, "lookup %d", i)
func RequireReceive[T any](t testing.TB, ch <-chan T, timeout time.Duration, format string, args ...any) T {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case value, ok := <-ch:
		if !ok {
			t.Fatalf("%s: channel closed without a value", fmt.Sprintf(format, args...))
		}
		return value
	case <-timer.C:
		t.Fatalf("%s: nothing received after %v", fmt.Sprintf(format, args...), timeout)
	}
	panic("unreachable")
}

// RequireSend sends value on ch within timeout, or fails the test.
func RequireSend[T any](t testing.TB, ch chan<- T, value T, timeout time.Duration, format string, args ...any) {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ch <- value:
	case <-timer.C:
		t.Fatalf("%s: send not accepted after %v", fmt.Sprintf(format, args...), timeout)
	}
}

// RequireClosed waits for ch to be closed within timeout, or fails the
// test. Use it to wait for a goroutine that signals completion by
// closing a done channel.
func RequireClosed(t testing.TB, ch <-chan struct{}, timeout time.Duration, format string, args ...any) {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
	case <-timer.C:
		t.Fatalf("%s: still open after %v", fmt.Sprintf(format, args...), timeout)
	}
}
