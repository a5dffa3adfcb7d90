// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for ntaccount packages.
//
// [RequireReceive], [RequireSend] and [RequireClosed] wrap a channel
// operation in a select with a timer, so a test that deadlocks fails
// with a description instead of hanging until the go test deadline.
// They are the only place tests use real wall-clock timeouts.
//
// All helpers call t.Fatalf on failure, so they must be called from the
// test goroutine.
//
// This package has no ntaccount-internal dependencies.
package testutil
