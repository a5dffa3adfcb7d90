// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package account resolves Windows account names ("Administrators",
// "CORP\jsmith") into [principal.Identity] values.
//
// Resolution drives the platform's LookupAccountName in two phases. A
// probe call with an empty SID buffer and a small domain buffer is
// expected to fail: ERROR_INSUFFICIENT_BUFFER or ERROR_INVALID_FLAGS
// (different platform versions use either) report the required sizes,
// and ERROR_NONE_MAPPED means the name does not exist. A second call
// with buffers of the reported size must succeed; any failure there is
// terminal. The raw SID is then rendered to its string form for
// diagnostics, translated back to a display name, and the redundant
// "DOMAIN\" prefix is stripped from that name.
//
// [Resolver.Resolve] returns (identity, true, nil) on success,
// (zero, false, nil) when the name is not mapped, and a
// [*PlatformError] or [*TranslationError] otherwise. [StatusOf]
// extracts the platform status code from any returned error.
//
// The native calls go through the [Platform] interface.
// [NativePlatform] returns the golang.org/x/sys/windows binding on
// Windows; on other systems every call fails with
// ERROR_CALL_NOT_IMPLEMENTED. Tests substitute a scripted Platform.
//
// A Resolver holds no mutable state and may be used concurrently.
// [Resolver.ResolveAll] fans a list of names out over a bounded number
// of goroutines. Nothing is cached between calls.
package account
