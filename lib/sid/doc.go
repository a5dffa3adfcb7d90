// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sid provides an immutable value type for Windows security
// identifiers.
//
// A [SID] holds a private copy of the raw binary identifier returned by
// the platform's account lookup. The binary layout is:
//
//	byte 0      revision (always 1)
//	byte 1      sub-authority count N (0..15)
//	bytes 2..7  identifier authority, 48-bit big-endian
//	bytes 8..   N sub-authorities, 32-bit little-endian
//
// SIDs compare structurally: two values are equal when their bytes are
// equal, and SID itself is comparable with == and usable as a map key.
// [SID.Key] exposes the same bytes as a string for callers that keep
// their own indexes.
//
// Constructors:
//
//   - [FromBytes] -- validates and copies a raw identifier
//   - [Parse] -- parses the "S-1-5-32-544" text form
//   - [MustParse] -- Parse for package-level constants and tests
//
// The text form is the canonical serialization: [SID.MarshalText] and
// [SID.UnmarshalText] make SIDs round-trip through JSON, YAML and CBOR
// (lib/codec enables TextMarshaler support).
//
// [WellKnownName] and [WellKnown] expose a static table of the fixed
// identifiers every Windows host shares (Everyone, BUILTIN\Administrators,
// SYSTEM, ...). The table is compiled in; it is not an enumeration of a
// host's accounts.
//
// This package has no platform-specific code and no ntaccount-internal
// dependencies.
package sid
