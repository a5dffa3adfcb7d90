// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed provides age encryption for identity-set files.
//
// An identity set lists the principals that hold some right on a
// system, which is information an operator may not want readable by
// whoever can read the export directory. "ntaccount export
// --recipient age1..." seals the encoded set to one or more age x25519
// public keys; "ntaccount inspect --identity KEYFILE" opens it.
//
// Sealed files are binary age files ([IsSealed] checks the header), so
// they can also be opened with the age command-line tool. Key files use
// the age-keygen layout: one AGE-SECRET-KEY-1... line per key, with
// '#' comment lines.
package sealed
