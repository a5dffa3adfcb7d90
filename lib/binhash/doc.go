// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash computes content digests of identity sets.
//
// An identity set is encoded with deterministic CBOR, so two sets with
// the same system, timestamp and identities always encode to the same
// bytes. [Sum] hashes those bytes with keyed BLAKE3, giving a short
// fingerprint an operator can record when exporting a snapshot and
// check later with "ntaccount inspect --expect-digest". The digest is
// taken over the plaintext encoding, so sealing a set does not change
// it.
//
// This package has no dependencies on other ntaccount packages.
package binhash
