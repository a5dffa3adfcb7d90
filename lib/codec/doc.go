// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration for identity
// set files.
//
// JSON is used for CLI output; CBOR is used for files written by
// "ntaccount export" and read by "ntaccount inspect". Both formats are
// driven by the same `json` struct tags: fxamacker/cbor v2 reads `json`
// tags when `cbor` tags are absent, so [principal.Record] needs one tag
// per field to control naming in both.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Exporting the same identities twice produces byte-identical files.
//
//	data, err := codec.Marshal(set)
//	err = codec.Unmarshal(data, &set)
//
// Decoding is strict: duplicate map keys, trailing bytes and input past
// the [MaxNestedLevels], [MaxArrayElements] and [MaxMapPairs] limits are
// rejected. [Canonical] reports whether a file is byte-for-byte what
// the encoder would write, and [Diagnose] renders arbitrary CBOR in
// diagnostic notation for debugging files that fail to decode.
package codec
