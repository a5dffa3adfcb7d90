// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// setDomainKey keys the hash so that identity-set digests never collide
// with digests of the same bytes computed for another purpose. Changing
// it invalidates every recorded digest. The bytes are the ASCII domain
// name, zero-padded to 32.
var setDomainKey = [32]byte{
	'n', 't', 'a', 'c', 'c', 'o', 'u', 'n', 't', '.', 'i', 'd', 'e', 'n', 't', 'i',
	't', 'y', '.', 's', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sum computes the keyed digest of an encoded identity set.
func Sum(data []byte) Digest {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(setDomainKey[:])
	if err != nil {
		panic("binhash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// String returns the hex encoding of the digest. This is the form
// printed by the CLI and accepted by ParseDigest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 12 hex characters, for log lines.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:6])
}

// ParseDigest parses a 64-character hex string into a Digest.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
