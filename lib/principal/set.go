// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bureau-foundation/ntaccount/lib/binhash"
	"github.com/bureau-foundation/ntaccount/lib/codec"
	"github.com/bureau-foundation/ntaccount/lib/sealed"
)

// SetFormatVersion is the identity-set file format written by WriteSet.
// UnmarshalSet rejects any other version.
const SetFormatVersion = 1

// Set is a persisted collection of resolved identities. Identities are
// unique by SID and keep the order in which they were added.
type Set struct {
	Version int `json:"version"`

	// SystemName is the system the names were resolved against; empty
	// means the local system and its trusted domains.
	SystemName string `json:"system_name,omitempty"`

	// ResolvedAt is when the set was produced.
	ResolvedAt time.Time `json:"resolved_at"`

	Identities []Record `json:"identities"`
}

// NewSet builds a Set from identities, dropping zero values and later
// duplicates of the same principal.
func NewSet(systemName string, resolvedAt time.Time, identities []Identity) Set {
	set := Set{
		Version:    SetFormatVersion,
		SystemName: systemName,
		ResolvedAt: resolvedAt.UTC(),
		Identities: make([]Record, 0, len(identities)),
	}
	seen := make(map[string]bool, len(identities))
	for _, identity := range identities {
		if identity.IsZero() || seen[identity.Key()] {
			continue
		}
		seen[identity.Key()] = true
		set.Identities = append(set.Identities, identity.Record())
	}
	return set
}

// Decode validates every record and returns the identities.
func (s Set) Decode() ([]Identity, error) {
	identities := make([]Identity, 0, len(s.Identities))
	for index, record := range s.Identities {
		identity, err := record.Identity()
		if err != nil {
			return nil, fmt.Errorf("identity %d: %w", index, err)
		}
		identities = append(identities, identity)
	}
	return identities, nil
}

// Contains reports whether the set holds the same principal as identity.
func (s Set) Contains(identity Identity) bool {
	for _, record := range s.Identities {
		if record.SID.Equal(identity.SID()) {
			return true
		}
	}
	return false
}

// ErrSealed is returned when reading a sealed identity set without a
// private key.
var ErrSealed = errors.New("identity set is sealed; a private key is required")

// MarshalSet encodes set as deterministic CBOR. Equal sets always
// encode to the same bytes.
func MarshalSet(set Set) ([]byte, error) {
	if set.Version == 0 {
		set.Version = SetFormatVersion
	}
	data, err := codec.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encoding identity set: %w", err)
	}
	return data, nil
}

// UnmarshalSet decodes the output of MarshalSet, rejecting other
// format versions.
func UnmarshalSet(data []byte) (Set, error) {
	var set Set
	if err := codec.Unmarshal(data, &set); err != nil {
		return Set{}, fmt.Errorf("parsing identity set: %w", err)
	}
	if set.Version != SetFormatVersion {
		return Set{}, fmt.Errorf("identity set has format version %d, want %d", set.Version, SetFormatVersion)
	}
	return set, nil
}

// Digest returns the keyed BLAKE3 digest of the set's encoding. It is
// the same whether the set is stored plain or sealed.
func (s Set) Digest() (binhash.Digest, error) {
	data, err := MarshalSet(s)
	if err != nil {
		return binhash.Digest{}, err
	}
	return binhash.Sum(data), nil
}

// WriteSet atomically writes set to path as CBOR.
func WriteSet(path string, set Set) error {
	data, err := MarshalSet(set)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// WriteSealedSet atomically writes set to path encrypted to the given
// age recipients.
func WriteSealedSet(path string, set Set, recipients []string) error {
	data, err := MarshalSet(set)
	if err != nil {
		return err
	}
	ciphertext, err := sealed.Encrypt(data, recipients)
	if err != nil {
		return fmt.Errorf("sealing identity set: %w", err)
	}
	return writeFileAtomic(path, ciphertext)
}

// ReadSetData returns the CBOR encoding stored at path, decrypting it
// first when the file is sealed. A missing file wraps os.ErrNotExist,
// and a sealed file read without privateKeys wraps ErrSealed. Pass the
// result to UnmarshalSet.
func ReadSetData(path string, privateKeys []string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !sealed.IsSealed(data) {
		return data, nil
	}
	if len(privateKeys) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrSealed)
	}
	plaintext, err := sealed.Decrypt(data, privateKeys)
	if err != nil {
		return nil, fmt.Errorf("opening sealed identity set %s: %w", path, err)
	}
	return plaintext, nil
}

// writeFileAtomic writes data to a uniquely named temporary file in
// the same directory, fsyncs it and renames it into place. Concurrent
// writers to one path never share a temporary file; the last rename
// wins. The file has mode 0600.
func writeFileAtomic(path string, data []byte) error {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary identity set file: %w", err)
	}
	temporaryPath := file.Name()
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary identity set file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary identity set file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary identity set file: %w", err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming identity set file into place: %w", err)
	}

	parentDirectory, err := os.Open(filepath.Dir(path))
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}
	return nil
}
