// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age"
)

// header is the first line of every binary age file.
const header = "age-encryption.org/v1\n"

// Keypair holds an age x25519 keypair.
type Keypair struct {
	// PrivateKey is the secret key in AGE-SECRET-KEY-1... format.
	PrivateKey string

	// PublicKey is the corresponding recipient in age1... format.
	PublicKey string
}

// GenerateKeypair generates a new age x25519 keypair.
func GenerateKeypair() (Keypair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return Keypair{}, fmt.Errorf("generating age keypair: %w", err)
	}
	return Keypair{
		PrivateKey: identity.String(),
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// Encrypt encrypts plaintext to one or more recipients given as age
// public keys. The result is a binary age file.
func Encrypt(plaintext []byte, recipientKeys []string) ([]byte, error) {
	if len(recipientKeys) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}

	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}

	var ciphertext bytes.Buffer
	writer, err := age.Encrypt(&ciphertext, recipients...)
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing age encryption: %w", err)
	}
	return ciphertext.Bytes(), nil
}

// Decrypt decrypts a binary age file with any of the given private
// keys.
func Decrypt(ciphertext []byte, privateKeys []string) ([]byte, error) {
	if len(privateKeys) == 0 {
		return nil, fmt.Errorf("at least one private key is required")
	}

	identities := make([]age.Identity, 0, len(privateKeys))
	for index, key := range privateKeys {
		identity, err := age.ParseX25519Identity(key)
		if err != nil {
			// The parse error may quote the key.
			return nil, fmt.Errorf("private key %d is not a valid age identity", index)
		}
		identities = append(identities, identity)
	}

	reader, err := age.Decrypt(bytes.NewReader(ciphertext), identities...)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading decrypted plaintext: %w", err)
	}
	return plaintext, nil
}

// IsSealed reports whether data is a binary age file.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, []byte(header))
}

// ParsePublicKey validates an age public key.
func ParsePublicKey(publicKey string) error {
	if _, err := age.ParseX25519Recipient(publicKey); err != nil {
		return fmt.Errorf("invalid age public key: %w", err)
	}
	return nil
}

// WriteKeyFile writes the private key to path in the age-keygen
// layout, with the public key as a comment. The file is created with
// mode 0600 and must not already exist.
func WriteKeyFile(path string, keypair Keypair) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("creating key file: %w", err)
	}
	_, writeErr := fmt.Fprintf(file, "# public key: %s\n%s\n", keypair.PublicKey, keypair.PrivateKey)
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("writing key file %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing key file %s: %w", path, closeErr)
	}
	return nil
}

// ReadKeyFile reads the private keys from a key file. Blank lines and
// lines starting with '#' are ignored; every other line must be an age
// x25519 private key.
func ReadKeyFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening key file: %w", err)
	}
	defer file.Close()

	var keys []string
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := age.ParseX25519Identity(line); err != nil {
			return nil, fmt.Errorf("key file %s line %d: not an age private key", path, lineNumber)
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading key file %s: %w", path, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("key file %s contains no private keys", path)
	}
	return keys, nil
}
