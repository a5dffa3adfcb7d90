// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package account

// NativePlatform returns a Platform whose every call fails with
// ERROR_CALL_NOT_IMPLEMENTED: there is no account service to call
// outside Windows.
func NativePlatform() Platform {
	return unsupportedPlatform{}
}

type unsupportedPlatform struct{}

func (unsupportedPlatform) LookupAccountName(string, string, *LookupBuffers) error {
	return StatusCallNotImplemented
}

func (unsupportedPlatform) SIDToString([]byte) (NativeString, error) {
	return nil, StatusCallNotImplemented
}

func (unsupportedPlatform) TranslateSID(string, []byte) (string, error) {
	return "", StatusCallNotImplemented
}
