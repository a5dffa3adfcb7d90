// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package account

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// NativePlatform returns the advapi32 account service.
func NativePlatform() Platform {
	return windowsPlatform{}
}

type windowsPlatform struct{}

func (windowsPlatform) LookupAccountName(systemName, accountName string, buffers *LookupBuffers) error {
	// A name with an embedded NUL cannot be passed to the native call.
	system, err := optionalUTF16(systemName)
	if err != nil {
		return fmt.Errorf("system name %q: %w", systemName, StatusInvalidParameter)
	}
	account, err := windows.UTF16PtrFromString(accountName)
	if err != nil {
		return fmt.Errorf("account name %q: %w", accountName, StatusInvalidParameter)
	}

	var domain *uint16
	if len(buffers.Domain) > 0 {
		domain = &buffers.Domain[0]
	}
	return windows.LookupAccountName(
		system,
		account,
		sidPointer(buffers.SID),
		&buffers.SIDSize,
		domain,
		&buffers.DomainSize,
		&buffers.Use,
	)
}

func (windowsPlatform) SIDToString(raw []byte) (NativeString, error) {
	if len(raw) == 0 {
		return nil, StatusInvalidParameter
	}
	var text *uint16
	if err := windows.ConvertSidToStringSid(sidPointer(raw), &text); err != nil {
		return nil, err
	}
	return &localString{text: text}, nil
}

func (windowsPlatform) TranslateSID(systemName string, raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", StatusInvalidParameter
	}
	name, domain, _, err := sidPointer(raw).LookupAccount(systemName)
	if err != nil {
		return "", err
	}
	if domain == "" {
		return name, nil
	}
	return domain + `\` + name, nil
}

// sidPointer views raw as a native SID. The slice must stay alive for
// the duration of the call using the pointer.
func sidPointer(raw []byte) *windows.SID {
	if len(raw) == 0 {
		return nil
	}
	return (*windows.SID)(unsafe.Pointer(&raw[0]))
}

func optionalUTF16(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(s)
}

// localString is a string allocated by the system with LocalAlloc.
type localString struct {
	text *uint16
}

func (s *localString) String() string {
	return windows.UTF16PtrToString(s.text)
}

func (s *localString) Release() {
	if s.text == nil {
		return
	}
	windows.LocalFree(windows.Handle(unsafe.Pointer(s.text)))
	s.text = nil
}
