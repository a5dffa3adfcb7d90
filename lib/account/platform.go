// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package account

import "unicode/utf16"

// Platform is the native account service the resolver calls through.
type Platform interface {
	// LookupAccountName maps accountName to a SID, the referenced
	// domain and the SID_NAME_USE value, writing into buffers. On
	// entry SIDSize and DomainSize hold the capacities of the SID and
	// Domain slices. When a buffer is too small the call fails and
	// both sizes are set to what is required. An empty systemName
	// means the local system and its trusted domains.
	LookupAccountName(systemName, accountName string, buffers *LookupBuffers) error

	// SIDToString renders a raw SID in its "S-1-..." form. The result
	// is owned by the caller and must be released exactly once.
	SIDToString(raw []byte) (NativeString, error)

	// TranslateSID returns the display name of a raw SID: "DOMAIN\name",
	// or the bare name for principals without a domain.
	TranslateSID(systemName string, raw []byte) (string, error)
}

// NativeString is a string held in memory owned by the platform.
// String may not be called after Release.
type NativeString interface {
	String() string
	Release()
}

// LookupBuffers are the caller-owned in/out parameters of a
// LookupAccountName call. Domain is UTF-16 because that is what the
// native call writes.
type LookupBuffers struct {
	SID        []byte
	SIDSize    uint32
	Domain     []uint16
	DomainSize uint32
	Use        uint32
}

// newLookupBuffers returns probe buffers: no SID storage and a domain
// buffer of domainCapacity characters.
func newLookupBuffers(domainCapacity int) *LookupBuffers {
	return &LookupBuffers{
		Domain:     make([]uint16, domainCapacity),
		DomainSize: uint32(domainCapacity),
	}
}

// resize allocates a SID buffer of exactly the reported size and grows
// the domain buffer to at least the reported capacity.
func (b *LookupBuffers) resize() {
	b.SID = make([]byte, b.SIDSize)
	if int(b.DomainSize) > len(b.Domain) {
		b.Domain = make([]uint16, b.DomainSize)
	}
	b.DomainSize = uint32(len(b.Domain))
}

// DomainName decodes the domain written by a successful lookup, which
// sets DomainSize to the length excluding the terminating NUL.
func (b *LookupBuffers) DomainName() string {
	domain := b.Domain[:min(int(b.DomainSize), len(b.Domain))]
	for index, unit := range domain {
		if unit == 0 {
			domain = domain[:index]
			break
		}
	}
	return string(utf16.Decode(domain))
}
