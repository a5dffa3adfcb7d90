// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sid

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Revision is the only SID revision Windows has ever defined.
	Revision = 1

	// MaxSubAuthorities is SID_MAX_SUB_AUTHORITIES.
	MaxSubAuthorities = 15

	// MaxSize is SECURITY_MAX_SID_SIZE: a header plus fifteen
	// sub-authorities.
	MaxSize = headerSize + MaxSubAuthorities*4

	// headerSize covers revision, count and the 6-byte authority.
	headerSize = 8

	// maxAuthority is the largest value a 48-bit authority can hold.
	maxAuthority = 1<<48 - 1

	// hexAuthorityThreshold is where the text form switches the
	// authority to hexadecimal, matching ConvertSidToStringSid.
	hexAuthorityThreshold = 1 << 32
)

// SID is an immutable security identifier. The zero value is not a
// valid SID; use [SID.IsZero] to detect it.
type SID struct {
	// raw holds the binary identifier. A string keeps the value
	// immutable and comparable.
	raw string
}

// FromBytes validates raw as a binary SID and returns a SID holding a
// copy of it. The caller's slice is not retained, so native buffers may
// be released as soon as FromBytes returns.
func FromBytes(raw []byte) (SID, error) {
	if len(raw) < headerSize {
		return SID{}, fmt.Errorf("sid: %d bytes is shorter than the %d-byte header", len(raw), headerSize)
	}
	if raw[0] != Revision {
		return SID{}, fmt.Errorf("sid: unsupported revision %d", raw[0])
	}
	count := int(raw[1])
	if count > MaxSubAuthorities {
		return SID{}, fmt.Errorf("sid: %d sub-authorities exceeds the maximum of %d", count, MaxSubAuthorities)
	}
	if want := headerSize + count*4; len(raw) != want {
		return SID{}, fmt.Errorf("sid: %d sub-authorities need %d bytes, got %d", count, want, len(raw))
	}
	return SID{raw: string(raw)}, nil
}

// New builds a SID from its authority and sub-authorities.
func New(authority uint64, subAuthorities ...uint32) (SID, error) {
	if authority > maxAuthority {
		return SID{}, fmt.Errorf("sid: authority %d does not fit in 48 bits", authority)
	}
	if len(subAuthorities) > MaxSubAuthorities {
		return SID{}, fmt.Errorf("sid: %d sub-authorities exceeds the maximum of %d", len(subAuthorities), MaxSubAuthorities)
	}

	raw := make([]byte, headerSize+len(subAuthorities)*4)
	raw[0] = Revision
	raw[1] = byte(len(subAuthorities))
	for index := 0; index < 6; index++ {
		raw[2+index] = byte(authority >> (8 * (5 - index)))
	}
	for index, subAuthority := range subAuthorities {
		binary.LittleEndian.PutUint32(raw[headerSize+index*4:], subAuthority)
	}
	return SID{raw: string(raw)}, nil
}

// Parse parses the text form of a SID, for example "S-1-5-32-544".
// The leading "S" is case-insensitive and the authority may be decimal
// or "0x"-prefixed hexadecimal.
func Parse(text string) (SID, error) {
	parts := strings.Split(text, "-")
	if len(parts) < 3 || !strings.EqualFold(parts[0], "S") {
		return SID{}, fmt.Errorf("sid: %q is not in S-R-I-S... form", text)
	}

	revision, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || revision != Revision {
		return SID{}, fmt.Errorf("sid: %q has unsupported revision %q", text, parts[1])
	}

	var authority uint64
	authorityText := parts[2]
	if hexDigits, isHex := cutHexPrefix(authorityText); isHex {
		authority, err = strconv.ParseUint(hexDigits, 16, 48)
	} else {
		authority, err = strconv.ParseUint(authorityText, 10, 48)
	}
	if err != nil {
		return SID{}, fmt.Errorf("sid: %q has invalid authority %q", text, authorityText)
	}

	subAuthorities := make([]uint32, 0, len(parts)-3)
	for _, part := range parts[3:] {
		value, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return SID{}, fmt.Errorf("sid: %q has invalid sub-authority %q", text, part)
		}
		subAuthorities = append(subAuthorities, uint32(value))
	}

	return New(authority, subAuthorities...)
}

// MustParse is like Parse but panics on malformed input. Use it only
// for compile-time constants.
func MustParse(text string) SID {
	parsed, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return parsed
}

func cutHexPrefix(s string) (string, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return s, false
}

// IsZero reports whether s is the zero value.
func (s SID) IsZero() bool { return s.raw == "" }

// Equal reports whether s and other identify the same principal.
func (s SID) Equal(other SID) bool { return s.raw == other.raw }

// Key returns the raw bytes as a string, suitable as a map key or hash
// input.
func (s SID) Key() string { return s.raw }

// Bytes returns a copy of the binary SID.
func (s SID) Bytes() []byte { return []byte(s.raw) }

// Authority returns the 48-bit identifier authority.
func (s SID) Authority() uint64 {
	if s.IsZero() {
		return 0
	}
	var authority uint64
	for index := 0; index < 6; index++ {
		authority = authority<<8 | uint64(s.raw[2+index])
	}
	return authority
}

// SubAuthorities returns a copy of the sub-authority values.
func (s SID) SubAuthorities() []uint32 {
	if s.IsZero() {
		return nil
	}
	count := int(s.raw[1])
	values := make([]uint32, count)
	for index := 0; index < count; index++ {
		offset := headerSize + index*4
		values[index] = binary.LittleEndian.Uint32([]byte(s.raw[offset : offset+4]))
	}
	return values
}

// RID returns the last sub-authority (the relative identifier) and
// whether the SID has one.
func (s SID) RID() (uint32, bool) {
	subAuthorities := s.SubAuthorities()
	if len(subAuthorities) == 0 {
		return 0, false
	}
	return subAuthorities[len(subAuthorities)-1], true
}

// String returns the canonical text form ("S-1-5-32-544"). The zero
// value formats as an empty string.
func (s SID) String() string {
	if s.IsZero() {
		return ""
	}
	var builder strings.Builder
	builder.WriteString("S-")
	builder.WriteString(strconv.Itoa(int(s.raw[0])))
	builder.WriteByte('-')
	authority := s.Authority()
	if authority >= hexAuthorityThreshold {
		fmt.Fprintf(&builder, "0x%012X", authority)
	} else {
		builder.WriteString(strconv.FormatUint(authority, 10))
	}
	for _, subAuthority := range s.SubAuthorities() {
		builder.WriteByte('-')
		builder.WriteString(strconv.FormatUint(uint64(subAuthority), 10))
	}
	return builder.String()
}

// MarshalText implements encoding.TextMarshaler using the text form.
func (s SID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (s *SID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*s = SID{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal SID: %w", err)
	}
	*s = parsed
	return nil
}
