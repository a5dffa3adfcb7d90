// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import "fmt"

// Kind classifies what sort of principal a SID denotes. The numeric
// values are the platform's SID_NAME_USE values and must not be
// reordered.
type Kind uint32

const (
	KindUser           Kind = 1
	KindGroup          Kind = 2
	KindDomain         Kind = 3
	KindAlias          Kind = 4
	KindWellKnownGroup Kind = 5
	KindDeletedAccount Kind = 6
	KindInvalid        Kind = 7
	KindUnknown        Kind = 8
	KindComputer       Kind = 9
	KindLabel          Kind = 10
	KindLogonSession   Kind = 11
)

var kindNames = map[Kind]string{
	KindUser:           "user",
	KindGroup:          "group",
	KindDomain:         "domain",
	KindAlias:          "alias",
	KindWellKnownGroup: "well_known_group",
	KindDeletedAccount: "deleted_account",
	KindInvalid:        "invalid",
	KindUnknown:        "unknown",
	KindComputer:       "computer",
	KindLabel:          "label",
	KindLogonSession:   "logon_session",
}

// KindFromUse converts a raw SID_NAME_USE value reported by the
// platform. Values outside the known set map to KindUnknown.
func KindFromUse(use uint32) Kind {
	kind := Kind(use)
	if _, known := kindNames[kind]; !known {
		return KindUnknown
	}
	return kind
}

// ParseKind parses the name produced by Kind.String.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown principal kind %q", name)
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// IsGroup reports whether the kind can have members.
func (k Kind) IsGroup() bool {
	return k == KindGroup || k == KindAlias || k == KindWellKnownGroup
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("cannot marshal principal kind %d", uint32(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(data []byte) error {
	parsed, err := ParseKind(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
