// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/ntaccount/lib/sid"
)

// Record is the serialized form of an Identity. It uses json tags so
// the same struct serves CLI JSON output and CBOR identity-set files.
// FullName is derived and ignored when decoding.
type Record struct {
	Domain   string  `json:"domain"`
	Name     string  `json:"name"`
	FullName string  `json:"full_name"`
	SID      sid.SID `json:"sid"`
	Kind     Kind    `json:"kind"`
}

// Record returns the serialized form of i.
func (i Identity) Record() Record {
	return Record{
		Domain:   i.domain,
		Name:     i.name,
		FullName: i.FullName(),
		SID:      i.sid,
		Kind:     i.kind,
	}
}

// Identity validates the record and converts it back to an Identity.
func (r Record) Identity() (Identity, error) {
	return New(r.Domain, r.Name, r.SID, r.Kind)
}

// MarshalJSON encodes the identity as its Record.
func (i Identity) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(i.Record())
}

// UnmarshalJSON decodes a Record and validates it. JSON null leaves
// the zero value.
func (i *Identity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = Identity{}
		return nil
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("unmarshal identity: %w", err)
	}
	decoded, err := record.Identity()
	if err != nil {
		return fmt.Errorf("unmarshal identity: %w", err)
	}
	*i = decoded
	return nil
}
