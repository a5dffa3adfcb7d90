// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/ntaccount/lib/sid"
)

// DomainSeparator joins a domain and an account name in the qualified
// "DOMAIN\name" form.
const DomainSeparator = `\`

// Identity is a resolved principal. The zero value represents "no
// identity" and is what resolution returns alongside found == false.
type Identity struct {
	domain string
	name   string
	sid    sid.SID
	kind   Kind
}

// New constructs an Identity. The domain may be empty for principals
// without an authority qualifier (Everyone, CREATOR OWNER). The name
// must be the bare account name: a name that still starts with the
// domain qualifier is rejected, since it would break FullName.
func New(domain, name string, identifier sid.SID, kind Kind) (Identity, error) {
	if identifier.IsZero() {
		return Identity{}, fmt.Errorf("identity %q has no security identifier", name)
	}
	if name == "" {
		return Identity{}, fmt.Errorf("identity %s has an empty account name", identifier)
	}
	if domain != "" && HasDomainPrefix(name, domain) {
		return Identity{}, fmt.Errorf("account name %q still carries the %q domain qualifier", name, domain)
	}
	return Identity{
		domain: domain,
		name:   name,
		sid:    identifier,
		kind:   kind,
	}, nil
}

// HasDomainPrefix reports whether name begins with domain followed by
// the separator. Account and domain names are case-insensitive on the
// platform, so the match is too.
func HasDomainPrefix(name, domain string) bool {
	prefixLength := len(domain) + len(DomainSeparator)
	return len(name) >= prefixLength &&
		strings.EqualFold(name[:len(domain)], domain) &&
		name[len(domain):prefixLength] == DomainSeparator
}

// StripDomainPrefix removes a leading "domain\" qualifier from name,
// returning name unchanged when it carries no such prefix or when
// domain is empty.
func StripDomainPrefix(name, domain string) string {
	if domain == "" || !HasDomainPrefix(name, domain) {
		return name
	}
	return name[len(domain)+len(DomainSeparator):]
}

// Domain returns the authority that defines the principal, or "" for
// principals without one.
func (i Identity) Domain() string { return i.domain }

// Name returns the bare account name.
func (i Identity) Name() string { return i.name }

// SID returns the security identifier.
func (i Identity) SID() sid.SID { return i.sid }

// Kind returns the principal classification.
func (i Identity) Kind() Kind { return i.kind }

// IsZero reports whether i is the zero value.
func (i Identity) IsZero() bool { return i.sid.IsZero() }

// FullName returns "domain\name", or just the name when the domain is
// empty.
func (i Identity) FullName() string {
	if i.domain == "" {
		return i.name
	}
	return i.domain + DomainSeparator + i.name
}

// String returns FullName.
func (i Identity) String() string { return i.FullName() }

// Equal reports whether i and other are the same principal. Only the
// SIDs are compared: "corp\JSmith" and "CORP\jsmith" are equal.
func (i Identity) Equal(other Identity) bool {
	return i.sid.Equal(other.sid)
}

// Key returns a map key consistent with Equal.
func (i Identity) Key() string { return i.sid.Key() }
