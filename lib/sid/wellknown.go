// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sid

import "sort"

// Fixed identifiers shared by every Windows host.
var (
	Null                      = MustParse("S-1-0-0")
	Everyone                  = MustParse("S-1-1-0")
	Local                     = MustParse("S-1-2-0")
	CreatorOwner              = MustParse("S-1-3-0")
	CreatorGroup              = MustParse("S-1-3-1")
	Network                   = MustParse("S-1-5-2")
	Batch                     = MustParse("S-1-5-3")
	Interactive               = MustParse("S-1-5-4")
	Service                   = MustParse("S-1-5-6")
	Anonymous                 = MustParse("S-1-5-7")
	AuthenticatedUsers        = MustParse("S-1-5-11")
	LocalSystem               = MustParse("S-1-5-18")
	LocalService              = MustParse("S-1-5-19")
	NetworkService            = MustParse("S-1-5-20")
	BuiltinDomain             = MustParse("S-1-5-32")
	BuiltinAdministrators     = MustParse("S-1-5-32-544")
	BuiltinUsers              = MustParse("S-1-5-32-545")
	BuiltinGuests             = MustParse("S-1-5-32-546")
	BuiltinPowerUsers         = MustParse("S-1-5-32-547")
	BuiltinBackupOperators    = MustParse("S-1-5-32-551")
	BuiltinRemoteDesktopUsers = MustParse("S-1-5-32-555")
	BuiltinIUsers             = MustParse("S-1-5-32-568")
	MandatoryLowLevel         = MustParse("S-1-16-4096")
	MandatoryMediumLevel      = MustParse("S-1-16-8192")
	MandatoryHighLevel        = MustParse("S-1-16-12288")
	MandatorySystemLevel      = MustParse("S-1-16-16384")
)

// wellKnownNames maps SID keys to the English display name Windows
// reports for them. Names of BUILTIN aliases are given without the
// "BUILTIN\" qualifier.
var wellKnownNames = map[string]string{
	Null.Key():                      "NULL SID",
	Everyone.Key():                  "Everyone",
	Local.Key():                     "LOCAL",
	CreatorOwner.Key():              "CREATOR OWNER",
	CreatorGroup.Key():              "CREATOR GROUP",
	Network.Key():                   "NETWORK",
	Batch.Key():                     "BATCH",
	Interactive.Key():               "INTERACTIVE",
	Service.Key():                   "SERVICE",
	Anonymous.Key():                 "ANONYMOUS LOGON",
	AuthenticatedUsers.Key():        "Authenticated Users",
	LocalSystem.Key():               "SYSTEM",
	LocalService.Key():              "LOCAL SERVICE",
	NetworkService.Key():            "NETWORK SERVICE",
	BuiltinDomain.Key():             "BUILTIN",
	BuiltinAdministrators.Key():     "Administrators",
	BuiltinUsers.Key():              "Users",
	BuiltinGuests.Key():             "Guests",
	BuiltinPowerUsers.Key():         "Power Users",
	BuiltinBackupOperators.Key():    "Backup Operators",
	BuiltinRemoteDesktopUsers.Key(): "Remote Desktop Users",
	BuiltinIUsers.Key():             "IIS_IUSRS",
	MandatoryLowLevel.Key():         "Low Mandatory Level",
	MandatoryMediumLevel.Key():      "Medium Mandatory Level",
	MandatoryHighLevel.Key():        "High Mandatory Level",
	MandatorySystemLevel.Key():      "System Mandatory Level",
}

// WellKnownEntry pairs a fixed SID with its English display name.
type WellKnownEntry struct {
	SID  SID    `json:"sid"`
	Name string `json:"name"`
}

// WellKnownName returns the English display name of a fixed identifier.
// Localized hosts may report a different name through account lookup;
// the SID is what stays constant.
func WellKnownName(s SID) (string, bool) {
	name, ok := wellKnownNames[s.Key()]
	return name, ok
}

// IsWellKnown reports whether s is in the static well-known table.
func IsWellKnown(s SID) bool {
	_, ok := wellKnownNames[s.Key()]
	return ok
}

// WellKnown returns the static table sorted by authority, then by
// sub-authorities.
func WellKnown() []WellKnownEntry {
	entries := make([]WellKnownEntry, 0, len(wellKnownNames))
	for key, name := range wellKnownNames {
		entries = append(entries, WellKnownEntry{SID: SID{raw: key}, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i].SID, entries[j].SID)
	})
	return entries
}

// less orders SIDs numerically so that S-1-5-32-544 sorts before
// S-1-5-32-1000.
func less(a, b SID) bool {
	if a.Authority() != b.Authority() {
		return a.Authority() < b.Authority()
	}
	aSub, bSub := a.SubAuthorities(), b.SubAuthorities()
	for index := 0; index < len(aSub) && index < len(bSub); index++ {
		if aSub[index] != bSub[index] {
			return aSub[index] < bSub[index]
		}
	}
	return len(aSub) < len(bSub)
}
