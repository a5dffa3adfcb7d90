// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package principal defines the resolved identity of a Windows security
// principal: a user, group, alias, computer or well-known group.
//
// # Identity
//
// An [Identity] pairs the human-readable account name with the security
// identifier the platform assigned to it:
//
//	CORP\jsmith  ->  domain "CORP", name "jsmith", S-1-5-21-...-1013, user
//	Everyone     ->  domain "",     name "Everyone", S-1-1-0, well_known_group
//
// Account names are ambiguous (case, domain qualification, aliasing);
// the SID is not. Two identities are equal exactly when their SIDs are
// equal, so [Identity.Equal] and [Identity.Key] are the only correct
// basis for comparing, deduplicating or caching principals.
//
// Identities are immutable. [New] enforces the invariants the resolver
// relies on: a non-zero SID, and a bare name that does not repeat the
// "domain\" qualifier. [Identity.FullName] derives the qualified form.
//
// # Kind
//
// [Kind] is the platform's SID_NAME_USE classification as a closed set.
// Values the platform may add in the future collapse to [KindUnknown].
//
// # Persistence
//
// [Record] is the serialized form of an Identity, shared by CLI JSON
// output and CBOR identity-set files. [WriteSet] stores a versioned
// [Set] of records through lib/codec and [WriteSealedSet] seals it with
// age from lib/sealed. [ReadSetData] returns the stored encoding of
// either kind and [UnmarshalSet] decodes it. [Set.Digest] fingerprints
// a set independently of how it is stored, and [Set.Contains] tests
// membership by SID.
package principal
