// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"log/slog"

	"github.com/bureau-foundation/ntaccount/lib/principal"
	"github.com/bureau-foundation/ntaccount/lib/sid"
)

// DefaultDomainBufferCapacity is the domain buffer size, in UTF-16
// units, offered to the sizing probe.
const DefaultDomainBufferCapacity = 16

const (
	opValidate    = "validate account name"
	opProbe       = "probe account name"
	opLookup      = "look up account name"
	opSIDToString = "convert SID to string"
)

// Config configures a Resolver.
type Config struct {
	// Platform is the native account service. Nil selects
	// NativePlatform().
	Platform Platform

	// SystemName is the remote system to resolve against. Empty means
	// the local system and the domains it trusts.
	SystemName string

	// DomainBufferCapacity is the domain buffer offered to the sizing
	// probe. Zero selects DefaultDomainBufferCapacity.
	DomainBufferCapacity int

	// Logger receives Debug records for each resolution. Nil selects
	// slog.Default().
	Logger *slog.Logger
}

// Resolver maps account names to identities. It has no mutable state;
// every call allocates its own buffers.
type Resolver struct {
	platform       Platform
	systemName     string
	domainCapacity int
	logger         *slog.Logger
}

// New creates a Resolver.
func New(config Config) *Resolver {
	if config.Platform == nil {
		config.Platform = NativePlatform()
	}
	if config.DomainBufferCapacity <= 0 {
		config.DomainBufferCapacity = DefaultDomainBufferCapacity
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Resolver{
		platform:       config.Platform,
		systemName:     config.SystemName,
		domainCapacity: config.DomainBufferCapacity,
		logger:         config.Logger,
	}
}

// SystemName returns the system names are resolved against.
func (r *Resolver) SystemName() string { return r.systemName }

// Resolve maps accountName, bare or "DOMAIN\name", to an identity.
// Matching is case-insensitive and follows the platform's
// qualification rules.
//
// found is false with a nil error when the name does not map to any
// principal. Every other failure is a *PlatformError or
// *TranslationError. An empty name is rejected with
// ERROR_INVALID_PARAMETER without calling the platform.
func (r *Resolver) Resolve(accountName string) (identity principal.Identity, found bool, err error) {
	if accountName == "" {
		return principal.Identity{}, false, &PlatformError{Op: opValidate, Status: StatusInvalidParameter}
	}

	buffers, found, err := r.lookupSID(accountName)
	if err != nil || !found {
		return principal.Identity{}, false, err
	}

	identity, err = r.identityFromLookup(buffers)
	if err != nil {
		return principal.Identity{}, false, err
	}
	return identity, true, nil
}

// lookupSID runs the two-phase sizing protocol: a probe that must fail
// with a resize status, then one call with buffers of the reported
// size. Not found is reported as (nil, false, nil).
func (r *Resolver) lookupSID(accountName string) (*LookupBuffers, bool, error) {
	buffers := newLookupBuffers(r.domainCapacity)

	err := r.platform.LookupAccountName(r.systemName, accountName, buffers)
	if err == nil {
		return nil, false, &PlatformError{Op: opProbe, Status: StatusSuccess}
	}
	status := statusFromError(err)
	switch {
	case status.needsResize():
	case status == StatusNoneMapped:
		r.logger.Debug("account name not mapped", "account", accountName)
		return nil, false, nil
	default:
		return nil, false, &PlatformError{Op: opProbe, Status: status, Err: err}
	}

	r.logger.Debug("sizing account lookup",
		"account", accountName,
		"probe_status", status.String(),
		"sid_size", buffers.SIDSize,
		"domain_size", buffers.DomainSize,
	)

	buffers.resize()
	if err := r.platform.LookupAccountName(r.systemName, accountName, buffers); err != nil {
		return nil, false, &PlatformError{Op: opLookup, Status: statusFromError(err), Err: err}
	}
	return buffers, true, nil
}

// identityFromLookup converts a successful lookup into an Identity.
// The native string form of the SID is released on every return path.
func (r *Resolver) identityFromLookup(buffers *LookupBuffers) (principal.Identity, error) {
	native, err := r.platform.SIDToString(buffers.SID)
	if err != nil {
		return principal.Identity{}, &PlatformError{Op: opSIDToString, Status: statusFromError(err), Err: err}
	}
	defer native.Release()
	sidText := native.String()

	identifier, err := sid.FromBytes(buffers.SID)
	if err != nil {
		return principal.Identity{}, &TranslationError{SID: sidText, Err: err}
	}
	displayName, err := r.platform.TranslateSID(r.systemName, identifier.Bytes())
	if err != nil {
		return principal.Identity{}, &TranslationError{SID: sidText, Err: err}
	}

	domain := buffers.DomainName()
	kind := principal.KindFromUse(buffers.Use)
	identity, err := principal.New(domain, principal.StripDomainPrefix(displayName, domain), identifier, kind)
	if err != nil {
		return principal.Identity{}, &TranslationError{SID: sidText, Err: err}
	}

	attributes := []any{
		"sid", sidText,
		"domain", domain,
		"name", identity.Name(),
		"kind", kind.String(),
	}
	if rid, ok := identifier.RID(); ok {
		attributes = append(attributes, "rid", rid)
	}
	r.logger.Debug("resolved account name", attributes...)
	return identity, nil
}
