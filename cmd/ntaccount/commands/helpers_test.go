// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/account"
	"github.com/bureau-foundation/ntaccount/lib/principal"
	"github.com/bureau-foundation/ntaccount/lib/sid"
)

// stubAccount is one principal known to stubPlatform.
type stubAccount struct {
	identifier sid.SID
	domain     string
	display    string
	use        uint32
}

// stubPlatform answers account lookups from a table keyed by lowercase
// name. When failWith is set every lookup fails with it.
type stubPlatform struct {
	accounts map[string]stubAccount
	failWith error
}

func newStubPlatform() *stubPlatform {
	administrators := stubAccount{
		identifier: sid.BuiltinAdministrators,
		domain:     "BUILTIN",
		display:    `BUILTIN\Administrators`,
		use:        4,
	}
	return &stubPlatform{accounts: map[string]stubAccount{
		"everyone":               {identifier: sid.Everyone, display: "Everyone", use: 5},
		"administrators":         administrators,
		`builtin\administrators`: administrators,
		`corp\jsmith`: {
			identifier: sid.MustParse("S-1-5-21-1004336348-1177238915-682003330-1013"),
			domain:     "CORP",
			display:    `CORP\JSmith`,
			use:        1,
		},
	}}
}

func (p *stubPlatform) LookupAccountName(systemName, accountName string, buffers *account.LookupBuffers) error {
	if p.failWith != nil {
		return p.failWith
	}
	entry, ok := p.accounts[strings.ToLower(accountName)]
	if !ok {
		return account.StatusNoneMapped
	}
	raw := entry.identifier.Bytes()
	domain := utf16.Encode([]rune(entry.domain))
	if len(buffers.SID) < len(raw) || int(buffers.DomainSize) <= len(domain) || len(buffers.Domain) <= len(domain) {
		buffers.SIDSize = uint32(len(raw))
		buffers.DomainSize = uint32(len(domain) + 1)
		return account.StatusInsufficientBuffer
	}
	copy(buffers.SID, raw)
	buffers.SIDSize = uint32(len(raw))
	copy(buffers.Domain, domain)
	buffers.Domain[len(domain)] = 0
	buffers.DomainSize = uint32(len(domain))
	buffers.Use = entry.use
	return nil
}

func (p *stubPlatform) SIDToString(raw []byte) (account.NativeString, error) {
	identifier, err := sid.FromBytes(raw)
	if err != nil {
		return nil, account.StatusInvalidParameter
	}
	return stubString(identifier.String()), nil
}

func (p *stubPlatform) TranslateSID(systemName string, raw []byte) (string, error) {
	for _, entry := range p.accounts {
		if string(entry.identifier.Bytes()) == string(raw) {
			return entry.display, nil
		}
	}
	return "", account.StatusNoneMapped
}

type stubString string

func (s stubString) String() string { return string(s) }
func (s stubString) Release() {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStubResolver(platform *stubPlatform) *account.Resolver {
	return account.New(account.Config{
		Platform: platform,
		Logger:   discardLogger(),
	})
}

func textOutput(w io.Writer) cli.Output { return cli.Output{Writer: w} }

func jsonOutput(w io.Writer) cli.Output { return cli.Output{Writer: w, JSON: true} }

// readExportedSet reads a plain identity set written by export.
func readExportedSet(t *testing.T, path string) principal.Set {
	t.Helper()
	data, err := principal.ReadSetData(path, nil)
	if err != nil {
		t.Fatalf("ReadSetData: %v", err)
	}
	set, err := principal.UnmarshalSet(data)
	if err != nil {
		t.Fatalf("UnmarshalSet: %v", err)
	}
	return set
}
