// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package account

import (
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/ntaccount/lib/principal"
	"github.com/bureau-foundation/ntaccount/lib/sid"
)

func TestNative_Everyone(t *testing.T) {
	identity, found, err := New(Config{}).Resolve("Everyone")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !found {
		t.Fatal("Everyone not found")
	}
	if identity.Domain() != "" {
		t.Errorf("Domain() = %q, want empty", identity.Domain())
	}
	if identity.Kind() != principal.KindWellKnownGroup {
		t.Errorf("Kind() = %s, want well_known_group", identity.Kind())
	}
	if identity.FullName() != "Everyone" {
		t.Errorf("FullName() = %q, want Everyone", identity.FullName())
	}
	if !identity.SID().Equal(sid.Everyone) {
		t.Errorf("SID() = %s, want S-1-1-0", identity.SID())
	}
}

func TestNative_NotFound(t *testing.T) {
	_, found, err := New(Config{}).Resolve("NoSuchAccount_12345_xyz")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if found {
		t.Error("found = true for NoSuchAccount_12345_xyz")
	}
}

func TestNative_BuiltinAdministrators(t *testing.T) {
	resolver := New(Config{})
	identity, found, err := resolver.Resolve(`BUILTIN\Administrators`)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !found {
		t.Fatal(`BUILTIN\Administrators not found`)
	}
	if identity.Name() != "Administrators" {
		t.Errorf("Name() = %q, want Administrators", identity.Name())
	}
	if strings.Contains(identity.Name(), `\`) {
		t.Errorf("Name() %q contains a separator", identity.Name())
	}
	if !identity.SID().Equal(sid.BuiltinAdministrators) {
		t.Errorf("SID() = %s, want S-1-5-32-544", identity.SID())
	}

	lower, found, err := resolver.Resolve(`builtin\administrators`)
	if err != nil || !found {
		t.Fatalf("Resolve lower case: found=%v err=%v", found, err)
	}
	if !lower.Equal(identity) {
		t.Errorf("case variants resolved to %s and %s", lower.SID(), identity.SID())
	}

	again, found, err := resolver.Resolve(identity.FullName())
	if err != nil || !found {
		t.Fatalf("Resolve(%q): found=%v err=%v", identity.FullName(), found, err)
	}
	if !again.Equal(identity) {
		t.Errorf("re-resolving FullName gave %s, want %s", again.SID(), identity.SID())
	}
}

func TestNative_EmptyName(t *testing.T) {
	_, _, err := New(Config{}).Resolve("")
	var platformError *PlatformError
	if !errors.As(err, &platformError) {
		t.Fatalf("error = %v, want *PlatformError", err)
	}
}
