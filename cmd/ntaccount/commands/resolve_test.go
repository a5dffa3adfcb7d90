// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/account"
	"github.com/bureau-foundation/ntaccount/lib/principal"
)

func TestRunResolve_Text(t *testing.T) {
	var buffer bytes.Buffer
	err := runResolve(context.Background(), newStubResolver(newStubPlatform()), 2,
		[]string{"administrators", "Everyone", `corp\JSMITH`}, textOutput(&buffer))
	if err != nil {
		t.Fatalf("runResolve: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buffer.String())
	}
	for index, want := range [][]string{
		{`BUILTIN\Administrators`, "S-1-5-32-544", "alias"},
		{"Everyone", "S-1-1-0", "well_known_group"},
		{`CORP\JSmith`, "S-1-5-21-1004336348-1177238915-682003330-1013", "user"},
	} {
		fields := strings.Fields(lines[index])
		if len(fields) != 3 {
			t.Errorf("line %d = %q, want 3 columns", index, lines[index])
			continue
		}
		for column := range want {
			if fields[column] != want[column] {
				t.Errorf("line %d column %d = %q, want %q", index, column, fields[column], want[column])
			}
		}
	}
}

func TestRunResolve_NotFoundExitsNegative(t *testing.T) {
	var buffer bytes.Buffer
	err := runResolve(context.Background(), newStubResolver(newStubPlatform()), 1,
		[]string{"Everyone", "nosuchuser"}, textOutput(&buffer))

	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.Code != cli.ExitNegative {
		t.Fatalf("runResolve error = %v, want exit code %d", err, cli.ExitNegative)
	}
	if !strings.Contains(buffer.String(), "nosuchuser") || !strings.Contains(buffer.String(), "not found") {
		t.Errorf("output does not report the missing name:\n%s", buffer.String())
	}
	if !strings.Contains(buffer.String(), "S-1-1-0") {
		t.Errorf("output lost the resolved name:\n%s", buffer.String())
	}
}

func TestRunResolve_PlatformFailure(t *testing.T) {
	platform := newStubPlatform()
	platform.failWith = account.StatusAccessDenied

	var buffer bytes.Buffer
	err := runResolve(context.Background(), newStubResolver(platform), 1,
		[]string{"Everyone"}, textOutput(&buffer))
	if err == nil {
		t.Fatal("runResolve succeeded despite a platform failure")
	}
	var exitError *cli.ExitError
	if errors.As(err, &exitError) {
		t.Fatalf("platform failure reported as exit code %d", exitError.Code)
	}
	status, ok := account.StatusOf(err)
	if !ok || status != account.StatusAccessDenied {
		t.Errorf("StatusOf = (%v, %v), want (%v, true)", status, ok, account.StatusAccessDenied)
	}
	if !strings.Contains(buffer.String(), "error") {
		t.Errorf("output does not mark the failed name:\n%s", buffer.String())
	}
}

func TestRunResolve_JSON(t *testing.T) {
	var buffer bytes.Buffer
	err := runResolve(context.Background(), newStubResolver(newStubPlatform()), 4,
		[]string{`BUILTIN\administrators`, "ghost"}, jsonOutput(&buffer))

	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.Code != cli.ExitNegative {
		t.Fatalf("runResolve error = %v, want exit code %d", err, cli.ExitNegative)
	}

	var entries []resolveEntry
	if err := json.Unmarshal(buffer.Bytes(), &entries); err != nil {
		t.Fatalf("output is not a JSON entry list: %v\n%s", err, buffer.String())
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Query != `BUILTIN\administrators` || !first.Found || first.Identity == nil {
		t.Fatalf("first entry = %+v", first)
	}
	if first.Identity.Name() != "Administrators" || first.Identity.Domain() != "BUILTIN" {
		t.Errorf("identity = %s, want BUILTIN\\Administrators", first.Identity.FullName())
	}
	if first.Identity.Kind() != principal.KindAlias {
		t.Errorf("kind = %s, want alias", first.Identity.Kind())
	}

	second := entries[1]
	if second.Query != "ghost" || second.Found || second.Identity != nil || second.Error != "" {
		t.Errorf("second entry = %+v, want an unresolved entry without error", second)
	}
}

func TestRunResolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buffer bytes.Buffer
	err := runResolve(ctx, newStubResolver(newStubPlatform()), 1,
		[]string{"Everyone"}, textOutput(&buffer))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("runResolve error = %v, want context.Canceled", err)
	}
}
