// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "ntaccount",
		Subcommands: []*Command{
			{
				Name: "resolve",
				Run: func(*Invocation) error {
					called = "resolve"
					return nil
				},
			},
			{
				Name: "compare",
				Run: func(*Invocation) error {
					called = "compare"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"compare"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "compare" {
		t.Errorf("dispatched to %q, want %q", called, "compare")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var system string
	var names []string

	command := &Command{
		Name: "resolve",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
			flagSet.StringVar(&system, "system", "", "remote system")
			return flagSet
		},
		Run: func(invocation *Invocation) error {
			names = invocation.Args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--system", "DC01", `BUILTIN\Administrators`, "Everyone"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if system != "DC01" {
		t.Errorf("system = %q, want DC01", system)
	}
	if len(names) != 2 || names[0] != `BUILTIN\Administrators` || names[1] != "Everyone" {
		t.Errorf("args = %v", names)
	}
}

func TestCommand_Execute_Invocation(t *testing.T) {
	type contextKey struct{}
	ctx := context.WithValue(context.Background(), contextKey{}, "marker")

	var stdout, stderr bytes.Buffer
	var got *Invocation
	leaf := &Command{
		Name: "wellknown",
		JSON: true,
		Run: func(invocation *Invocation) error {
			got = invocation
			return nil
		},
	}
	root := &Command{Name: "ntaccount", Stdout: &stdout, Stderr: &stderr, Subcommands: []*Command{leaf}}

	if err := root.Execute(ctx, []string{"wellknown", "--json"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got == nil {
		t.Fatal("Run was not called")
	}
	if got.Context.Value(contextKey{}) != "marker" {
		t.Error("Invocation.Context is not the context passed to Execute")
	}
	if got.Stdout != &stdout || got.Stderr != &stderr {
		t.Error("Invocation writers were not inherited from the root")
	}
	if !got.JSON || !got.Output().JSON {
		t.Error("--json did not reach the invocation")
	}

	got = nil
	if err := root.Execute(ctx, []string{"wellknown"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.JSON {
		t.Error("JSON set without --json")
	}
}

func TestCommand_Execute_JSONFlagJoinsDeclaredFlags(t *testing.T) {
	var system string
	var outputJSON bool
	command := &Command{
		Name: "resolve",
		JSON: true,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
			flagSet.StringVar(&system, "system", "", "remote system")
			return flagSet
		},
		Run: func(invocation *Invocation) error {
			outputJSON = invocation.JSON
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--json", "--system", "DC01", "Everyone"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !outputJSON || system != "DC01" {
		t.Errorf("json = %v, system = %q; want true, DC01", outputJSON, system)
	}

	// A command that does not declare JSON rejects the flag.
	plain := &Command{
		Name: "keygen",
		Flags: func() *pflag.FlagSet {
			return pflag.NewFlagSet("keygen", pflag.ContinueOnError)
		},
		Run: func(*Invocation) error { return nil },
	}
	if err := plain.Execute(context.Background(), []string{"--json"}); err == nil {
		t.Error("--json accepted by a command without JSON output")
	}
}

func TestCommand_Execute_ArgsValidation(t *testing.T) {
	tests := []struct {
		name      string
		validator func([]string) error
		args      []string
		wantError string
	}{
		{"no args accepted", NoArgs, nil, ""},
		{"no args rejected", NoArgs, []string{"extra"}, `unexpected argument "extra"`},
		{"exact one missing", ExactArgs(1, "FILE"), nil, "FILE argument required"},
		{"exact one extra", ExactArgs(1, "FILE"), []string{"a", "b"}, `unexpected argument "b"`},
		{"exact two short", ExactArgs(2, "NAME"), []string{"a"}, "2 NAME arguments required, got 1"},
		{"exact two", ExactArgs(2, "NAME"), []string{"a", "b"}, ""},
		{"min one missing", MinArgs(1, "NAME"), nil, "at least one NAME argument required"},
		{"min one", MinArgs(1, "NAME"), []string{"a", "b", "c"}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ran := false
			command := &Command{
				Name: "compare",
				Args: test.validator,
				Run: func(*Invocation) error {
					ran = true
					return nil
				},
			}
			err := command.Execute(context.Background(), test.args)
			if test.wantError == "" {
				if err != nil || !ran {
					t.Errorf("Execute() = %v, ran = %v; want success", err, ran)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.wantError) {
				t.Errorf("Execute() error = %v, want %q", err, test.wantError)
			}
			if err != nil && !strings.Contains(err.Error(), "Run 'compare --help' for usage.") {
				t.Errorf("error %q does not point at --help", err)
			}
			if ran {
				t.Error("Run called despite invalid arguments")
			}
		})
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "resolve",
		JSON: true,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
			flagSet.String("system", "", "remote system")
			return flagSet
		},
		Run: func(*Invocation) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--sytem", "DC01"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --system?") {
		t.Errorf("error %q does not suggest --system", err)
	}
	if !strings.Contains(err.Error(), "Run 'resolve --help' for usage.") {
		t.Errorf("error %q does not point at --help", err)
	}

	err = command.Execute(context.Background(), []string{"--jsn"})
	if err == nil || !strings.Contains(err.Error(), "did you mean --json?") {
		t.Errorf("error = %v, want a --json suggestion", err)
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name:   "ntaccount",
		Stderr: io.Discard,
		Subcommands: []*Command{
			{Name: "resolve", Run: func(*Invocation) error { return nil }},
			{Name: "inspect", Run: func(*Invocation) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"reslove"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "resolve"?`) {
		t.Errorf("error %q does not suggest resolve", err)
	}

	err = root.Execute(context.Background(), []string{"completely-different"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error %v should not carry a suggestion", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:        "ntaccount",
		Stderr:      &help,
		Subcommands: []*Command{{Name: "resolve", Summary: "Resolve names"}},
	}

	err := root.Execute(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %v, want subcommand required", err)
	}
	if !strings.Contains(help.String(), "resolve") {
		t.Errorf("help output %q does not list resolve", help.String())
	}
}

func TestCommand_Execute_HelpGoesToInheritedStderr(t *testing.T) {
	var stdout, help bytes.Buffer
	root := &Command{
		Name:   "ntaccount",
		Stdout: &stdout,
		Stderr: &help,
		Subcommands: []*Command{
			{
				Name:        "export",
				Description: "Resolve names and write an identity set.",
				Usage:       "ntaccount export [flags] NAME...",
				Examples: []Example{
					{Description: "Export the local administrators", Command: `ntaccount export BUILTIN\Administrators`},
				},
				Flags: func() *pflag.FlagSet {
					flagSet := pflag.NewFlagSet("export", pflag.ContinueOnError)
					flagSet.String("output", "", "identity set file")
					return flagSet
				},
				Run: func(*Invocation) error { return errors.New("should not run") },
			},
		},
	}

	for _, args := range [][]string{
		{"export", "--help"},
		{"export", "--output", "set.cbor", "Everyone", "--help"},
	} {
		help.Reset()
		if err := root.Execute(context.Background(), args); err != nil {
			t.Fatalf("Execute(%q) error: %v", args, err)
		}
		output := help.String()
		for _, want := range []string{
			"Resolve names and write an identity set.",
			"Usage:\n  ntaccount export [flags] NAME...",
			"# Export the local administrators",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Execute(%q) help output missing %q:\n%s", args, want, output)
			}
		}
	}
	if stdout.Len() != 0 {
		t.Errorf("help leaked to stdout: %q", stdout.String())
	}
}

func TestCommand_PrintHelp_Flags(t *testing.T) {
	var params struct {
		System string `flag:"system" desc:"remote system to resolve against"`
	}
	command := &Command{
		Name:  "resolve",
		JSON:  true,
		Flags: func() *pflag.FlagSet { return FlagsFromParams("resolve", &params) },
	}

	var help bytes.Buffer
	command.PrintHelp(&help)
	for _, want := range []string{"--json", "output as JSON", "--system", "remote system to resolve against"} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("help output missing %q:\n%s", want, help.String())
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	var captured string
	leaf := &Command{Name: "inspect"}
	leaf.Run = func(*Invocation) error {
		captured = leaf.fullName()
		return nil
	}
	root := &Command{Name: "ntaccount", Subcommands: []*Command{leaf}}

	if err := root.Execute(context.Background(), []string{"inspect"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if captured != "ntaccount inspect" {
		t.Errorf("fullName() = %q, want %q", captured, "ntaccount inspect")
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: ExitNegative}

	var coder interface{ ExitCode() int }
	if !errors.As(err, &coder) {
		t.Fatal("ExitError does not implement ExitCode()")
	}
	if coder.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", coder.ExitCode())
	}
	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}
