// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the ntaccount command tree.
package commands

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/version"
)

// Root builds and returns the complete ntaccount command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "ntaccount",
		Description: `ntaccount: resolve Windows account names to security identities.

Account names are ambiguous (case, domain qualification, aliasing);
security identifiers are not. ntaccount maps names such as
"Administrators" or "CORP\jsmith" to their domain, bare name, SID and
principal kind, compares principals by SID, and persists resolved sets,
optionally sealed with age.

Exit status: 0 success, 1 a name was not found (or compared names
differ), 2 any other error.`,
		Subcommands: []*cli.Command{
			resolveCommand(),
			compareCommand(),
			exportCommand(),
			inspectCommand(),
			wellKnownCommand(),
			keygenCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Args:    cli.NoArgs,
				Run: func(invocation *cli.Invocation) error {
					return printVersion(invocation.Stdout)
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Resolve a local group and a domain user",
				Command:     `ntaccount resolve Administrators 'CORP\jsmith'`,
			},
			{
				Description: "Check that two spellings denote the same principal",
				Command:     `ntaccount compare 'BUILTIN\Administrators' administrators`,
			},
			{
				Description: "Resolve against a domain controller and save the result",
				Command:     `ntaccount export --system DC01 --output admins.cbor 'CORP\Domain Admins'`,
			},
			{
				Description: "Check a saved snapshot against its recorded digest",
				Command:     "ntaccount inspect --expect-digest 3f2a... admins.cbor",
			},
		},
	}
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "ntaccount %s\n", version.Full())
	return err
}
