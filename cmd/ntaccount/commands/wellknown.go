// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/sid"
)

func wellKnownCommand() *cli.Command {
	return &cli.Command{
		Name:    "wellknown",
		Summary: "List the well-known SIDs ntaccount recognises",
		Description: `List the fixed, machine-independent security identifiers (Everyone,
SYSTEM, BUILTIN\Administrators, ...) together with their conventional
names. This table needs no platform calls and works on every OS.`,
		Usage: "ntaccount wellknown [flags]",
		JSON:  true,
		Args:  cli.NoArgs,
		Run: func(invocation *cli.Invocation) error {
			return runWellKnown(invocation.Output())
		},
	}
}

func runWellKnown(output cli.Output) error {
	entries := sid.WellKnown()
	return output.Emit(entries, func(w io.Writer) error {
		table := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
		fmt.Fprintf(table, "SID\tNAME\n")
		for _, entry := range entries {
			fmt.Fprintf(table, "%s\t%s\n", entry.SID, entry.Name)
		}
		return table.Flush()
	})
}
