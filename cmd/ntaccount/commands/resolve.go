// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/account"
	"github.com/bureau-foundation/ntaccount/lib/principal"
)

// resolveEntry is one line of "ntaccount resolve" output.
type resolveEntry struct {
	Query    string              `json:"query"`
	Found    bool                `json:"found"`
	Identity *principal.Identity `json:"identity,omitempty"`
	Error    string              `json:"error,omitempty"`
}

func resolveCommand() *cli.Command {
	var params SessionFlags

	return &cli.Command{
		Name:    "resolve",
		Summary: "Resolve account names to security identifiers",
		Description: `Resolve each NAME to its domain, bare account name, SID and principal
kind. Names may be bare ("Administrators") or domain-qualified
("CORP\jsmith"); matching is case-insensitive.

Several names are resolved concurrently (lookup.workers, --workers).
Output keeps the order of the arguments.`,
		Usage: "ntaccount resolve [flags] NAME...",
		Examples: []cli.Example{
			{
				Description: "Resolve a well-known group",
				Command:     "ntaccount resolve Everyone",
			},
			{
				Description: "Resolve on a remote system, as JSON",
				Command:     `ntaccount resolve --system DC01 --json 'CORP\jsmith'`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("resolve", &params)
		},
		JSON: true,
		Args: cli.MinArgs(1, "NAME"),
		Run: func(invocation *cli.Invocation) error {
			session, err := openSession(params, "resolve")
			if err != nil {
				return err
			}
			return runResolve(invocation.Context, session.resolver, session.config.Lookup.Workers,
				invocation.Args, invocation.Output())
		},
	}
}

// runResolve resolves names and writes one entry per name. Platform
// failures are joined into the returned error after the output is
// written; names that were not found produce exit code 1.
func runResolve(ctx context.Context, resolver *account.Resolver, workers int, names []string, output cli.Output) error {
	results := resolver.ResolveAll(ctx, names, workers)

	entries := make([]resolveEntry, 0, len(results))
	var failures []error
	notFound := 0
	for _, result := range results {
		entry := resolveEntry{Query: result.Name, Found: result.Found}
		switch {
		case result.Err != nil:
			entry.Error = result.Err.Error()
			failures = append(failures, fmt.Errorf("resolving %q: %w", result.Name, result.Err))
		case !result.Found:
			notFound++
		default:
			identity := result.Identity
			entry.Identity = &identity
		}
		entries = append(entries, entry)
	}

	err := output.Emit(entries, func(w io.Writer) error {
		return writeResolveTable(w, entries)
	})
	if err != nil {
		return err
	}

	if len(failures) > 0 {
		return errors.Join(failures...)
	}
	if notFound > 0 {
		return &cli.ExitError{Code: cli.ExitNegative}
	}
	return nil
}

func writeResolveTable(w io.Writer, entries []resolveEntry) error {
	table := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for _, entry := range entries {
		switch {
		case entry.Identity != nil:
			fmt.Fprintf(table, "%s\t%s\t%s\n", entry.Identity.FullName(), entry.Identity.SID(), entry.Identity.Kind())
		case entry.Error != "":
			fmt.Fprintf(table, "%s\t-\terror\n", entry.Query)
		default:
			fmt.Fprintf(table, "%s\t-\tnot found\n", entry.Query)
		}
	}
	return table.Flush()
}
