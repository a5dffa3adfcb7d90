// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/account"
	"github.com/bureau-foundation/ntaccount/lib/principal"
)

type compareResult struct {
	First  *principal.Identity `json:"first"`
	Second *principal.Identity `json:"second"`
	Equal  bool                `json:"equal"`
}

func compareCommand() *cli.Command {
	var params SessionFlags

	return &cli.Command{
		Name:    "compare",
		Summary: "Check whether two names denote the same principal",
		Description: `Resolve both names and compare their SIDs. Names that differ only in
case or domain qualification compare equal when they map to the same
principal.

Exit status is 0 when both names resolve to the same SID and 1 when
they differ or either name is not found.`,
		Usage: "ntaccount compare [flags] NAME NAME",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("compare", &params)
		},
		JSON: true,
		Args: cli.ExactArgs(2, "NAME"),
		Run: func(invocation *cli.Invocation) error {
			session, err := openSession(params, "compare")
			if err != nil {
				return err
			}
			return runCompare(session.resolver, invocation.Args[0], invocation.Args[1], invocation.Output())
		},
	}
}

func runCompare(resolver *account.Resolver, firstName, secondName string, output cli.Output) error {
	var result compareResult
	for _, target := range []struct {
		name     string
		identity **principal.Identity
	}{
		{firstName, &result.First},
		{secondName, &result.Second},
	} {
		identity, found, err := resolver.Resolve(target.name)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", target.name, err)
		}
		if found {
			*target.identity = &identity
		}
	}
	result.Equal = result.First != nil && result.Second != nil && result.First.Equal(*result.Second)

	err := output.Emit(result, func(w io.Writer) error {
		var err error
		switch {
		case result.First == nil:
			_, err = fmt.Fprintf(w, "%s: not found\n", firstName)
		case result.Second == nil:
			_, err = fmt.Fprintf(w, "%s: not found\n", secondName)
		case result.Equal:
			_, err = fmt.Fprintf(w, "equal: %s and %s are %s\n", result.First.FullName(), result.Second.FullName(), result.First.SID())
		default:
			_, err = fmt.Fprintf(w, "different: %s is %s, %s is %s\n",
				result.First.FullName(), result.First.SID(), result.Second.FullName(), result.Second.SID())
		}
		return err
	})
	if err != nil {
		return err
	}

	if !result.Equal {
		return &cli.ExitError{Code: cli.ExitNegative}
	}
	return nil
}
