// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/account"
	"github.com/bureau-foundation/ntaccount/lib/binhash"
	"github.com/bureau-foundation/ntaccount/lib/codec"
	"github.com/bureau-foundation/ntaccount/lib/principal"
	"github.com/bureau-foundation/ntaccount/lib/sealed"
)

type inspectParams struct {
	SessionFlags
	Diagnostic   bool     `flag:"diag" desc:"print CBOR diagnostic notation instead of decoding"`
	KeyFile      string   `flag:"identity,i" desc:"age key file used to open a sealed identity set"`
	ExpectDigest string   `flag:"expect-digest" desc:"fail unless the set has this digest"`
	Contains     []string `flag:"contains" desc:"resolve NAME and fail unless the set holds that principal (repeatable)"`
}

// inspectOutput is the JSON form of "ntaccount inspect".
type inspectOutput struct {
	Digest    string `json:"digest"`
	Canonical bool   `json:"canonical"`
	principal.Set
	Membership []membership `json:"membership,omitempty"`
}

// membership is the answer to one --contains query.
type membership struct {
	Query    string              `json:"query"`
	Identity *principal.Identity `json:"identity,omitempty"`
	Present  bool                `json:"present"`
}

func inspectCommand() *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Print the contents of an identity set file",
		Description: `Read an identity set written by "ntaccount export", validate every
record, and print it with its digest. Sealed sets need --identity
pointing at an age key file holding a matching private key. A file
whose bytes are not exactly what export would write is reported as
non-canonical.

With --expect-digest the command fails unless the set's digest matches,
which checks that a snapshot has not changed since it was exported.

With --contains each NAME is resolved now (using the same --config,
--system and --workers settings as resolve) and looked up in the set by
SID. The exit status is 1 when any of them is absent.

With --diag the CBOR is printed in RFC 8949 diagnostic notation without
interpretation, which also works on files this version cannot decode.`,
		Usage: "ntaccount inspect [flags] FILE",
		Examples: []cli.Example{
			{
				Description: "Open a sealed export",
				Command:     "ntaccount inspect -i ~/.config/ntaccount/key.txt admins.age",
			},
			{
				Description: "Check that a snapshot still includes a user",
				Command:     `ntaccount inspect --contains 'CORP\jsmith' admins.cbor`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("inspect", &params)
		},
		JSON: true,
		Args: cli.ExactArgs(1, "FILE"),
		Run: func(invocation *cli.Invocation) error {
			var resolver *account.Resolver
			if len(params.Contains) > 0 {
				session, err := openSession(params.SessionFlags, "inspect")
				if err != nil {
					return err
				}
				resolver = session.resolver
			}
			return runInspect(invocation.Args[0], &params, resolver, invocation.Output())
		},
	}
}

// runInspect prints the identity set at path. resolver is only used for
// --contains queries and may be nil without them.
func runInspect(path string, params *inspectParams, resolver *account.Resolver, output cli.Output) error {
	var privateKeys []string
	if params.KeyFile != "" {
		keys, err := sealed.ReadKeyFile(params.KeyFile)
		if err != nil {
			return err
		}
		privateKeys = keys
	}

	data, err := principal.ReadSetData(path, privateKeys)
	if err != nil {
		return err
	}

	if params.Diagnostic {
		notation, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnosing %s: %w", path, err)
		}
		_, err = fmt.Fprintln(output.Writer, notation)
		return err
	}

	set, err := principal.UnmarshalSet(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	identities, err := set.Decode()
	if err != nil {
		return fmt.Errorf("identity set %s: %w", path, err)
	}
	digest, err := set.Digest()
	if err != nil {
		return err
	}
	if params.ExpectDigest != "" {
		expected, err := binhash.ParseDigest(params.ExpectDigest)
		if err != nil {
			return fmt.Errorf("--expect-digest: %w", err)
		}
		if expected != digest {
			return fmt.Errorf("identity set %s has digest %s, expected %s", path, digest, expected)
		}
	}
	canonical, err := codec.Canonical(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	queries, err := checkMembership(resolver, set, params.Contains)
	if err != nil {
		return err
	}

	result := inspectOutput{Digest: digest.String(), Canonical: canonical, Set: set, Membership: queries}
	err = output.Emit(result, func(w io.Writer) error {
		return writeInspectText(w, result, identities)
	})
	if err != nil {
		return err
	}

	for _, query := range queries {
		if !query.Present {
			return &cli.ExitError{Code: cli.ExitNegative}
		}
	}
	return nil
}

// checkMembership resolves each name and reports whether set holds the
// resulting principal. A name that does not resolve is absent.
func checkMembership(resolver *account.Resolver, set principal.Set, names []string) ([]membership, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if resolver == nil {
		return nil, fmt.Errorf("--contains needs a resolver")
	}
	queries := make([]membership, 0, len(names))
	for _, name := range names {
		identity, found, err := resolver.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", name, err)
		}
		query := membership{Query: name}
		if found {
			query.Identity = &identity
			query.Present = set.Contains(identity)
		}
		queries = append(queries, query)
	}
	return queries, nil
}

func writeInspectText(w io.Writer, result inspectOutput, identities []principal.Identity) error {
	system := result.SystemName
	if system == "" {
		system = "(local)"
	}
	fmt.Fprintf(w, "system:     %s\n", system)
	fmt.Fprintf(w, "resolved:   %s\n", result.ResolvedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "digest:     %s\n", result.Digest)
	if !result.Canonical {
		fmt.Fprintf(w, "encoding:   non-canonical\n")
	}
	fmt.Fprintf(w, "identities: %d\n\n", len(identities))

	table := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(table, "NAME\tSID\tKIND\n")
	for _, identity := range identities {
		fmt.Fprintf(table, "%s\t%s\t%s\n", identity.FullName(), identity.SID(), identity.Kind())
	}
	if err := table.Flush(); err != nil {
		return err
	}
	if len(result.Membership) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\nmembership:\n")
	table = tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for _, query := range result.Membership {
		switch {
		case query.Identity == nil:
			fmt.Fprintf(table, "  %s\t-\tnot found\n", query.Query)
		case query.Present:
			fmt.Fprintf(table, "  %s\t%s\tpresent\n", query.Identity.FullName(), query.Identity.SID())
		default:
			fmt.Fprintf(table, "  %s\t%s\tabsent\n", query.Identity.FullName(), query.Identity.SID())
		}
	}
	return table.Flush()
}
