// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/account"
	"github.com/bureau-foundation/ntaccount/lib/principal"
	"github.com/bureau-foundation/ntaccount/lib/sealed"
)

type exportParams struct {
	SessionFlags
	Output     string   `flag:"output,o" desc:"identity set file to write (default: <output.directory>/identities.cbor)"`
	Recipients []string `flag:"recipient,r" desc:"seal the file to this age public key (repeatable)"`
}

func exportCommand() *cli.Command {
	var params exportParams

	return &cli.Command{
		Name:    "export",
		Summary: "Resolve names and save the identities to a CBOR file",
		Description: `Resolve each NAME and write the identities to an identity set file.
The file is CBOR, written atomically, and records the system the names
were resolved against and when. Duplicate principals (different
spellings of the same SID) are stored once.

With --recipient the file is sealed with age to each given public key
(see "ntaccount keygen"); only holders of a matching private key can
inspect it. The printed digest covers the identities, not the sealing,
so it is the same for a plain and a sealed export of the same set.

Any platform failure aborts the export without writing. Names that are
not found are logged and skipped; the file is still written and the
exit status is 1.`,
		Usage: "ntaccount export [flags] NAME...",
		Examples: []cli.Example{
			{
				Description: "Snapshot the local administrators group",
				Command:     "ntaccount export -o admins.cbor Administrators",
			},
			{
				Description: "Read the result back",
				Command:     "ntaccount inspect admins.cbor",
			},
			{
				Description: "Seal the snapshot to an auditor's key",
				Command:     "ntaccount export -r age1... -o admins.age Administrators",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("export", &params)
		},
		Args: cli.MinArgs(1, "NAME"),
		Run: func(invocation *cli.Invocation) error {
			for _, recipient := range params.Recipients {
				if err := sealed.ParsePublicKey(recipient); err != nil {
					return err
				}
			}
			session, err := openSession(params.SessionFlags, "export")
			if err != nil {
				return err
			}
			path := params.Output
			if path == "" {
				if err := session.config.EnsureOutputDirectory(); err != nil {
					return err
				}
				path = session.config.DefaultExportPath()
			}
			return runExport(invocation.Context, session.resolver, session.config.Lookup.Workers, invocation.Args, exportTarget{
				path:       path,
				recipients: params.Recipients,
			}, session.logger, invocation.Stdout)
		},
	}
}

// exportTarget is where and how an identity set is written.
type exportTarget struct {
	path       string
	recipients []string
}

func runExport(ctx context.Context, resolver *account.Resolver, workers int, names []string, target exportTarget, logger *slog.Logger, w io.Writer) error {
	results := resolver.ResolveAll(ctx, names, workers)

	identities := make([]principal.Identity, 0, len(results))
	notFound := 0
	for _, result := range results {
		if result.Err != nil {
			return fmt.Errorf("resolving %q: %w", result.Name, result.Err)
		}
		if !result.Found {
			logger.Warn("account name not found, skipping", "name", result.Name)
			notFound++
			continue
		}
		identities = append(identities, result.Identity)
	}

	set := principal.NewSet(resolver.SystemName(), now(), identities)
	digest, err := set.Digest()
	if err != nil {
		return err
	}
	if len(target.recipients) > 0 {
		err = principal.WriteSealedSet(target.path, set, target.recipients)
	} else {
		err = principal.WriteSet(target.path, set)
	}
	if err != nil {
		return err
	}
	logger.Info("identity set written",
		"path", target.path,
		"identities", len(set.Identities),
		"sealed", len(target.recipients) > 0,
		"digest", digest.Short(),
	)
	fmt.Fprintf(w, "wrote %d identities to %s\ndigest: %s\n", len(set.Identities), target.path, digest)

	if notFound > 0 {
		return &cli.ExitError{Code: cli.ExitNegative}
	}
	return nil
}
