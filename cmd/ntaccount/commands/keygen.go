// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/sealed"
)

type keygenParams struct {
	Output string `flag:"output,o" desc:"key file to create (required; must not exist)"`
}

func keygenCommand() *cli.Command {
	var params keygenParams

	return &cli.Command{
		Name:    "keygen",
		Summary: "Generate an age keypair for sealed identity sets",
		Description: `Generate an age x25519 keypair. The private key is written to the
--output file (mode 0600, age-keygen layout) and the public key is
printed. Pass the public key to "ntaccount export --recipient" and the
key file to "ntaccount inspect --identity".`,
		Usage: "ntaccount keygen --output FILE",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("keygen", &params)
		},
		Args: cli.NoArgs,
		Run: func(invocation *cli.Invocation) error {
			if params.Output == "" {
				return fmt.Errorf("--output is required")
			}
			return runKeygen(params.Output, invocation.Stdout)
		},
	}
}

func runKeygen(path string, w io.Writer) error {
	keypair, err := sealed.GenerateKeypair()
	if err != nil {
		return err
	}
	if err := sealed.WriteKeyFile(path, keypair); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "public key: %s\n", keypair.PublicKey)
	return err
}
