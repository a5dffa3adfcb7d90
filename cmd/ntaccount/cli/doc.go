// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for ntaccount.
//
// The central type is [Command]. A group command dispatches to its
// [Command.Subcommands]; a leaf declares its flags, an argument
// validator ([NoArgs], [ExactArgs], [MinArgs]) and a Run function that
// receives an [Invocation]. [Command.Execute] handles flag parsing,
// subcommand routing, and structured help output with examples.
// Unknown subcommands and flags get an edit-distance suggestion, and
// every usage error ends with a pointer to --help.
//
// Setting [Command.JSON] gives a command the --json flag. Run renders
// its result through [Invocation.Output], whose [Output.Emit] writes
// either indented JSON or the command's text form.
//
// Parameter structs declare flags with struct tags and are bound by
// [FlagsFromParams].
//
// [ExitError] carries the exit code convention shared by all commands:
// 0 success, 1 a negative answer (not found, not equal), 2 failure.
// [NewCommandLogger] builds the slog logger used by commands.
package cli
