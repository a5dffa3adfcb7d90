// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is a node in the ntaccount command tree: either a group that
// dispatches to [Command.Subcommands] or a leaf with a Run function.
type Command struct {
	// Name is the command name as typed by the user (e.g., "resolve").
	Name string

	// Summary is a one-line description shown in the parent's help listing.
	Summary string

	// Description is shown at the top of the command's own help output.
	Description string

	// Usage is the usage line (e.g., "ntaccount resolve [flags] NAME...").
	// If empty, it is synthesized from the command path.
	Usage string

	// Examples are shown in the help output after the flags.
	Examples []Example

	// Flags returns a fresh *pflag.FlagSet for this command. It is
	// called once per parse and again for help and flag suggestions,
	// so it must not share state between calls beyond the bound
	// params. Nil means the command has no flags of its own.
	Flags func() *pflag.FlagSet

	// JSON adds a --json flag. Its value reaches Run as
	// [Invocation.JSON] and selects the JSON form in [Output.Emit].
	JSON bool

	// Args validates the positional arguments left after flag parsing.
	// A rejection is reported as a usage error. Nil accepts any
	// arguments. See [NoArgs], [ExactArgs] and [MinArgs].
	Args func(args []string) error

	// Subcommands are nested commands dispatched by the first positional arg.
	Subcommands []*Command

	// Run executes a leaf command.
	Run func(invocation *Invocation) error

	// Stdout receives command results and Stderr receives help text.
	// Nil inherits from the parent command, and at the root means
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// parent is set during dispatch to build the full command path for
	// help and to inherit writers.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Invocation is everything a leaf command's Run receives.
type Invocation struct {
	// Context is cancelled when the process is asked to stop.
	Context context.Context

	// Args holds the positional arguments, already checked by
	// [Command.Args].
	Args []string

	// Stdout and Stderr are the command's inherited writers.
	Stdout io.Writer
	Stderr io.Writer

	// JSON is set when the command declares [Command.JSON] and the
	// user passed --json.
	JSON bool
}

// Output returns the result writer for this invocation.
func (i *Invocation) Output() Output {
	return Output{Writer: i.Stdout, JSON: i.JSON}
}

// Execute parses args and dispatches to the appropriate subcommand or
// Run function. This is the main entry point for the command tree. Bad
// usage (unknown commands or flags, wrong argument counts) is returned
// as an error; the caller maps it to [ExitFailure].
func (c *Command) Execute(ctx context.Context, args []string) error {
	// Check for help flags before anything else.
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.stderr())
		return nil
	}

	// If we have subcommands, try to dispatch.
	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name := args[0]
		for _, sub := range c.Subcommands {
			if sub.Name == name {
				sub.parent = c
				return sub.Execute(ctx, args[1:])
			}
		}

		// Unknown subcommand: suggest the closest match.
		suggestion := suggestCommand(name, c.Subcommands)
		if suggestion != "" {
			return c.usageError(fmt.Sprintf("unknown command %q (did you mean %q?)", name, suggestion))
		}
		return c.usageError(fmt.Sprintf("unknown command %q", name))
	}

	// If we have subcommands but no args (and no Run), show help.
	if c.Run == nil {
		c.PrintHelp(c.stderr())
		if len(c.Subcommands) == 0 {
			return fmt.Errorf("no action defined for %q", c.fullName())
		}
		if len(args) == 0 {
			return fmt.Errorf("subcommand required")
		}
		return fmt.Errorf("subcommand required (got flag %q)", args[0])
	}

	// Parse flags if defined.
	var outputJSON bool
	if flagSet := c.flagSet(&outputJSON); flagSet != nil {
		// Suppress pflag's default error output and usage dump. We
		// format our own error messages with suggestions.
		flagSet.SetOutput(io.Discard)

		if err := flagSet.Parse(args); err != nil {
			// --help after other arguments.
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(c.stderr())
				return nil
			}
			message := err.Error()
			if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
				// Recreate the flag set to get a clean copy for
				// suggestion lookup (the failed parse may have
				// consumed state).
				if suggestion := suggestFlag(args, c.flagSet(new(bool))); suggestion != "" {
					message = fmt.Sprintf("%s (did you mean %s?)", message, suggestion)
				}
			}
			return c.usageError(message)
		}
		args = flagSet.Args()
	}

	if c.Args != nil {
		if err := c.Args(args); err != nil {
			return c.usageError(err.Error())
		}
	}

	return c.Run(&Invocation{
		Context: ctx,
		Args:    args,
		Stdout:  c.stdout(),
		Stderr:  c.stderr(),
		JSON:    outputJSON,
	})
}

// flagSet builds the command's flags, adding --json bound to
// outputJSON when the command declares it. It returns nil for a
// command with no flags at all.
func (c *Command) flagSet(outputJSON *bool) *pflag.FlagSet {
	var flagSet *pflag.FlagSet
	if c.Flags != nil {
		flagSet = c.Flags()
	}
	if c.JSON {
		if flagSet == nil {
			flagSet = pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
		}
		flagSet.BoolVar(outputJSON, "json", false, "output as JSON")
	}
	return flagSet
}

// usageError formats message with a pointer to --help for full usage.
func (c *Command) usageError(message string) error {
	return fmt.Errorf("%s\n\nRun '%s --help' for usage.", message, c.fullName())
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	// Description or summary.
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	// Usage line.
	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	// Subcommand listing.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	// Flags, including --json.
	if flagSet := c.flagSet(new(bool)); flagSet != nil {
		if usage := flagSet.FlagUsages(); usage != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usage)
		}
	}

	// Examples.
	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName returns the complete command path (e.g., "ntaccount resolve").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// stdout returns the nearest Stdout set on c or an ancestor.
func (c *Command) stdout() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.Stdout != nil {
			return command.Stdout
		}
	}
	return os.Stdout
}

// stderr returns the nearest Stderr set on c or an ancestor.
func (c *Command) stderr() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.Stderr != nil {
			return command.Stderr
		}
	}
	return os.Stderr
}

// isHelpFlag returns true for common help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
