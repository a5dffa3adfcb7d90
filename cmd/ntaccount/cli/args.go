// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// NoArgs rejects any positional argument.
func NoArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	return nil
}

// ExactArgs requires exactly count positional arguments. name is the
// placeholder used in the usage line ("NAME", "FILE").
func ExactArgs(count int, name string) func(args []string) error {
	return func(args []string) error {
		switch {
		case len(args) < count && count == 1:
			return fmt.Errorf("%s argument required", name)
		case len(args) < count:
			return fmt.Errorf("%d %s arguments required, got %d", count, name, len(args))
		case len(args) > count:
			return fmt.Errorf("unexpected argument %q", args[count])
		}
		return nil
	}
}

// MinArgs requires at least count positional arguments.
func MinArgs(count int, name string) func(args []string) error {
	return func(args []string) error {
		if len(args) < count {
			if count == 1 {
				return fmt.Errorf("at least one %s argument required", name)
			}
			return fmt.Errorf("at least %d %s arguments required, got %d", count, name, len(args))
		}
		return nil
	}
}
