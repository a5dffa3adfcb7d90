// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for ntaccount.
//
// Configuration is loaded from a single file specified by either the
// NTACCOUNT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. [LoadOptional] is what the CLI uses: with neither a
// flag nor the variable it returns [Default], so a one-off resolution
// needs no file at all.
//
// The file supports environment-specific sections (development,
// production) that override base values when [Config].Environment
// matches. Production without an explicit section logs at warn in
// JSON.
//
// ${HOME} and ${VAR:-default} patterns are expanded in the output
// directory after loading. No other environment variables override
// config values.
//
// Key exports:
//
//   - [Config] -- master struct with Lookup, Logging, Output
//   - [Default] -- returns a Config with development defaults
//   - [Load], [LoadFile], [LoadOptional] -- the entry points
//
// This package depends on no other ntaccount packages.
package config
