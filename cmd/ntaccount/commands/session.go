// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bureau-foundation/ntaccount/cmd/ntaccount/cli"
	"github.com/bureau-foundation/ntaccount/lib/account"
	"github.com/bureau-foundation/ntaccount/lib/config"
)

// Replaced in tests.
var (
	newPlatform = account.NativePlatform
	now         = time.Now
)

// SessionFlags are the flags shared by every command that resolves
// names.
type SessionFlags struct {
	ConfigPath string `flag:"config" desc:"path to ntaccount.yaml (default: $NTACCOUNT_CONFIG, else built-in defaults)"`
	System     string `flag:"system" desc:"remote system to resolve against (overrides lookup.system_name)"`
	Workers    int    `flag:"workers" desc:"concurrent lookups (overrides lookup.workers)"`
}

// session is the loaded configuration plus the objects built from it.
type session struct {
	config   *config.Config
	logger   *slog.Logger
	resolver *account.Resolver
}

// openSession loads configuration, applies flag overrides and builds
// the logger and resolver.
func openSession(flags SessionFlags, command string) (*session, error) {
	cfg, err := config.LoadOptional(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if flags.System != "" {
		cfg.Lookup.SystemName = flags.System
	}
	if flags.Workers != 0 {
		cfg.Lookup.Workers = flags.Workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := cfg.Logging.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger, err := cli.NewCommandLogger(level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	logger = logger.With("command", command)
	if cfg.Lookup.SystemName != "" {
		logger = logger.With("system", cfg.Lookup.SystemName)
	}

	return &session{
		config: cfg,
		logger: logger,
		resolver: account.New(account.Config{
			Platform:             newPlatform(),
			SystemName:           cfg.Lookup.SystemName,
			DomainBufferCapacity: cfg.Lookup.DomainBufferCapacity,
			Logger:               logger,
		}),
	}, nil
}
