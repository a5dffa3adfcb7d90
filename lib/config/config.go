// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable Load reads the config path from.
const EnvironmentVariable = "NTACCOUNT_CONFIG"

// DefaultExportFile is the file name used by DefaultExportPath.
const DefaultExportFile = "identities.cbor"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for interactive use on workstations.
	Development Environment = "development"
	// Production is for scheduled or fleet-wide runs.
	Production Environment = "production"
)

// Config is the configuration for ntaccount.
type Config struct {
	// Environment identifies the deployment type (development, production).
	Environment Environment `yaml:"environment"`

	// Lookup configures account resolution.
	Lookup LookupConfig `yaml:"lookup"`

	// Logging configures the command logger.
	Logging LoggingConfig `yaml:"logging"`

	// Output configures where exported identity sets are written.
	Output OutputConfig `yaml:"output"`

	// Per-environment overrides, applied after the base config is
	// loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Lookup  *LookupConfig  `yaml:"lookup,omitempty"`
	Logging *LoggingConfig `yaml:"logging,omitempty"`
	Output  *OutputConfig  `yaml:"output,omitempty"`
}

// LookupConfig configures account resolution.
type LookupConfig struct {
	// SystemName is the remote system names are resolved against.
	// Empty means the local system and the domains it trusts.
	SystemName string `yaml:"system_name"`

	// DomainBufferCapacity is the domain buffer, in UTF-16 units,
	// offered to the sizing probe.
	// Default: 16
	DomainBufferCapacity int `yaml:"domain_buffer_capacity"`

	// Workers bounds concurrent resolutions when several names are
	// given.
	// Default: 4
	Workers int `yaml:"workers"`
}

// LoggingConfig configures the command logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info (development), warn (production)
	Level string `yaml:"level"`

	// Format is auto, text or json. Auto selects text when stderr is
	// a terminal and json otherwise.
	// Default: auto
	Format string `yaml:"format"`
}

// OutputConfig configures exported files.
type OutputConfig struct {
	// Directory receives exported identity sets when no explicit
	// output path is given.
	// Default: ${HOME}/.cache/ntaccount
	Directory string `yaml:"directory"`
}

var logFormats = []string{"auto", "text", "json"}

// Default returns the default configuration. It is used as the base
// before a config file is loaded, and on its own when no config file
// is given.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Environment: Development,
		Lookup: LookupConfig{
			DomainBufferCapacity: 16,
			Workers:              4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
		Output: OutputConfig{
			Directory: filepath.Join(homeDir, ".cache", "ntaccount"),
		},
	}
}

// Load loads configuration from the NTACCOUNT_CONFIG environment
// variable. It fails when the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your ntaccount.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// Environment variables do not override config values. The only
// expansion performed is ${HOME}-style variables in paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// LoadOptional loads the file at path when it is non-empty, otherwise
// the file named by NTACCOUNT_CONFIG when that is set, otherwise
// returns Default(). A one-shot resolution should not require a config
// file.
func LoadOptional(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	return Default(), nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
		// Production defaults: quieter, machine-readable logs.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Logging: &LoggingConfig{
					Level:  "warn",
					Format: "json",
				},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Lookup != nil {
		if overrides.Lookup.SystemName != "" {
			c.Lookup.SystemName = overrides.Lookup.SystemName
		}
		if overrides.Lookup.DomainBufferCapacity != 0 {
			c.Lookup.DomainBufferCapacity = overrides.Lookup.DomainBufferCapacity
		}
		if overrides.Lookup.Workers != 0 {
			c.Lookup.Workers = overrides.Lookup.Workers
		}
	}

	if overrides.Logging != nil {
		if overrides.Logging.Level != "" {
			c.Logging.Level = overrides.Logging.Level
		}
		if overrides.Logging.Format != "" {
			c.Logging.Format = overrides.Logging.Format
		}
	}

	if overrides.Output != nil && overrides.Output.Directory != "" {
		c.Output.Directory = overrides.Output.Directory
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Output.Directory = expandVars(c.Output.Directory, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Lookup.DomainBufferCapacity < 1 {
		errs = append(errs, fmt.Errorf("lookup.domain_buffer_capacity must be positive, got %d", c.Lookup.DomainBufferCapacity))
	}
	if c.Lookup.Workers < 1 {
		errs = append(errs, fmt.Errorf("lookup.workers must be positive, got %d", c.Lookup.Workers))
	}

	if _, err := c.Logging.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of: %v", logFormats))
	}

	if c.Output.Directory == "" {
		errs = append(errs, fmt.Errorf("output.directory is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel parses Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

// DefaultExportPath returns where "ntaccount export" writes when no
// --output is given.
func (c *Config) DefaultExportPath() string {
	return filepath.Join(c.Output.Directory, DefaultExportFile)
}

// EnsureOutputDirectory creates the output directory if it doesn't exist.
func (c *Config) EnsureOutputDirectory() error {
	if err := os.MkdirAll(c.Output.Directory, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Output.Directory, err)
	}
	return nil
}
