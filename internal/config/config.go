// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Defaults applied after all sources are merged.
const (
	DefaultEnvFile  = ".env"
	DefaultOutput   = "-"
	DefaultLogLevel = "info"
)

// StructuredConfig is the runtime configuration of the toolconfig command.
// It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// It does not carry the toolchain settings themselves; those are read from
// the environment snapshot by the assembler package.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the command's own settings.
	App App `envPrefix:"TOOLCONFIG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the TOOLCONFIG_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"TOOLCONFIG_CONFIG"`
}

// App holds the settings that control where inputs are read from and where
// the assembled settings are written to.
type App struct {
	// EnvFile is the dotenv file loaded before assembly. A missing file is
	// not an error.
	// Env: TOOLCONFIG_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// Output is the destination file of the exported settings; "-" means
	// standard output.
	// Env: TOOLCONFIG_OUTPUT
	Output string `env:"OUTPUT"`

	// Strict turns validation warnings into a failure.
	// Env: TOOLCONFIG_STRICT
	Strict bool `env:"STRICT"`

	// LogLevel is the minimal level of emitted log entries
	// (e.g. "debug", "info", "warn").
	// Env: TOOLCONFIG_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the runtime
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Only non-zero values override, so a later source cannot reset a field to
// its zero value: once any source sets Strict to true, "strict": false in the
// JSON file or an empty TOOLCONFIG_OUTPUT does not turn it back. Unset the
// earlier source instead.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.EnvFile == "" {
		cfg.App.EnvFile = DefaultEnvFile
	}
	if cfg.App.Output == "" {
		cfg.App.Output = DefaultOutput
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}
