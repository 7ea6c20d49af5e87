// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the mpw
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// Nothing here is secret: the master password is never configurable and is
// always read interactively.
type StructuredConfig struct {
	// User identifies whose passwords are generated.
	User User `envPrefix:"MPW_"`

	// Site selects the password to generate.
	Site Site `envPrefix:"MPW_"`

	// UI holds front-end toggles.
	UI UI `envPrefix:"MPW_"`

	// Storage locates the site profile database.
	Storage Storage `envPrefix:"MPW_"`

	// Log holds log file settings. The terminal belongs to the UI, so logs
	// never go to stdout.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// User holds the identity half of the master key derivation.
type User struct {
	// FullName is the user name mixed into the master key salt. When empty
	// the client asks for it.
	// Env: MPW_FULLNAME
	FullName string `env:"FULLNAME"`
}

// Site selects one generated password.
type Site struct {
	// Name is the site the password is for (e.g. "twitter.com").
	// Env: MPW_SITE
	Name string `env:"SITE"`

	// Counter distinguishes successive passwords of the same site. Zero
	// means "not set" and resolves to 1.
	// Env: MPW_COUNTER
	Counter Counter `env:"COUNTER"`

	// Template is a template tier name, one-letter alias or numeric id
	// (e.g. "long", "l", "50").
	// Env: MPW_TEMPLATE
	Template string `env:"TEMPLATE"`
}

// UI holds front-end toggles.
type UI struct {
	// Clipboard copies the generated password to the clipboard instead of
	// printing it.
	// Env: MPW_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD"`

	// Identicon shows the identicon of the entered master password.
	// Env: MPW_IDENTICON
	Identicon bool `env:"IDENTICON"`
}

// Storage holds the site profile database settings. Profiles keep the
// counter and template of each site so they need not be retyped.
type Storage struct {
	// DSN is the SQLite database file. Empty disables site profiles.
	// Env: MPW_DB
	DSN string `env:"DB"`
}

// Log holds logger settings.
type Log struct {
	// File is the path logs are appended to. Empty means a "logs" file
	// next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
