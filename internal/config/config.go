// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-json-localization/internal/merge"
)

// StructuredConfig is the top-level configuration container for the
// localization service. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// log level.
	App App `envPrefix:"APP_"`

	// Localization holds everything the startup merge of message catalogs
	// and the message lookup service need.
	Localization Localization `envPrefix:"LOCALIZATION_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Localization configures the catalog merge performed at startup and the
// request-localization layer.
type Localization struct {
	// ResourcesPath is the directory holding the consumer override catalogs,
	// one <culture>.json per culture. Each file is read at startup and then
	// overwritten with the merged catalog.
	// Env: LOCALIZATION_RESOURCES_PATH
	ResourcesPath string `env:"RESOURCES_PATH"`

	// DefaultCulture is the locale tag used when a request does not ask for
	// a supported culture (e.g. "en-US").
	// Env: LOCALIZATION_DEFAULT_CULTURE
	DefaultCulture string `env:"DEFAULT_CULTURE"`

	// SupportedCultures lists the additional locale tags served.
	// Env: LOCALIZATION_SUPPORTED_CULTURES (comma-separated)
	SupportedCultures []string `env:"SUPPORTED_CULTURES" envSeparator:","`

	// AllowMissingOverride makes a missing override file non-fatal: the
	// bundled catalog is then used unmodified.
	// Env: LOCALIZATION_ALLOW_MISSING_OVERRIDE
	AllowMissingOverride bool `env:"ALLOW_MISSING_OVERRIDE"`

	// ArrayStrategy is "union" or "replace".
	// Env: LOCALIZATION_ARRAY_STRATEGY
	ArrayStrategy string `env:"ARRAY_STRATEGY"`

	// NullStrategy is "merge" or "overwrite".
	// Env: LOCALIZATION_NULL_STRATEGY
	NullStrategy string `env:"NULL_STRATEGY"`

	// Indent is the per-level indentation of written catalogs.
	// Env: LOCALIZATION_INDENT
	Indent string `env:"INDENT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Cultures returns the default culture followed by the supported cultures,
// without duplicates (compared case-insensitively).
func (l Localization) Cultures() []string {
	cultures := make([]string, 0, len(l.SupportedCultures)+1)
	seen := func(c string) bool {
		for _, existing := range cultures {
			if strings.EqualFold(existing, c) {
				return true
			}
		}
		return false
	}

	for _, c := range append([]string{l.DefaultCulture}, l.SupportedCultures...) {
		c = strings.TrimSpace(c)
		if c == "" || seen(c) {
			continue
		}
		cultures = append(cultures, c)
	}
	return cultures
}

// OverridePath returns the path of the consumer catalog for culture. The
// merged catalog is written back to the same path.
func (l Localization) OverridePath(culture string) string {
	return filepath.Join(l.ResourcesPath, culture+".json")
}

// BundledName returns the name suffix of the bundled catalog for culture.
func (l Localization) BundledName(culture string) string {
	return culture + ".json"
}

// Policy parses the configured merge strategies.
func (l Localization) Policy() (merge.Policy, error) {
	return merge.ParsePolicy(l.ArrayStrategy, l.NullStrategy)
}

// defaultConfig holds the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "debug",
		},
		Localization: Localization{
			ResourcesPath:  "Resources",
			DefaultCulture: "en-US",
			ArrayStrategy:  merge.ArrayUnion.String(),
			NullStrategy:   merge.NullMerge.String(),
			Indent:         "  ",
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
