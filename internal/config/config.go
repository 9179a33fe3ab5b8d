// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-phone-notify gateway. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON or YAML file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the log level.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and shutdown settings of the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds the PhoneNotify SOAP endpoint and its transport
	// credentials.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running gateway
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and shutdown settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds how long in-flight requests may take to finish
	// once a stop signal is received.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Upstream holds the settings of the PhoneNotify SOAP service.
type Upstream struct {
	// Endpoint is the absolute URL of the SOAP service.
	// Env: UPSTREAM_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Username and Password are sent as HTTP basic auth credentials on
	// every upstream call. License keys travel separately, per request.
	// Env: UPSTREAM_USERNAME, UPSTREAM_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Defaults applied to fields left empty by every other source.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultLogLevel         = "info"
	DefaultUpstreamEndpoint = "https://ws.cdyne.com/NotifyWS/PhoneNotify.asmx"
)

// GetStructuredConfig loads, merges, and validates the gateway
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withConfigFile().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Upstream: Upstream{
			Endpoint: DefaultUpstreamEndpoint,
		},
	}
}
