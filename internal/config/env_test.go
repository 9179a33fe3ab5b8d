// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "debug",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_SHUTDOWN_TIMEOUT": "30s",

		"UPSTREAM_ENDPOINT": "https://ws.example.com/NotifyWS/PhoneNotify.asmx",
		"UPSTREAM_USERNAME": "soap-user",
		"UPSTREAM_PASSWORD": "soap-pass",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "https://ws.example.com/NotifyWS/PhoneNotify.asmx", cfg.Upstream.Endpoint)
	assert.Equal(t, "soap-user", cfg.Upstream.Username)
	assert.Equal(t, "soap-pass", cfg.Upstream.Password)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"UPSTREAM_USERNAME": "soap-user",
		"SERVER_ADDRESS":    "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "soap-user", cfg.Upstream.Username)
	assert.Empty(t, cfg.Upstream.Password)
	assert.Empty(t, cfg.Upstream.Endpoint)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.ShutdownTimeout)

	assert.Equal(t, App{}, cfg.App)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_SHUTDOWN_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_SHUTDOWN_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.ShutdownTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_LOG_LEVEL",

		"SERVER_ADDRESS",
		"SERVER_SHUTDOWN_TIMEOUT",

		"UPSTREAM_ENDPOINT",
		"UPSTREAM_USERNAME",
		"UPSTREAM_PASSWORD",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
