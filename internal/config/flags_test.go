package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantStr string
		wantErr error
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}, wantStr: "localhost:8080"},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}, wantStr: "127.0.0.1:9090"},
		{name: "ipv6", input: "[::1]:8443", want: NetAddress{Host: "::1", Port: 8443}, wantStr: "[::1]:8443"},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}, wantStr: ":8080"},
		{name: "highest port", input: "localhost:65535", want: NetAddress{Host: "localhost", Port: 65535}, wantStr: "localhost:65535"},
		{name: "missing port", input: "localhost8080", wantErr: errAddressFormat},
		{name: "too many colons", input: "host:port:extra", wantErr: errAddressFormat},
		{name: "empty", input: "", wantErr: errAddressFormat},
		{name: "zero port", input: "localhost:0", wantErr: errPortRange},
		{name: "negative port", input: "localhost:-1", wantErr: errPortRange},
		{name: "port out of range", input: "localhost:70000", wantErr: errPortRange},
		{name: "hostname", input: "gateway.internal:8080", wantErr: errHostFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NetAddress{}, addr, "failed Set must not modify the address")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.wantStr, addr.String())
		})
	}

	t.Run("non numeric port", func(t *testing.T) {
		var addr NetAddress
		assert.ErrorContains(t, addr.Set("localhost:http"), `invalid port "http"`)
	})
}

func TestNetAddress_StringUnset(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
}

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("phone-notify-gateway", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlagSet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want StructuredConfig
	}{
		{
			name: "every flag",
			args: []string{
				"-a", "localhost:8080",
				"-c", "/etc/phone-notify/config.yaml",
				"-shutdown-timeout", "15s",
				"-log-level", "debug",
				"-upstream-endpoint", "https://ws.example.com/NotifyWS/PhoneNotify.asmx",
				"-upstream-username", "user",
				"-upstream-password", "pass",
			},
			want: StructuredConfig{
				App:    App{LogLevel: "debug"},
				Server: Server{HTTPAddress: "localhost:8080", ShutdownTimeout: 15 * time.Second},
				Upstream: Upstream{
					Endpoint: "https://ws.example.com/NotifyWS/PhoneNotify.asmx",
					Username: "user",
					Password: "pass",
				},
				ConfigFilePath: "/etc/phone-notify/config.yaml",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "config.json"},
			want: StructuredConfig{ConfigFilePath: "config.json"},
		},
		{
			name: "partial",
			args: []string{"-a", "127.0.0.1:3000", "-upstream-username", "user"},
			want: StructuredConfig{
				Server:   Server{HTTPAddress: "127.0.0.1:3000"},
				Upstream: Upstream{Username: "user"},
			},
		},
		{name: "no flags", args: nil, want: StructuredConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlagSet(newTestFlagSet(), tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseFlagSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"-a", "localhost"}},
		{name: "bad duration", args: []string{"-shutdown-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlagSet(newTestFlagSet(), tt.args)

			assert.Error(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestParseFlags_CommandLine(t *testing.T) {
	resetFlags(t, "-a", "localhost:9000", "-log-level", "warn")

	cfg := ParseFlags()

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}
