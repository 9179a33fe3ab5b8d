package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredFileConfig mirrors [StructuredConfig] with snake_case keys. The
// same shape is read from JSON and YAML files.
type StructuredFileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server"`

	Upstream struct {
		Endpoint string `json:"endpoint" yaml:"endpoint"`
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
	} `json:"upstream,omitempty" yaml:"upstream"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.toStructured(), nil
}

func (c StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  c.App.Version,
			LogLevel: c.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     c.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(c.Server.ShutdownTimeout),
		},
		Upstream: Upstream{
			Endpoint: c.Upstream.Endpoint,
			Username: c.Upstream.Username,
			Password: c.Upstream.Password,
		},
	}
}

// Duration is a time.Duration read from config files as "30s" style text
// or integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", text, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}
	*d = Duration(time.Duration(n))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
