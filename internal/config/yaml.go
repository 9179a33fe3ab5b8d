package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// parseConfigFile reads the config file named by -c/CONFIG. Files ending in
// .yaml or .yml are YAML, everything else is JSON.
func parseConfigFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path)
	default:
		return parseJSON(path)
	}
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	yamlFile, err := os.Open(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var yamlCfg StructuredFileConfig
	if err := yaml.NewDecoder(yamlFile).Decode(&yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return yamlCfg.toStructured(), nil
}

// UnmarshalYAML accepts "30s" style strings and integer nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", value.Line)
	}

	if parsed, err := time.ParseDuration(value.Value); err == nil {
		*d = Duration(parsed)
		return nil
	}

	n, err := strconv.ParseInt(value.Value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q", value.Value)
	}
	*d = Duration(time.Duration(n))
	return nil
}
