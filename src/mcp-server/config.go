// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configEnvVar names the environment variable holding the config file path.
const configEnvVar = "MCP_TLS_INSPECTOR_CONFIG_FILE"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
// It contains default settings for probe operations and theme overrides.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_TLS_INSPECTOR_CONFIG_FILE environment variable, with defaults applied
// for any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for parse and probe operations
	Defaults struct {
		// Timeout: Default timeout in seconds for endpoint probes
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// Format: Default output format ('json', 'text', or 'pem')
		Format string `json:"format" yaml:"format"`
		// Chain: Include the full presented chain in probe output
		Chain bool `json:"chain" yaml:"chain"`
	} `json:"defaults" yaml:"defaults"`

	// Theme: Accent color overrides for text output (hex colors)
	Theme struct {
		Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`
		Success string `json:"success,omitempty" yaml:"success,omitempty"`
		Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	} `json:"theme" yaml:"theme"`
}

// detectConfigFormat determines the configuration file format based on file
// extension, matching case-insensitively.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or
// applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_TLS_INSPECTOR_CONFIG_FILE environment variable is checked if
//     configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.Timeout = 30
	config.Defaults.Format = "json"

	if configPath == "" {
		configPath = os.Getenv(configEnvVar)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.Timeout <= 0 {
			config.Defaults.Timeout = 30
		}
		switch config.Defaults.Format {
		case "json", "text", "pem":
		default:
			config.Defaults.Format = "json"
		}
	}

	return config, nil
}
