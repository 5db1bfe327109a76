// Package config reads and writes aznet.yaml, the per-project defaults file
// for ambient request scope (subscription, resource group, location).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "aznet.yaml"

// APIVersion is the only config version this build understands.
const APIVersion = "aznet/v1"

// Config is the parsed aznet.yaml.
type Config struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Defaults   Defaults `yaml:"defaults" json:"defaults"`
}

// Defaults holds the ambient scope applied when the matching flag is not
// passed on the command line.
type Defaults struct {
	Subscription  string `yaml:"subscription,omitempty" json:"subscription,omitempty"`
	ResourceGroup string `yaml:"resourceGroup,omitempty" json:"resourceGroup,omitempty"`
	Location      string `yaml:"location,omitempty" json:"location,omitempty"`
}

// Load reads and parses an aznet.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses raw YAML bytes into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = APIVersion
	}
	return &cfg, nil
}

// Save marshals the config to YAML and writes it to path.
func Save(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
