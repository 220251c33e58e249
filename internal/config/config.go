// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"rate-table/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Input contains input column discovery settings
	Input InputConfig `json:"input"`

	// Output contains output artifact settings
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// InputConfig contains the recognized header column names.
// All names are matched case-insensitively against the CSV header.
type InputConfig struct {
	// PrefixColumns are recognized names for the dial-prefix column
	PrefixColumns []string `json:"prefix_columns"`

	// RateColumns are recognized names for the rate column
	RateColumns []string `json:"rate_columns"`

	// CountryColumns are recognized names for the country-code column
	CountryColumns []string `json:"country_columns"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// TablePath is the default path for the compiled rate table
	TablePath string `json:"table_path"`

	// RangesPath is the default path for the country price ranges report
	RangesPath string `json:"ranges_path"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			PrefixColumns:  []string{"destination prefixes", "destination prefix", "prefixes", "prefix"},
			RateColumns:    []string{"rate", "price", "cost"},
			CountryColumns: []string{"country code", "country_code", "iso"},
		},
		Output: OutputConfig{
			TablePath:  "rate-table.json",
			RangesPath: "country_price_ranges.json",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
