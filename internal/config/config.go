// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"electriflex-sku/internal/errors"
	"electriflex-sku/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Pipeline contains CSV pipeline settings
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// PipelineConfig contains CSV pipeline settings
type PipelineConfig struct {
	// SKUColumn is the header name of the SKU column
	SKUColumn string `json:"sku_column" yaml:"sku_column"`

	// OutputFile is where the decorated CSV is written
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default format of the decode command
	DefaultFormat string `json:"default_format" yaml:"default_format"`

	// NoColor disables ANSI colors in terminal summaries
	NoColor bool `json:"no_color" yaml:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pipeline: PipelineConfig{
			SKUColumn:  "SKU",
			OutputFile: "output.csv",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a JSON or YAML file. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("reading config "+path, err)
	}

	config := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Config("decoding config "+path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Pipeline.SKUColumn) == "" {
		return errors.Config("pipeline.sku_column must not be empty", nil)
	}
	if c.Pipeline.OutputFile == "" {
		return errors.Config("pipeline.output_file must not be empty", nil)
	}
	switch c.Output.DefaultFormat {
	case "cli", "json", "csv":
	default:
		return errors.Config("output.default_format must be cli, json or csv, got "+c.Output.DefaultFormat, nil)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
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
