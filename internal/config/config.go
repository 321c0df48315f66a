// Package config loads the optional tool-level configuration file
// (webineer.yaml). It holds defaults for surrounding tooling: template and
// output locations, preview behavior, history database path. The core model,
// persistence, and rendering packages never read configuration themselves.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is where Load looks when no path is given.
const DefaultFilename = "webineer.yaml"

// Config represents the tool configuration.
type Config struct {
	// TemplateDir is the page template directory; empty means the built-in
	// template.
	TemplateDir string `yaml:"template_dir,omitempty"`

	// OutputDir is the default export target.
	OutputDir string `yaml:"output_dir,omitempty"`

	// HistoryDB is the build history database path; empty disables history.
	HistoryDB string `yaml:"history_db,omitempty"`

	Preview PreviewConfig `yaml:"preview,omitempty"`
}

// PreviewConfig configures the local preview server.
type PreviewConfig struct {
	Port       int `yaml:"port,omitempty"`
	DebounceMS int `yaml:"debounce_ms,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		OutputDir: "./site",
		HistoryDB: ".webineer-history.db",
		Preview: PreviewConfig{
			Port:       8080,
			DebounceMS: 500,
		},
	}
}

// Load reads configuration from the specified file. A missing file is not an
// error: defaults are returned so the tool works without any setup.
// Environment variables referenced in the YAML ($VAR or ${VAR}) are expanded;
// a .env file in the working directory is loaded first if present.
func Load(configPath string) (*Config, error) {
	// Existing process environment wins over .env entries.
	_ = godotenv.Load()

	if configPath == "" {
		configPath = DefaultFilename
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	config := Default()
	if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	applyDefaults(config)
	return config, nil
}

// applyDefaults fills any field the file left zero-valued.
func applyDefaults(config *Config) {
	defaults := Default()
	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}
	if config.Preview.Port == 0 {
		config.Preview.Port = defaults.Preview.Port
	}
	if config.Preview.DebounceMS == 0 {
		config.Preview.DebounceMS = defaults.Preview.DebounceMS
	}
}
