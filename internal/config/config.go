package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/melmoskitchen/pantry/internal/errors"
)

// Config holds the global pantry configuration stored at ~/.pantry/config.yaml
type Config struct {
	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`

	// ClearTenantOnLogout clears the persisted workspace id on logout.
	// The product behavior keeps the workspace sticky so the picker can be
	// skipped on the next login; set this to true to forget it instead.
	ClearTenantOnLogout bool `yaml:"clear_tenant_on_logout"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Dir returns the pantry configuration directory, creating nothing.
// PANTRY_HOME overrides the default ~/.pantry (used by tests).
func Dir() (string, error) {
	if dir := os.Getenv("PANTRY_HOME"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pantry"), nil
}

// Path returns the configuration file path
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration file, returning defaults when it does not exist
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a configuration file from an explicit path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.NewConfigReadError(path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "invalid config file", err).
			WithSuggestion("Fix the YAML syntax or delete the file to regenerate defaults")
	}

	return cfg, nil
}

// Save writes the configuration to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to encode config", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to write config file", err)
	}

	return nil
}

// LoadEnv loads a .env file from the working directory when present.
// A missing file is not an error; shell environment always wins.
func LoadEnv() {
	_ = godotenv.Load()
}
