package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL = "http://localhost:8000"

	envBaseURL = "COMPANION_API_URL"
	envToken   = "COMPANION_TOKEN"
)

// Config holds everything the client needs to reach the backend. Values merge
// in order: defaults, then the config file, then environment variables.
type Config struct {
	BaseURL  string `yaml:"base_url" validate:"required,url"`
	Token    string `yaml:"token"`
	Username string `yaml:"username"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "companion", "config.yaml"), nil
}

// Load reads the config file at path (missing file is fine, defaults apply)
// and overlays environment variables.
func Load(path string) (Config, error) {
	cfg := Config{BaseURL: defaultBaseURL}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// First run; the file appears after login.
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.BaseURL = getenv(envBaseURL, cfg.BaseURL)
	cfg.Token = getenv(envToken, cfg.Token)

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories as needed. The file
// holds the session token, hence the restrictive mode.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
