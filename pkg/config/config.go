package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds all user-defined persistent settings.
type Config struct {
	Origin   string `json:"origin,omitempty"`   // default --from for plan
	Home     string `json:"home,omitempty"`     // named place
	Work     string `json:"work,omitempty"`     // named place
	Timezone string `json:"timezone,omitempty"` // IANA zone for input/output times
}

// Keys lists the valid config keys.
func Keys() []string {
	return []string{"origin", "home", "work", "timezone"}
}

// getConfigPath returns the absolute path to ~/.sl-cli.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sl-cli.json"), nil
}

// Load reads the configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration back to disk, replacing the whole file.
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the value for a key, or an error for an unknown key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "origin":
		return c.Origin, nil
	case "home":
		return c.Home, nil
	case "work":
		return c.Work, nil
	case "timezone":
		return c.Timezone, nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid keys: origin, home, work, timezone)", key)
	}
}

// Set updates the value for a key, or errors for an unknown key. Values are
// not validated beyond key membership.
func (c *Config) Set(key, value string) error {
	switch key {
	case "origin":
		c.Origin = value
	case "home":
		c.Home = value
	case "work":
		c.Work = value
	case "timezone":
		c.Timezone = value
	default:
		return fmt.Errorf("unknown config key %q (valid keys: origin, home, work, timezone)", key)
	}
	return nil
}

// Location resolves the configured timezone, defaulting to local time when
// the key is unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q in config: %w", c.Timezone, err)
	}
	return loc, nil
}

// Place resolves the named places "home" and "work" to their configured
// values; anything else passes through untouched. The second return reports
// whether the argument was one of the recognized names.
func (c *Config) Place(arg string) (string, bool) {
	switch arg {
	case "home":
		return c.Home, true
	case "work":
		return c.Work, true
	}
	return arg, false
}
