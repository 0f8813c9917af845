// Package config handles launcher configuration for the pinned app.
// Configuration is loaded from XDG-compliant paths (typically
// ~/.config/pinned/config.yaml). It covers machine-level knobs: where data
// lives, key bindings, and the feedback endpoint. User preferences that the
// app itself mutates (font size, colors, retention) live in the settings
// record instead, which the persistence gateway owns.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the launcher configuration.
type Config struct {
	// DataDir overrides the default data directory (~/.pinned)
	DataDir string `yaml:"data_dir,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// ReportEndpoint overrides the bug-report submission URL
	ReportEndpoint string `yaml:"report_endpoint,omitempty"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "enter,space", "j,down"
type KeysConfig struct {
	Quit     string `yaml:"quit,omitempty"`     // default: "q,ctrl+c"
	Help     string `yaml:"help,omitempty"`     // default: "?"
	Settings string `yaml:"settings,omitempty"` // default: "s"

	// Navigation keys
	Up     string `yaml:"up,omitempty"`     // default: "k,up"
	Down   string `yaml:"down,omitempty"`   // default: "j,down"
	Top    string `yaml:"top,omitempty"`    // default: "g"
	Bottom string `yaml:"bottom,omitempty"` // default: "G"

	// Task keys
	Add            string `yaml:"add,omitempty"`             // default: "a"
	Toggle         string `yaml:"toggle,omitempty"`          // default: "d,space"
	Delete         string `yaml:"delete,omitempty"`          // default: "x"
	Edit           string `yaml:"edit,omitempty"`            // default: "e"
	Move           string `yaml:"move,omitempty"`            // default: "m"
	ClearCompleted string `yaml:"clear_completed,omitempty"` // default: "c"
	ClearAll       string `yaml:"clear_all,omitempty"`       // default: "C"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Cancel  string `yaml:"cancel,omitempty"`  // default: "esc"
}

// DefaultReportEndpoint is where bug reports are submitted.
const DefaultReportEndpoint = "https://pinned-feedback.fly.dev/api/reports"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:        defaultDataDir(),
		Keys:           KeysConfig{}, // empty fields mean built-in defaults
		ReportEndpoint: DefaultReportEndpoint,
	}
}

// defaultDataDir returns the default data directory path.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pinned"
	}
	return filepath.Join(home, ".pinned")
}

// configDir returns the configuration directory path (XDG compliant).
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pinned")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pinned")
}

// configPath returns the path to the config file.
func configPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from disk, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	path := configPath()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, err
	}

	// Every field is a string, so a plain non-empty merge is sufficient.
	cfg.merge(&userCfg)
	return cfg, nil
}

func (c *Config) merge(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	if other.ReportEndpoint != "" {
		c.ReportEndpoint = other.ReportEndpoint
	}

	if other.Keys.Quit != "" {
		c.Keys.Quit = other.Keys.Quit
	}
	if other.Keys.Help != "" {
		c.Keys.Help = other.Keys.Help
	}
	if other.Keys.Settings != "" {
		c.Keys.Settings = other.Keys.Settings
	}
	if other.Keys.Up != "" {
		c.Keys.Up = other.Keys.Up
	}
	if other.Keys.Down != "" {
		c.Keys.Down = other.Keys.Down
	}
	if other.Keys.Top != "" {
		c.Keys.Top = other.Keys.Top
	}
	if other.Keys.Bottom != "" {
		c.Keys.Bottom = other.Keys.Bottom
	}
	if other.Keys.Add != "" {
		c.Keys.Add = other.Keys.Add
	}
	if other.Keys.Toggle != "" {
		c.Keys.Toggle = other.Keys.Toggle
	}
	if other.Keys.Delete != "" {
		c.Keys.Delete = other.Keys.Delete
	}
	if other.Keys.Edit != "" {
		c.Keys.Edit = other.Keys.Edit
	}
	if other.Keys.Move != "" {
		c.Keys.Move = other.Keys.Move
	}
	if other.Keys.ClearCompleted != "" {
		c.Keys.ClearCompleted = other.Keys.ClearCompleted
	}
	if other.Keys.ClearAll != "" {
		c.Keys.ClearAll = other.Keys.ClearAll
	}
	if other.Keys.Confirm != "" {
		c.Keys.Confirm = other.Keys.Confirm
	}
	if other.Keys.Cancel != "" {
		c.Keys.Cancel = other.Keys.Cancel
	}
}

// GetDataDir returns the resolved data directory path, expanding a leading ~.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}

	if c.DataDir == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return c.DataDir
	}

	if strings.HasPrefix(c.DataDir, "~/") || strings.HasPrefix(c.DataDir, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			trimmed := strings.TrimPrefix(c.DataDir, "~/")
			trimmed = strings.TrimPrefix(trimmed, `~\`)
			return filepath.Join(home, trimmed)
		}
	}
	return c.DataDir
}
