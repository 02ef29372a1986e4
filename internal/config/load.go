package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit --config wins over the search path
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d: must not be negative", c.Window.Width, c.Window.Height)
	}
	if c.Widget.FontSize <= 0 {
		return fmt.Errorf("widget font_size %v: must be positive", c.Widget.FontSize)
	}
	if c.Widget.MinMargin < 0 {
		return fmt.Errorf("widget min_margin %v: must not be negative", c.Widget.MinMargin)
	}
	if c.Terminal.FrameInterval <= 0 {
		return fmt.Errorf("terminal frame_interval %v: must be positive", c.Terminal.FrameInterval)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./lollipop.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Lollipop")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Lollipop")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lollipop")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lollipop")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
