// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Widget   WidgetConfig   `yaml:"widget"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Terminal TerminalConfig `yaml:"terminal"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// WidgetConfig holds lollipop appearance and the initial view.
type WidgetConfig struct {
	FontSize  float64 `yaml:"font_size"`  // Label size in pixels
	MinMargin float32 `yaml:"min_margin"` // Smallest label margin in pixels
	Yaw       float32 `yaml:"yaw"`        // Initial orientation, degrees
	Pitch     float32 `yaml:"pitch"`
	Roll      float32 `yaml:"roll"`
	StepDeg   float32 `yaml:"step_deg"` // Rotation per arrow key press
}

// SnapshotConfig holds PNG output settings.
type SnapshotConfig struct {
	OutputDir string `yaml:"output_dir"`
	Prefix    string `yaml:"prefix"`
}

// TerminalConfig holds terminal viewer settings.
type TerminalConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Axes Lollipop",
			Width:  100,
			Height: 100,
			VSync:  true,
		},
		Widget: WidgetConfig{
			FontSize:  13,
			MinMargin: 5,
			StepDeg:   15,
		},
		Snapshot: SnapshotConfig{
			OutputDir: "snapshots",
			Prefix:    "lollipop",
		},
		Terminal: TerminalConfig{
			FrameInterval: 40 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
