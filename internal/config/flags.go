package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagFontSize = flag.Float64("font-size", 0, "Label font size in pixels")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")

	flagWriteConfig = flag.Bool("write-config", false, "Save the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether --write-config was given.
func WriteConfigRequested() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagFontSize > 0 {
		cfg.Widget.FontSize = *flagFontSize
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
