// Package main is the entry point for the desktop axes lollipop viewer.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/lollipop/internal/config"
	"github.com/Faultbox/lollipop/internal/logger"
	"github.com/Faultbox/lollipop/internal/viewer"
)

func main() {
	os.Exit(run())
}

// run starts the viewer and returns the process exit code.
func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Axes Lollipop ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
