// Package main runs the viewer in a bare SDL window, keyboard and mouse
// only.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/shapeshift/internal/app"
	"github.com/Faultbox/shapeshift/internal/config"
	"github.com/Faultbox/shapeshift/internal/logger"
)

func main() {
	// SDL and OpenGL must stay on the main thread
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Shapeshift (lite) ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := app.RunLite(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
	logger.Sync()
}
