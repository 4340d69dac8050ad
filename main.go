package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/soocke/firescreen-go/app"
	"github.com/soocke/firescreen-go/config"
	"github.com/soocke/firescreen-go/domain/recorder"
	"github.com/soocke/firescreen-go/runner"
)

func main() {
	var (
		cfgPath  = flag.String("config", defaultConfigPath(), "path to the JSON config file")
		envFile  = flag.String("env", ".env", "optional dotenv file with FIRESCREEN_* overrides")
		record   = flag.String("record", "", "record to this file without opening the window")
		duration = flag.Duration("duration", 0, "headless recording length (0 = until interrupted)")
		still    = flag.String("still", "", "save a screenshot to this file without opening the window")
	)
	flag.Parse()

	cfg, loadErr := config.Load(*cfgPath)
	envErr := cfg.ApplyEnv(*envFile)

	// Set up logger
	logger := NewLogger(levelFor(cfg.Debug))
	switch {
	case errors.Is(loadErr, recorder.ErrInvalidConfiguration):
		logger.Warn("config values replaced", "path", *cfgPath, "error", loadErr)
	case loadErr != nil:
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", loadErr)
	}
	if envErr != nil {
		logger.Warn("environment overrides ignored", "error", envErr)
	}

	if *record != "" || *still != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := runner.RunHeadless(ctx, cfg, logger, runner.HeadlessOptions{
			RecordPath: *record,
			Duration:   *duration,
			StillPath:  *still,
		})
		if err != nil {
			logger.Error("headless run failed", "error", err)
			fmt.Fprintln(os.Stderr, err)
			stop()
			os.Exit(1)
		}
		return
	}

	application := app.NewApp("FireScreen", 720, 420, cfg, *cfgPath, logger)
	if err := application.Start(); err != nil {
		os.Exit(1)
	}
}

// defaultConfigPath places the config next to the executable.
func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return config.DefaultPath
	}
	return filepath.Join(filepath.Dir(exe), config.DefaultPath)
}

