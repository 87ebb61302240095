package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/interaction-filter/internal/check"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/config"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/logger"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitConfig   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var logLevel string
	var logFormat string

	flag.StringVar(&configPath, "config", "config/groupcheck.yaml", "path to the pair-check configuration")
	flag.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	flag.StringVar(&logFormat, "log-format", "", "log format (text, json); overrides the config file")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.SetDefault(logger.NewText("info", os.Stderr))
		logger.Error("failed to load config", "path", configPath, "error", err)
		return exitConfig
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	logger.SetDefault(logger.NewFormat(cfg.LogFormat, cfg.LogLevel, os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := exitOK

	if len(cfg.Cases) > 0 {
		report, err := check.Run(ctx, cfg.Cases, logger.Default)
		if err != nil {
			return interrupted(err)
		}
		if !report.OK() {
			code = exitMismatch
		}
	}

	if cfg.Sweep.Enabled() {
		report, err := check.Sweep(ctx, *cfg.Sweep, logger.Default)
		if err != nil {
			return interrupted(err)
		}
		if !report.OK() {
			for _, v := range report.Violations {
				logger.Error("law violated", "law", v.Law, "a", v.A.String(), "b", v.B.String())
			}
			code = exitMismatch
		}
	}

	return code
}

func interrupted(err error) int {
	if errors.Is(err, context.Canceled) {
		logger.Warn("check interrupted")
	} else {
		logger.Error("check failed", "error", err)
	}
	return exitMismatch
}
