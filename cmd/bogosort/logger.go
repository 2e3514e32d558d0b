package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	srvErrors "github.com/tupyy/bogorace/pkg/errors"
)

// setupLogger installs the global logger. Logs go to stderr, stdout carries the results.
func (f *logFlags) setupLogger(_ *cobra.Command, _ []string) error {
	levelName, err := f.level.GetStringE()
	if err != nil {
		return err
	}
	format, err := f.format.GetStringE()
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return srvErrors.NewInvalidConfigurationError("log-level", err.Error())
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return srvErrors.NewInvalidConfigurationError("log-format", "must be 'console' or 'json'")
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	return nil
}
