package config

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/tupyy/bogorace/internal/models"
	srvErrors "github.com/tupyy/bogorace/pkg/errors"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Race Bench

type Configuration struct {
	Race      Race   `debugmap:"visible"`
	Bench     Bench  `debugmap:"visible"`
	LogFormat string `debugmap:"visible" default:"console"`
	LogLevel  string `debugmap:"visible" default:"info"`
}

type Race struct {
	Length        int           `debugmap:"visible" default:"11"`
	Workers       int           `debugmap:"visible" default:"8"`
	Strategy      string        `debugmap:"visible" default:"join"`
	PollInterval  time.Duration `debugmap:"visible" default:"1ms"`
	Seed          uint64        `debugmap:"visible" default:"0"`
	CheckInterval uint64        `debugmap:"visible" default:"1024"`
	Min           int           `debugmap:"visible" default:"0"`
	Max           int           `debugmap:"visible" default:"100"`
	Single        bool          `debugmap:"visible" default:"false"`
	Time          bool          `debugmap:"visible" default:"false"`
}

type Bench struct {
	From       int    `debugmap:"visible" default:"1"`
	To         int    `debugmap:"visible" default:"13"`
	Warmups    int    `debugmap:"visible" default:"2"`
	Samples    int    `debugmap:"visible" default:"30"`
	DataFolder string `debugmap:"visible" default:""`
	XLSXPath   string `debugmap:"visible" default:""`
}

// Validate checks the values which cannot be expressed by flag types alone.
func (c *Configuration) Validate() error {
	if err := c.Race.Validate(); err != nil {
		return err
	}
	if err := c.Bench.Validate(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return srvErrors.NewInvalidConfigurationError("log-level", err.Error())
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return srvErrors.NewInvalidConfigurationError("log-format", "must be 'console' or 'json'")
	}
	return nil
}

func (r *Race) Validate() error {
	if r.Length < 0 {
		return srvErrors.NewInvalidConfigurationError("length", "must not be negative")
	}
	if r.Workers < 0 {
		return srvErrors.NewInvalidConfigurationError("workers", "must not be negative")
	}
	if _, err := models.ParseWaitStrategy(r.Strategy); err != nil {
		return srvErrors.NewInvalidConfigurationError("strategy", err.Error())
	}
	if r.PollInterval <= 0 {
		return srvErrors.NewInvalidConfigurationError("poll-interval", "must be positive")
	}
	if r.Min >= r.Max {
		return srvErrors.NewInvalidConfigurationError("min", "must be lower than max")
	}
	if r.Max-r.Min <= 0 {
		return srvErrors.NewInvalidConfigurationError("max", "value range overflows an int")
	}
	return nil
}

func (b *Bench) Validate() error {
	if b.From < 0 || b.From > b.To {
		return srvErrors.NewInvalidConfigurationError("from", "must be in [0, to]")
	}
	if b.Warmups < 0 {
		return srvErrors.NewInvalidConfigurationError("warmups", "must not be negative")
	}
	if b.Samples < 1 {
		return srvErrors.NewInvalidConfigurationError("samples", "must be at least 1")
	}
	return nil
}
