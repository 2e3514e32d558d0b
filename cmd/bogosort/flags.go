package main

import (
	"strconv"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/tupyy/bogorace/internal/config"
	"github.com/tupyy/bogorace/internal/models"
	srvErrors "github.com/tupyy/bogorace/pkg/errors"
)

func notNegative(field string) func(int) error {
	return func(n int) error {
		if n < 0 {
			return srvErrors.NewInvalidConfigurationError(field, "must not be negative")
		}
		return nil
	}
}

type logFlags struct {
	level  *cobraflags.StringFlag
	format *cobraflags.StringFlag
}

func newLogFlags() *logFlags {
	return &logFlags{
		level: &cobraflags.StringFlag{
			Name:       "log-level",
			ViperKey:   "log.level",
			Usage:      "log level: debug, info, warn or error",
			Value:      "info",
			Persistent: true,
			ValidateFunc: func(s string) error {
				if _, err := zapcore.ParseLevel(s); err != nil {
					return srvErrors.NewInvalidConfigurationError("log-level", err.Error())
				}
				return nil
			},
		},
		format: &cobraflags.StringFlag{
			Name:       "log-format",
			ViperKey:   "log.format",
			Usage:      "log format: console or json",
			Value:      "console",
			Persistent: true,
			ValidateFunc: func(s string) error {
				if s != "console" && s != "json" {
					return srvErrors.NewInvalidConfigurationError("log-format", "must be 'console' or 'json'")
				}
				return nil
			},
		},
	}
}

func (f *logFlags) register(cmd *cobra.Command) {
	cobraflags.Register(cmd, f.level, f.format)
}

// raceFlags holds the race settings shared by the root and bench commands. Durations and
// uint64 values have no cobraflags type and are plain pflag flags.
type raceFlags struct {
	workers  *cobraflags.IntFlag
	single   *cobraflags.BoolFlag
	strategy *cobraflags.StringFlag
	min      *cobraflags.IntFlag
	max      *cobraflags.IntFlag
	time     *cobraflags.BoolFlag
}

func newRaceFlags(withTime bool) *raceFlags {
	f := &raceFlags{
		workers: &cobraflags.IntFlag{
			Name:         "workers",
			ViperKey:     "race.workers",
			Shorthand:    "w",
			Usage:        "number of searchers racing, 0 uses every available CPU",
			Value:        8,
			ValidateFunc: notNegative("workers"),
		},
		single: &cobraflags.BoolFlag{
			Name:     "single",
			ViperKey: "race.single",
			Usage:    "search with a single searcher on the calling goroutine",
		},
		strategy: &cobraflags.StringFlag{
			Name:     "strategy",
			ViperKey: "race.strategy",
			Usage:    "how the coordinator waits for the winner: join or poll",
			Value:    string(models.WaitStrategyJoin),
			ValidateFunc: func(s string) error {
				if _, err := models.ParseWaitStrategy(s); err != nil {
					return srvErrors.NewInvalidConfigurationError("strategy", err.Error())
				}
				return nil
			},
		},
		min: &cobraflags.IntFlag{
			Name:     "min",
			ViperKey: "race.min",
			Usage:    "lowest generated value",
			Value:    0,
		},
		max: &cobraflags.IntFlag{
			Name:     "max",
			ViperKey: "race.max",
			Usage:    "generated values are lower than max",
			Value:    100,
		},
	}
	if withTime {
		f.time = &cobraflags.BoolFlag{
			Name:      "time",
			ViperKey:  "race.time",
			Shorthand: "t",
			Usage:     "print the search time in microseconds",
		}
	}
	return f
}

func (f *raceFlags) register(cmd *cobra.Command) {
	cobraflags.Register(cmd, f.workers, f.single, f.strategy, f.min, f.max)
	if f.time != nil {
		f.time.Register(cmd)
	}
	registerTuningFlags(cmd.Flags())
}

func registerTuningFlags(fs *pflag.FlagSet) {
	fs.Duration("poll-interval", config.NewRaceWithOptionsAndDefaults().PollInterval, "upper bound of the poll strategy interval")
	fs.Uint64("seed", 0, "seed of the input and of the searchers, 0 picks a random seed")
	fs.Uint64("check-interval", 1024, "shuffles between two cancellation checks")
}

func (f *raceFlags) options(cmd *cobra.Command) ([]config.RaceOption, error) {
	workers, err := f.workers.GetIntE()
	if err != nil {
		return nil, err
	}
	strategy, err := f.strategy.GetStringE()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	opts := []config.RaceOption{
		config.WithWorkers(workers),
		config.WithSingle(f.single.GetBool()),
		config.WithStrategy(strategy),
		config.WithMin(f.min.GetInt()),
		config.WithMax(f.max.GetInt()),
		config.WithPollInterval(v.GetDuration("poll-interval")),
		config.WithSeed(v.GetUint64("seed")),
		config.WithCheckInterval(v.GetUint64("check-interval")),
	}
	if f.time != nil {
		opts = append(opts, config.WithTime(f.time.GetBool()))
	}
	return opts, nil
}

type benchFlags struct {
	from       *cobraflags.IntFlag
	to         *cobraflags.IntFlag
	warmups    *cobraflags.IntFlag
	samples    *cobraflags.IntFlag
	dataFolder *cobraflags.StringFlag
	xlsx       *cobraflags.StringFlag
}

func newBenchFlags() *benchFlags {
	return &benchFlags{
		from: &cobraflags.IntFlag{
			Name:         "from",
			ViperKey:     "bench.from",
			Usage:        "first sequence length",
			Value:        1,
			ValidateFunc: notNegative("from"),
		},
		to: &cobraflags.IntFlag{
			Name:         "to",
			ViperKey:     "bench.to",
			Usage:        "last sequence length",
			Value:        13,
			ValidateFunc: notNegative("to"),
		},
		warmups: &cobraflags.IntFlag{
			Name:         "warmups",
			ViperKey:     "bench.warmups",
			Usage:        "untimed runs per length",
			Value:        2,
			ValidateFunc: notNegative("warmups"),
		},
		samples: &cobraflags.IntFlag{
			Name:     "samples",
			ViperKey: "bench.samples",
			Usage:    "timed runs per length",
			Value:    30,
			ValidateFunc: func(n int) error {
				if n < 1 {
					return srvErrors.NewInvalidConfigurationError("samples", "must be at least 1")
				}
				return nil
			},
		},
		dataFolder: &cobraflags.StringFlag{
			Name:     "data-folder",
			ViperKey: "bench.data-folder",
			Usage:    "folder of the samples database, in-memory when empty",
		},
		xlsx: &cobraflags.StringFlag{
			Name:     "xlsx",
			ViperKey: "bench.xlsx",
			Usage:    "also write the report to this Excel workbook",
		},
	}
}

func (f *benchFlags) register(cmd *cobra.Command) {
	cobraflags.Register(cmd, f.from, f.to, f.warmups, f.samples, f.dataFolder, f.xlsx)
}

func (f *benchFlags) options() ([]config.BenchOption, error) {
	ints := make([]int, 0, 4)
	for _, flag := range []*cobraflags.IntFlag{f.from, f.to, f.warmups, f.samples} {
		n, err := flag.GetIntE()
		if err != nil {
			return nil, err
		}
		ints = append(ints, n)
	}

	return []config.BenchOption{
		config.WithFrom(ints[0]),
		config.WithTo(ints[1]),
		config.WithWarmups(ints[2]),
		config.WithSamples(ints[3]),
		config.WithDataFolder(f.dataFolder.GetString()),
		config.WithXLSXPath(f.xlsx.GetString()),
	}, nil
}

// loadConfiguration builds the configuration from the flags of cmd. Values given through
// BOGOSORT_* variables were copied into the flags by the pre-run hook.
func loadConfiguration(logs *logFlags, rf *raceFlags, bf *benchFlags, cmd *cobra.Command, args []string) (*config.Configuration, error) {
	raceOpts, err := rf.options(cmd)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		length, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, srvErrors.NewInvalidConfigurationError("length", "must be an integer")
		}
		raceOpts = append(raceOpts, config.WithLength(length))
	}

	var benchOpts []config.BenchOption
	if bf != nil {
		if benchOpts, err = bf.options(); err != nil {
			return nil, err
		}
	}

	cfg := config.NewConfigurationWithOptionsAndDefaults(
		config.WithRace(*config.NewRaceWithOptionsAndDefaults(raceOpts...)),
		config.WithBench(*config.NewBenchWithOptionsAndDefaults(benchOpts...)),
		config.WithLogLevel(logs.level.GetString()),
		config.WithLogFormat(logs.format.GetString()),
	)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
