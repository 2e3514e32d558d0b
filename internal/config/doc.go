// Package config defines the configuration structure for bogorace.
//
// Configuration is organized into two sections (Race, Bench) plus logging
// settings, and uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Race       - race settings shared by the race and bench commands
//	├── Bench      - benchmark sweep settings
//	├── LogFormat  - Logging format ("console" or "json")
//	└── LogLevel   - Logging verbosity
//
// # Race Configuration
//
//	┌───────────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field         │ Default │ Description                                  │
//	├───────────────┼─────────┼──────────────────────────────────────────────┤
//	│ Length        │ 11      │ Length of the generated sequence             │
//	│ Workers       │ 8       │ Searchers per race (0 = GOMAXPROCS)          │
//	│ Strategy      │ "join"  │ Wait strategy: "join" or "poll"              │
//	│ PollInterval  │ 1ms     │ Upper bound of the poll backoff              │
//	│ Seed          │ 0       │ Generator seed (0 = random)                  │
//	│ CheckInterval │ 1024    │ Shuffles between context checks              │
//	│ Min / Max     │ 0 / 100 │ Value range [Min, Max) of generated input    │
//	│ Single        │ false   │ Run the single-threaded baseline             │
//	│ Time          │ false   │ Print the elapsed microseconds               │
//	└───────────────┴─────────┴──────────────────────────────────────────────┘
//
// # Bench Configuration
//
//	┌────────────┬─────────┬─────────────────────────────────────────────────┐
//	│ Field      │ Default │ Description                                     │
//	├────────────┼─────────┼─────────────────────────────────────────────────┤
//	│ From / To  │ 1 / 13  │ Inclusive range of sequence lengths             │
//	│ Warmups    │ 2       │ Untimed runs per length                         │
//	│ Samples    │ 30      │ Timed runs per length                           │
//	│ DataFolder │ ""      │ Folder of the DuckDB file (empty = in-memory)   │
//	│ XLSXPath   │ ""      │ Optional Excel export of the report             │
//	└────────────┴─────────┴─────────────────────────────────────────────────┘
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Race Bench
//
// Generated helpers include NewConfigurationWithOptionsAndDefaults, WithRace,
// WithWorkers, ... and DebugMap() for structured logging:
//
//	log.Info("configuration loaded", zap.Any("config", cfg.DebugMap()))
package config
