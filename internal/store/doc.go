// Package store implements the data access layer for benchmark results.
//
// Samples are persisted in DuckDB, either in a file under the configured data
// folder or in memory when no folder is set.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────┐
//	│               Store (facade)                │
//	├─────────────────────────────────────────────┤
//	│                SampleStore                  │
//	│                     ▼                       │
//	│                  samples                    │
//	└─────────────────────────────────────────────┘
//
// # Tables
//
// Tables are created by the migrations in internal/store/migrations/sql/:
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  samples           │  One row per timed (or warmup) race         │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// Schema:
//
//	samples (
//	    run_id VARCHAR PRIMARY KEY,
//	    sweep_id VARCHAR NOT NULL DEFAULT '',
//	    length INTEGER NOT NULL,
//	    workers INTEGER NOT NULL,
//	    warmup BOOLEAN NOT NULL DEFAULT false,
//	    elapsed_ns BIGINT NOT NULL,
//	    shuffles BIGINT NOT NULL DEFAULT 0,
//	    created_at TIMESTAMP DEFAULT now()
//	)
//
// # List Options
//
// SampleStore.List, Count and Lengths use the functional options pattern. Each
// ListOption modifies the squirrel query builder:
//
//	samples, err := st.Samples().List(ctx,
//	    store.ByLength(5),
//	    store.WithoutWarmups(),
//	    store.WithDefaultSort(),
//	)
//
// Available options:
//
//	BySweep(id string)         WHERE sweep_id = id
//	ByLength(lengths ...int)   WHERE length IN (...)
//	ByWorkers(n int)           WHERE workers = n
//	WithoutWarmups()           WHERE warmup = false
//	WithLimit(limit uint64)    LIMIT limit
//	WithDefaultSort()          ORDER BY length, created_at, run_id
package store
