package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/bogorace/internal/bench"
	"github.com/tupyy/bogorace/internal/store"
	"github.com/tupyy/bogorace/internal/util"
)

const benchDatabase = "bench.duckdb"

func NewBenchCommand(logs *logFlags) *cobra.Command {
	rf := newRaceFlags(false)
	bf := newBenchFlags()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time races over a range of sequence lengths",
		Long: `Run warmups then timed races for every length of the range and print a markdown
table of the average, min and max search times. Interrupting the sweep prints the
results gathered so far.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(logs, rf, bf, cmd, args)
			if err != nil {
				return err
			}
			log := zap.S().Named("bench")
			log.Debugw("configuration", "config", cfg.DebugMap())

			path := ":memory:"
			if cfg.Bench.DataFolder != "" {
				if err := os.MkdirAll(cfg.Bench.DataFolder, 0o755); err != nil {
					return err
				}
				path = filepath.Join(cfg.Bench.DataFolder, benchDatabase)
			}
			db, err := store.NewDB(path)
			if err != nil {
				return fmt.Errorf("failed to open samples database %s: %w", path, err)
			}
			st := store.NewStore(db)
			defer st.Close()

			if err := st.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("failed to migrate samples database: %w", err)
			}

			rng := inputRand(cfg.Race.Seed)
			gen := func(n int) []int {
				return util.GenerateSequence(rng, n, cfg.Race.Min, cfg.Race.Max)
			}

			runner := bench.NewRunner(cfg.Bench, st, newRaceFunc(cfg.Race), gen, cmd.OutOrStdout())
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), report.Markdown())

			if cfg.Bench.XLSXPath != "" {
				if err := report.WriteXLSX(cfg.Bench.XLSXPath); err != nil {
					return err
				}
				log.Infow("report written", "path", cfg.Bench.XLSXPath)
			}

			return nil
		},
	}

	rf.register(cmd)
	bf.register(cmd)

	return cmd
}
