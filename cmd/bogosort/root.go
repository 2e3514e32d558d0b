package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/bogorace/internal/config"
	"github.com/tupyy/bogorace/internal/models"
	"github.com/tupyy/bogorace/internal/race"
	"github.com/tupyy/bogorace/internal/util"
)

func NewRootCommand(logs *logFlags) *cobra.Command {
	rf := newRaceFlags(true)

	cmd := &cobra.Command{
		Use:   "bogosort [length]",
		Short: "Sort a random sequence by racing parallel bogosort searchers",
		Long: `Generate a random sequence of the given length (11 by default) and sort it by
racing searchers that shuffle private copies until one of them finds the sorted
permutation. Every flag can be set through a BOGOSORT_<FLAG> environment variable.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: cobrautil.CommandStack(cobrautil.SyncViperPreRunE("BOGOSORT"), logs.setupLogger),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(logs, rf, nil, cmd, args)
			if err != nil {
				return err
			}
			zap.S().Named("bogosort").Debugw("configuration", "config", cfg.DebugMap())

			return runRace(cmd, cfg.Race)
		},
	}

	logs.register(cmd)
	rf.register(cmd)

	return cmd
}

func runRace(cmd *cobra.Command, cfg config.Race) error {
	seq := util.GenerateSequence(inputRand(cfg.Seed), cfg.Length, cfg.Min, cfg.Max)

	result, err := newRaceFunc(cfg)(cmd.Context(), seq)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Unsorted: %s\n", util.FormatSequence(result.Input))
	fmt.Fprintf(out, "Sorted: %s\n", util.FormatSequence(result.Sorted))
	if cfg.Time {
		fmt.Fprintln(out, result.Elapsed.Microseconds())
	}

	return nil
}

// newRaceFunc returns the sort used by both commands: a coordinated race, or the
// single searcher baseline.
func newRaceFunc(cfg config.Race) func(context.Context, []int) (*race.Result[int], error) {
	if cfg.Single {
		rng := searcherRand(cfg.Seed)
		return func(ctx context.Context, seq []int) (*race.Result[int], error) {
			return race.Sequential(ctx, seq, rng)
		}
	}

	// validated beforehand
	strategy, _ := models.ParseWaitStrategy(cfg.Strategy)
	coordinator := race.NewCoordinator[int](
		race.WithWorkers(cfg.Workers),
		race.WithStrategy(strategy),
		race.WithPollInterval(cfg.PollInterval),
		race.WithSeed(cfg.Seed),
		race.WithCheckInterval(cfg.CheckInterval),
	)
	return coordinator.Run
}

// inputRand uses its own stream so a seeded input differs from the searchers' shuffles.
func inputRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, math.MaxUint64))
}

func searcherRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, 0))
}
