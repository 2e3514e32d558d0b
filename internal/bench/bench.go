package bench

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tupyy/bogorace/internal/config"
	"github.com/tupyy/bogorace/internal/models"
	"github.com/tupyy/bogorace/internal/race"
	"github.com/tupyy/bogorace/internal/store"
	"github.com/tupyy/bogorace/internal/util"
)

// RaceFunc sorts one sequence. It is either a Coordinator.Run or the sequential baseline.
type RaceFunc func(ctx context.Context, seq []int) (*race.Result[int], error)

// Generator returns a fresh input of length n.
type Generator func(n int) []int

// Runner sweeps sequence lengths, times races and stores every sample.
type Runner struct {
	cfg   config.Bench
	race  RaceFunc
	gen   Generator
	store *store.Store
	out   io.Writer
	sweep string

	warmup *color.Color
	length *color.Color
}

func NewRunner(cfg config.Bench, st *store.Store, raceFn RaceFunc, gen Generator, out io.Writer) *Runner {
	return &Runner{
		cfg:    cfg,
		race:   raceFn,
		gen:    gen,
		store:  st,
		out:    out,
		sweep:  uuid.NewString(),
		warmup: color.New(color.FgYellow),
		length: color.New(color.FgCyan, color.Bold),
	}
}

// Run executes the sweep. Cancelling ctx stops the sweep; the samples gathered so far are
// still reported and the report is flagged as interrupted.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	log := zap.S().Named("bench").With("sweep_id", r.sweep)
	report := &Report{}

sweep:
	for n := r.cfg.From; n <= r.cfg.To; n++ {
		for range r.cfg.Warmups {
			if err := r.sample(ctx, n, true); err != nil {
				if isInterrupt(err) {
					report.Interrupted = true
					break sweep
				}
				return nil, err
			}
		}
		for range r.cfg.Samples {
			if err := r.sample(ctx, n, false); err != nil {
				if isInterrupt(err) {
					report.Interrupted = true
					break sweep
				}
				return nil, err
			}
		}
	}

	if report.Interrupted {
		fmt.Fprintln(r.out, "interrupted")
		log.Infow("benchmark interrupted, reporting partial results")
	}

	// the sweep context may be cancelled already, the report reads from a fresh one
	stats, err := r.collect(context.WithoutCancel(ctx))
	if err != nil {
		return nil, err
	}
	report.Stats = stats

	return report, nil
}

func (r *Runner) sample(ctx context.Context, n int, warmup bool) error {
	label := r.length.Sprintf("n=%d", n)
	if warmup {
		label = r.warmup.Sprint("Warmup:") + " " + label
	}

	result, err := r.race(ctx, r.gen(n))
	if err != nil {
		return err
	}

	s := models.Sample{
		RunID:    result.RunID.String(),
		SweepID:  r.sweep,
		Length:   n,
		Workers:  result.Workers,
		Warmup:   warmup,
		Elapsed:  result.Elapsed,
		Shuffles: result.Shuffles,
	}
	fmt.Fprintf(r.out, "%s %s\n", label, util.FormatMicros(s.Micros()))

	return r.store.Samples().Add(context.WithoutCancel(ctx), s)
}

func (r *Runner) collect(ctx context.Context) ([]models.Stats, error) {
	lengths, err := r.store.Samples().Lengths(ctx, store.BySweep(r.sweep))
	if err != nil {
		return nil, fmt.Errorf("failed to read measured lengths: %w", err)
	}

	stats := make([]models.Stats, 0, len(lengths))
	for _, n := range lengths {
		samples, err := r.store.Samples().List(ctx, store.BySweep(r.sweep), store.ByLength(n), store.WithoutWarmups(), store.WithDefaultSort())
		if err != nil {
			return nil, fmt.Errorf("failed to read samples of length %d: %w", n, err)
		}
		micros := make([]float64, 0, len(samples))
		for _, s := range samples {
			micros = append(micros, s.Micros())
		}
		if st, ok := ComputeStats(n, micros); ok {
			stats = append(stats, st)
		}
	}
	return stats, nil
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
