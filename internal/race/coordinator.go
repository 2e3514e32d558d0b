package race

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/tupyy/bogorace/internal/models"
	srvErrors "github.com/tupyy/bogorace/pkg/errors"
	"github.com/tupyy/bogorace/pkg/scheduler"
)

const (
	DefaultWorkers      = 8
	DefaultPollInterval = time.Millisecond
)

var errNotPublished = errors.New("result not published yet")

// Result is the outcome of one race.
type Result[T any] struct {
	RunID    uuid.UUID
	Input    []T
	Sorted   []T
	Winner   int
	Workers  int
	Shuffles uint64
	Elapsed  time.Duration
}

type Options struct {
	Workers       int
	Strategy      models.WaitStrategy
	PollInterval  time.Duration
	Seed          uint64
	CheckInterval uint64
}

type Option func(*Options)

// WithWorkers sets the pool size. Zero or less means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

func WithStrategy(s models.WaitStrategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithPollInterval bounds the polling interval of the poll strategy.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		o.PollInterval = d
	}
}

// WithSeed seeds the searchers' generators. Zero picks a random seed per run.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

func WithCheckInterval(n uint64) Option {
	return func(o *Options) {
		o.CheckInterval = n
	}
}

// Coordinator races a fixed pool of searchers over copies of one sequence.
type Coordinator[T constraints.Ordered] struct {
	opts Options

	// test hooks, nil in production
	shuffle      func(*rand.Rand, []T)
	beforeCommit func()
}

func NewCoordinator[T constraints.Ordered](opts ...Option) *Coordinator[T] {
	o := Options{
		Workers:       DefaultWorkers,
		Strategy:      models.WaitStrategyJoin,
		PollInterval:  DefaultPollInterval,
		CheckInterval: DefaultCheckInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	return &Coordinator[T]{opts: o}
}

func (c *Coordinator[T]) Workers() int {
	return c.opts.Workers
}

// Run searches for the sorted permutation of seq and returns once every searcher has exited.
func (c *Coordinator[T]) Run(ctx context.Context, seq []T) (*Result[T], error) {
	runID := uuid.New()
	log := zap.S().Named("coordinator").With("run_id", runID.String())

	input := make([]T, len(seq))
	copy(input, seq)
	reference := slices.Clone(input)
	slices.Sort(reference)

	result := &Result[T]{
		RunID:   runID,
		Input:   input,
		Winner:  -1,
		Workers: c.opts.Workers,
	}

	if len(input) <= 1 {
		result.Sorted = reference
		log.Debugw("sequence already sorted", "length", len(input))
		return result, nil
	}

	log.Debugw("race state", "state", models.CoordinatorStateSpawning, "workers", c.opts.Workers, "length", len(input))

	slot := NewSlot[T]()
	slot.beforeCommit = c.beforeCommit

	sched := scheduler.NewSchedulerWithContext[Outcome](ctx, c.opts.Workers)
	defer sched.Close()

	seed := c.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	start := time.Now()
	col := newCollector(slot, c.opts.Workers)
	for id := range c.opts.Workers {
		s := NewSearcher(id, slices.Clone(input), slices.Clone(reference), slot, rand.New(rand.NewPCG(seed, uint64(id))), c.opts.CheckInterval)
		if c.shuffle != nil {
			s.shuffle = c.shuffle
		}
		col.futures = append(col.futures, sched.AddWork(guard(id, slot, s.Run)))
	}

	log.Debugw("race state", "state", models.CoordinatorStateWaiting, "strategy", c.opts.Strategy, "seed", seed)

	if c.opts.Strategy == models.WaitStrategyPoll {
		if err := c.poll(ctx, slot); err != nil && !slot.Done() {
			slot.Abort(err)
		}
	}
	outcomes := col.collect()

	log.Debugw("race state", "state", models.CoordinatorStateCollecting)

	if err := slot.Err(); err != nil {
		log.Errorw("race failed", "error", err)
		return nil, err
	}

	value, ok := slot.Get()
	if !ok {
		return nil, fmt.Errorf("race %s finished without a published result", runID)
	}
	if err := verify(value, reference); err != nil {
		return nil, err
	}

	result.Sorted = value
	result.Winner = slot.Winner()
	result.Elapsed = slot.FoundAt().Sub(start)
	for _, o := range outcomes {
		result.Shuffles += o.Shuffles
	}

	log.Infow("race finished",
		"state", models.CoordinatorStateDone,
		"winner", result.Winner,
		"shuffles", result.Shuffles,
		"elapsed", result.Elapsed,
	)

	return result, nil
}

// newPollBackOff grows from interval/16 to interval. Jitter is disabled so no wait
// exceeds interval.
func newPollBackOff(interval time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = min(max(interval/16, time.Microsecond), interval)
	b.MaxInterval = interval
	b.RandomizationFactor = 0
	b.Reset()
	return b
}

func verify[T comparable](value, reference []T) error {
	if !slices.Equal(value, reference) {
		return srvErrors.NewResultMismatchError(value, reference)
	}
	return nil
}

// poll waits for the slot with an exponential backoff capped at PollInterval.
func (c *Coordinator[T]) poll(ctx context.Context, slot *Slot[T]) error {
	b := newPollBackOff(c.opts.PollInterval)

	_, err := backoff.Retry(ctx, func() ([]T, error) {
		if err := slot.Err(); err != nil {
			return nil, backoff.Permanent(err)
		}
		v, ok := slot.Get()
		if !ok {
			return nil, errNotPublished
		}
		return v, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(0))

	return err
}

// guard aborts the slot as soon as a searcher panics so the other searchers stop
// without waiting for the coordinator to join the failed one.
func guard[T any](worker int, slot *Slot[T], run scheduler.Work[Outcome]) scheduler.Work[Outcome] {
	return func(ctx context.Context) (Outcome, error) {
		defer func() {
			if rec := recover(); rec != nil {
				slot.Abort(srvErrors.NewWorkerFailedError(worker, fmt.Errorf("%w: %v", scheduler.ErrWorkerPanicked, rec)))
				panic(rec)
			}
		}()
		return run(ctx)
	}
}

// collector joins the searchers' futures.
type collector[T any] struct {
	slot    *Slot[T]
	futures []*scheduler.Future[scheduler.Result[Outcome]]
}

func newCollector[T any](slot *Slot[T], n int) *collector[T] {
	return &collector[T]{
		slot:    slot,
		futures: make([]*scheduler.Future[scheduler.Result[Outcome]], 0, n),
	}
}

func (c *collector[T]) collect() []Outcome {
	outcomes := make([]Outcome, 0, len(c.futures))
	for worker, f := range c.futures {
		r := f.Wait()
		if r.Err == nil {
			outcomes = append(outcomes, r.Data)
			continue
		}
		c.handle(worker, r.Err)
	}
	return outcomes
}

func (c *collector[T]) handle(worker int, err error) {
	if errors.Is(err, scheduler.ErrWorkerPanicked) {
		zap.S().Named("coordinator").Errorw("searcher terminated abnormally", "worker", worker, "error", err)
		c.slot.Abort(srvErrors.NewWorkerFailedError(worker, err))
		return
	}
	// a cancellation racing a published result does not invalidate it
	if c.slot.Done() && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return
	}
	c.slot.Abort(err)
}

// Sequential runs a single searcher on the calling goroutine.
func Sequential[T constraints.Ordered](ctx context.Context, seq []T, rng *rand.Rand) (*Result[T], error) {
	input := make([]T, len(seq))
	copy(input, seq)
	reference := slices.Clone(input)
	slices.Sort(reference)

	result := &Result[T]{RunID: uuid.New(), Input: input, Winner: -1, Workers: 1}
	if len(input) <= 1 {
		result.Sorted = reference
		return result, nil
	}

	slot := NewSlot[T]()
	start := time.Now()
	out, err := NewSearcher(0, slices.Clone(input), reference, slot, rng, DefaultCheckInterval).Run(ctx)
	if err != nil {
		return nil, err
	}

	value, _ := slot.Get()
	if err := verify(value, reference); err != nil {
		return nil, err
	}

	result.Sorted = value
	result.Winner = 0
	result.Shuffles = out.Shuffles
	result.Elapsed = slot.FoundAt().Sub(start)

	zap.S().Named("sequential").Infow("search finished", "run_id", result.RunID.String(), "shuffles", out.Shuffles, "elapsed", result.Elapsed)

	return result, nil
}
