package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tupyy/bogorace/internal/models"
)

const samplesTable = "samples"

// SampleStore persists benchmark samples.
type SampleStore struct {
	db QueryInterceptor
}

func NewSampleStore(db QueryInterceptor) *SampleStore {
	return &SampleStore{db: db}
}

// Add stores one sample.
func (s *SampleStore) Add(ctx context.Context, sample models.Sample) error {
	query, args, err := sq.Insert(samplesTable).
		Columns("run_id", "sweep_id", "length", "workers", "warmup", "elapsed_ns", "shuffles").
		Values(sample.RunID, sample.SweepID, sample.Length, sample.Workers, sample.Warmup, sample.Elapsed.Nanoseconds(), int64(sample.Shuffles)).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *SampleStore) List(ctx context.Context, opts ...ListOption) ([]models.Sample, error) {
	builder := sq.Select(
		"run_id",
		"sweep_id",
		"length",
		"workers",
		"warmup",
		"elapsed_ns",
		"shuffles",
		"created_at",
	).From(samplesTable)

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var (
			sample    models.Sample
			elapsedNs int64
			shuffles  int64
		)
		err := rows.Scan(
			&sample.RunID,
			&sample.SweepID,
			&sample.Length,
			&sample.Workers,
			&sample.Warmup,
			&elapsedNs,
			&shuffles,
			&sample.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sample.Elapsed = time.Duration(elapsedNs)
		sample.Shuffles = uint64(shuffles)
		samples = append(samples, sample)
	}

	return samples, rows.Err()
}

// Lengths returns the distinct lengths having at least one timed sample, ascending.
func (s *SampleStore) Lengths(ctx context.Context, opts ...ListOption) ([]int, error) {
	builder := sq.Select("DISTINCT length").
		From(samplesTable).
		Where(sq.Eq{"warmup": false})

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.OrderBy("length").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lengths []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		lengths = append(lengths, n)
	}
	return lengths, rows.Err()
}

func (s *SampleStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From(samplesTable)

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func BySweep(id string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"sweep_id": id})
	}
}

func ByLength(lengths ...int) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(lengths) == 0 {
			return b
		}
		return b.Where(sq.Eq{"length": lengths})
	}
}

func ByWorkers(workers int) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"workers": workers})
	}
}

func WithoutWarmups() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"warmup": false})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("length", "created_at", "run_id")
	}
}
