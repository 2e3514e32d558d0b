package store

import (
	"context"
	"database/sql"

	"github.com/tupyy/bogorace/internal/store/migrations"
)

// Store provides access to all storage repositories.
type Store struct {
	db      *sql.DB
	samples *SampleStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		samples: NewSampleStore(db),
	}
}

// Migrate creates the tables used by the sub-stores.
func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Samples() *SampleStore {
	return s.samples
}

func (s *Store) Close() error {
	return s.db.Close()
}
