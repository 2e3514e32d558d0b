package race

import (
	"context"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"

	"github.com/tupyy/bogorace/internal/models"
)

const DefaultCheckInterval = 1024

// Outcome is what a searcher reports when it reaches a terminal state.
type Outcome struct {
	Worker   int
	State    models.SearcherState
	Shuffles uint64
}

// Searcher shuffles a private working copy until it equals the target
// or the slot tells it to stop.
type Searcher[T comparable] struct {
	id            int
	work          []T
	target        []T
	slot          *Slot[T]
	rng           *rand.Rand
	checkInterval uint64
	shuffle       func(*rand.Rand, []T) // Shuffle unless replaced by tests
}

// NewSearcher takes ownership of work. target is only read.
func NewSearcher[T comparable](id int, work, target []T, slot *Slot[T], rng *rand.Rand, checkInterval uint64) *Searcher[T] {
	if checkInterval == 0 {
		checkInterval = DefaultCheckInterval
	}
	return &Searcher[T]{
		id:            id,
		work:          work,
		target:        target,
		slot:          slot,
		rng:           rng,
		checkInterval: checkInterval,
		shuffle:       Shuffle[T],
	}
}

// Run loops until the searcher is Found or Aborted. The context is checked every checkInterval shuffles.
func (s *Searcher[T]) Run(ctx context.Context) (Outcome, error) {
	out := Outcome{Worker: s.id, State: models.SearcherStateSearching}

	for !out.State.Terminal() {
		s.shuffle(s.rng, s.work)
		out.Shuffles++

		switch {
		case slices.Equal(s.work, s.target):
			if s.slot.Publish(s.id, s.work) {
				out.State = models.SearcherStateFound
			} else {
				out.State = models.SearcherStateAborted
			}
		case s.slot.Stopped():
			out.State = models.SearcherStateAborted
		case out.Shuffles%s.checkInterval == 0:
			if err := ctx.Err(); err != nil {
				out.State = models.SearcherStateAborted
				return out, err
			}
		}
	}

	s.log(out)
	return out, nil
}

func (s *Searcher[T]) log(out Outcome) {
	zap.S().Named("searcher").Debugw("searcher stopped", "worker", out.Worker, "state", out.State, "shuffles", out.Shuffles)
}
