package race

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	srvErrors "github.com/tupyy/bogorace/pkg/errors"
)

// Slot is the write-once result cell shared by the searchers of one race.
// The termination signal is stored after the value, under the same lock,
// so a searcher observing Done() == true implies the value is set.
type Slot[T any] struct {
	mu      sync.Mutex
	value   []T
	set     bool
	winner  int
	foundAt time.Time
	err     error

	signal  atomic.Bool
	aborted atomic.Bool

	// test hook invoked under the lock right before the value is committed
	beforeCommit func()
}

func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{winner: -1}
}

// Publish stores a copy of v if the slot is still empty and raises the termination signal.
// It reports whether this call won the race. A panic while holding the lock poisons the slot.
func (s *Slot[T]) Publish(worker int, v []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			s.abortLocked(srvErrors.NewPoisonedStateError(worker, rec))
			panic(rec)
		}
	}()

	if s.set || s.err != nil {
		return false
	}
	if s.beforeCommit != nil {
		s.beforeCommit()
	}

	s.value = slices.Clone(v)
	s.winner = worker
	s.foundAt = time.Now()
	s.set = true
	s.signal.Store(true)

	return true
}

// Done reports whether a result has been published.
func (s *Slot[T]) Done() bool {
	return s.signal.Load()
}

// Stopped reports whether searchers must exit, either because a result exists or the run was aborted.
func (s *Slot[T]) Stopped() bool {
	return s.signal.Load() || s.aborted.Load()
}

// Abort fails the run. Only the first cause is kept.
func (s *Slot[T]) Abort(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abortLocked(err)
}

func (s *Slot[T]) abortLocked(err error) {
	if s.err == nil {
		s.err = err
	}
	s.aborted.Store(true)
}

func (s *Slot[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Get returns a copy of the published value.
func (s *Slot[T]) Get() ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, false
	}
	return slices.Clone(s.value), true
}

// Winner returns the id of the publishing searcher or -1.
func (s *Slot[T]) Winner() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner
}

func (s *Slot[T]) FoundAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.foundAt
}
