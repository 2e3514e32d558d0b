package scheduler

import (
	"context"
)

// Work is a unit of work executed by one scheduler worker.
type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	f := &Future[T]{
		input:  input,
		cancel: cancel,
	}

	return f
}

// C returns the channel which receives exactly one value when the work is finished.
func (f *Future[T]) C() chan T {
	return f.input
}

// Wait blocks until the work is finished and returns its result.
func (f *Future[T]) Wait() T {
	return <-f.input
}

func (f *Future[T]) Stop() {
	f.cancel()
}
