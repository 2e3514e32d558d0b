package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrWorkerPanicked is wrapped by the error of every result produced by a panicking work.
var ErrWorkerPanicked = errors.New("worker panicked")

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type workRequest[T any] struct {
	fn  Work[T]
	c   chan Result[T]
	ctx context.Context
}

type worker[T any] struct {
	id   int
	done chan int
	wg   *sync.WaitGroup
}

func (w worker[T]) Work(r workRequest[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[T]{Err: fmt.Errorf("%w: %v", ErrWorkerPanicked, rec)}
		}
		w.done <- w.id
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[T]{Data: v, Err: err}
}

// Scheduler runs submitted work on a fixed pool of workers.
type Scheduler[T any] struct {
	size       int
	workers    *queue[worker[T]]
	workQueue  *queue[workRequest[T]]
	close      chan any
	stopped    chan any
	done       chan int
	work       chan workRequest[T]
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

func NewScheduler[T any](nbWorkers int) *Scheduler[T] {
	return NewSchedulerWithContext[T](context.Background(), nbWorkers)
}

// NewSchedulerWithContext creates a scheduler whose work contexts derive from ctx.
// Cancelling ctx cancels every submitted work but does not close the scheduler.
func NewSchedulerWithContext[T any](ctx context.Context, nbWorkers int) *Scheduler[T] {
	if nbWorkers < 1 {
		nbWorkers = 1
	}
	mainCtx, cancel := context.WithCancel(ctx)
	s := &Scheduler[T]{
		size:       nbWorkers,
		workers:    &queue[worker[T]]{},
		workQueue:  &queue[workRequest[T]]{},
		close:      make(chan any),
		stopped:    make(chan any),
		done:       make(chan int, nbWorkers),
		work:       make(chan workRequest[T]),
		mainCtx:    mainCtx,
		mainCancel: cancel,
	}
	for i := range nbWorkers {
		s.workers.Push(s.newWorker(i))
	}
	go s.run()
	return s
}

// Size returns the number of workers of the pool.
func (s *Scheduler[T]) Size() int {
	return s.size
}

func (s *Scheduler[T]) AddWork(w Work[T]) *Future[Result[T]] {
	c := make(chan Result[T], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.stopped:
		c <- Result[T]{Err: context.Canceled}
	case <-s.mainCtx.Done():
		// we're closing here so send a result with an error
		c <- Result[T]{Err: context.Canceled}
	case s.work <- workRequest[T]{w, c, ctx}:
	}

	return NewFuture(c, cancel)
}

// Close cancels all work and returns once every in-flight work has returned.
func (s *Scheduler[T]) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.stopped
	})
}

func (s *Scheduler[T]) newWorker(id int) worker[T] {
	return worker[T]{id: id, done: s.done, wg: &s.wg}
}

func (s *Scheduler[T]) run() {
	defer close(s.stopped)
	for {
		select {
		case w := <-s.work:
			s.workQueue.Push(w)
			s.dispatch()
		case id := <-s.done:
			s.workers.Push(s.newWorker(id))
			s.dispatch()
		case <-s.close:
			for s.workQueue.Len() > 0 {
				r := s.workQueue.Pop()
				r.c <- Result[T]{Err: context.Canceled}
			}
			s.wg.Wait()
			return
		}
	}
}

// dispatch drains the workQueue as much as possible
// based on available workers
func (s *Scheduler[T]) dispatch() {
	for s.workers.Len() > 0 && s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		w := s.workers.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}
