// Package scheduler implements a fixed-size worker pool returning futures.
//
// The scheduler owns N workers. Every call to AddWork enqueues a work function
// and immediately returns a Future that receives exactly one Result when the
// work returns, panics, or is cancelled before it could start.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                          Scheduler[T]                               │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │  Worker N-1  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │                              │
//	│                        └──────┬──────┘                              │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                      Work Queue                         │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                        AddWork(fn)                                  │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Event Loop
//
//	for {
//	    select {
//	    case w := <-s.work:       // new work submitted
//	        s.workQueue.Push(w)
//	        s.dispatch()
//	    case id := <-s.done:      // worker id returned to the pool
//	        s.workers.Push(s.newWorker(id))
//	        s.dispatch()
//	    case <-s.close:           // shutdown
//	        cancel queued work, s.wg.Wait(), return
//	    }
//	}
//
// # Panic Recovery
//
// A panicking work function does not crash the process. Its future receives a
// Result whose error wraps ErrWorkerPanicked, and the worker goes back to the pool.
//
// # Cancellation
//
// Each work request runs with a context derived from the scheduler context:
//   - future.Stop() cancels a single work
//   - Close() cancels every work and waits for in-flight work to return
//
// Close is idempotent. Once it returns no worker goroutine is left running.
//
// # Usage Example
//
//	sched := scheduler.NewScheduler[int](4)
//	defer sched.Close()
//
//	future := sched.AddWork(func(ctx context.Context) (int, error) {
//	    return 42, nil
//	})
//
//	result := future.Wait()
//	if result.Err != nil {
//	    return result.Err
//	}
package scheduler
