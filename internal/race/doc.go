// Package race implements a parallel bogosort: a fixed pool of searchers shuffle
// private copies of one sequence and race to find the sorted permutation.
//
// # Components
//
//	Coordinator ──► scheduler.Scheduler[Outcome] ──► Searcher × N
//	     │                                              │
//	     └──────────────── Slot[T] ◄────────────────────┘
//	                (result + termination signal)
//
// Slot is the only shared mutable state. It is written at most once: the first
// searcher whose permutation equals the reference publishes a copy and raises
// the termination signal under the slot lock. Every other searcher reads the
// signal atomically after each shuffle and exits.
//
// # Searcher State Machine
//
//	┌───────────┐  match, won publish   ┌───────┐
//	│ Searching │──────────────────────►│ Found │
//	└───────────┘                       └───────┘
//	      │  signal observed / lost publish / run aborted
//	      ▼
//	┌─────────┐
//	│ Aborted │
//	└─────────┘
//
// Both Found and Aborted are terminal.
//
// # Coordinator State Machine
//
//	┌──────────┐    ┌─────────┐    ┌────────────┐    ┌──────┐
//	│ Spawning │───►│ Waiting │───►│ Collecting │───►│ Done │
//	└──────────┘    └─────────┘    └────────────┘    └──────┘
//
// Waiting ends when every searcher returned (join strategy), or when the slot
// is observed non-empty (poll strategy); the poll strategy still joins every
// searcher before collecting, so no goroutine outlives Run.
//
// # Failures
//
//   - a searcher panicking while holding the slot lock poisons the slot and the
//     run fails with errors.PoisonedStateError
//   - a searcher panicking anywhere else fails the run with errors.WorkerFailedError
//
// In both cases the slot is aborted, the remaining searchers stop and Run
// returns the error once all of them exited. There is no partial result.
//
// # Timing
//
// Result.Elapsed runs from the moment searchers are submitted to the moment the
// winning value is committed to the slot. Join teardown is excluded.
package race
