package models

import "fmt"

// SearcherState represents the state of a single searcher.
type SearcherState string

const (
	// SearcherStateSearching - shuffling and comparing
	SearcherStateSearching SearcherState = "searching"
	// SearcherStateFound - this searcher found the sorted permutation
	SearcherStateFound SearcherState = "found"
	// SearcherStateAborted - another searcher won or the run was aborted
	SearcherStateAborted SearcherState = "aborted"
)

func (s SearcherState) Terminal() bool {
	return s == SearcherStateFound || s == SearcherStateAborted
}

// CoordinatorState represents the state of a race run.
type CoordinatorState string

const (
	CoordinatorStateSpawning   CoordinatorState = "spawning"
	CoordinatorStateWaiting    CoordinatorState = "waiting"
	CoordinatorStateCollecting CoordinatorState = "collecting"
	CoordinatorStateDone       CoordinatorState = "done"
)

// WaitStrategy selects how the coordinator waits for the published result.
type WaitStrategy string

const (
	// WaitStrategyJoin waits for every searcher to exit, then reads the result slot.
	WaitStrategyJoin WaitStrategy = "join"
	// WaitStrategyPoll polls the result slot with a bounded interval, then joins.
	WaitStrategyPoll WaitStrategy = "poll"
)

func ParseWaitStrategy(s string) (WaitStrategy, error) {
	switch s {
	case "join":
		return WaitStrategyJoin, nil
	case "poll":
		return WaitStrategyPoll, nil
	default:
		return "", fmt.Errorf("invalid wait strategy: %s", s)
	}
}
