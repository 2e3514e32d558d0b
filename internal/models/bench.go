package models

import "time"

// Sample is one timed race of the benchmark.
type Sample struct {
	RunID     string
	SweepID   string
	Length    int
	Workers   int
	Warmup    bool
	Elapsed   time.Duration
	Shuffles  uint64
	CreatedAt time.Time
}

// Micros returns the elapsed time in microseconds.
func (s Sample) Micros() float64 {
	return float64(s.Elapsed.Nanoseconds()) / 1e3
}

// Stats summarizes the samples of one sequence length. All values are in microseconds.
type Stats struct {
	Length  int
	Count   int
	Average float64
	Min     float64
	Max     float64
	StdDev  float64
	Median  float64
}
