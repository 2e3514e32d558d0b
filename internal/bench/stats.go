package bench

import (
	"math"
	"slices"

	"github.com/tupyy/bogorace/internal/models"
)

// ComputeStats summarizes the timings of one length. With more than three values the
// fastest and the slowest are dropped first. Std-dev is the population deviation and
// the median is the upper middle value.
func ComputeStats(length int, micros []float64) (models.Stats, bool) {
	if len(micros) == 0 {
		return models.Stats{}, false
	}

	sorted := slices.Clone(micros)
	slices.Sort(sorted)
	if len(sorted) > 3 {
		sorted = sorted[1 : len(sorted)-1]
	}

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	avg := sum / float64(len(sorted))

	var sq float64
	for _, v := range sorted {
		sq += (v - avg) * (v - avg)
	}

	return models.Stats{
		Length:  length,
		Count:   len(micros),
		Average: avg,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		StdDev:  math.Sqrt(sq / float64(len(sorted))),
		Median:  sorted[len(sorted)/2],
	}, true
}
