package util

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// GenerateSequence returns n pseudo random values in [min, max). The width is computed
// in uint64 so any min < max is accepted.
func GenerateSequence(rng *rand.Rand, n, min, max int) []int {
	width := uint64(1)
	if max > min {
		width = uint64(max) - uint64(min)
	}
	seq := make([]int, 0, n)
	for range n {
		seq = append(seq, min+int(rng.Uint64N(width)))
	}
	return seq
}

// FormatSequence renders a sequence as "[a, b, c]".
func FormatSequence[T any](seq []T) string {
	parts := make([]string, 0, len(seq))
	for _, v := range seq {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Round Method to round to 2 decimals
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

var timeUnits = []string{"µs", "ms", "s"}

// FormatMicros renders a duration given in microseconds using the largest of µs, ms or s
// that keeps the value below 1000, with at most two decimals and no trailing zeros.
func FormatMicros(us float64) string {
	val, _, unit := scaleMicros(us, 0)
	return trimFloat(val) + " " + unit
}

// FormatMicrosWithStdDev renders "<value> <unit> ± <stddev>" with both numbers scaled
// to the unit of the value.
func FormatMicrosWithStdDev(us, stdDev float64) string {
	val, std, unit := scaleMicros(us, stdDev)
	return trimFloat(val) + " " + unit + " ± " + trimFloat(std)
}

func scaleMicros(val, std float64) (float64, float64, string) {
	unit := timeUnits[0]
	for i := 0; i < len(timeUnits)-1; i++ {
		if val < 1000 {
			break
		}
		val /= 1000
		std /= 1000
		unit = timeUnits[i+1]
	}
	return val, std, unit
}

func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
