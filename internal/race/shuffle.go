package race

import "math/rand/v2"

// Shuffle permutes s in place (Fisher-Yates). Every ordering is equally likely
// under a uniform generator.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
