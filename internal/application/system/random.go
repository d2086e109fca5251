package system

import "math/rand"

// Between returns a random integer in [min, max], both ends included.
func Between(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + rng.Intn(max-min+1)
}

// FloatBetween returns a random float in [min, max).
func FloatBetween(rng *rand.Rand, min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + rng.Float64()*(max-min)
}
