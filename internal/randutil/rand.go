// Package randutil derives reproducible math/rand/v2 sources from int64 seeds.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed of an independent stream numbered stream under
// seed. Simulations give each chunk of trials its own stream so results do
// not depend on how chunks are spread across workers.
func Derive(seed int64, stream uint64) int64 {
	return int64(mix(uint64(seed) ^ mix((stream+1)*goldenRatio64)))
}

// NewStream is shorthand for New(Derive(seed, stream)).
func NewStream(seed int64, stream uint64) *rand.Rand {
	return New(Derive(seed, stream))
}

// RandomSeed returns a fresh seed for callers that did not supply one.
func RandomSeed() int64 {
	return rand.Int64()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
