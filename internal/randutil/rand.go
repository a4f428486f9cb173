// Package randutil builds the seeded random sources used to pick answers.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. A zero seed
// means "not chosen" and is replaced with one derived from the current time.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = Seed()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns a non-zero seed derived from the wall clock.
func Seed() int64 {
	s := time.Now().UnixNano()
	if s == 0 {
		return 1
	}
	return s
}

// mix is the splitmix64 finaliser, spreading nearby seeds apart.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
