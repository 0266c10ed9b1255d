// SPDX-License-Identifier: MIT

// Package editdist - random sources for tie-breaking.
//
// Reconstruction never touches a global generator. Callers inject a Rand; the
// helpers here give deterministic defaults and independent per-pair streams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines
//     unless it is wrapped with NewLockedRand.
//   - Prefer DeriveRand to hand each worker or each pair its own stream.
package editdist

import (
	"math/rand"
	"sync"
)

// Rand is the only capability Reconstruct needs from a random source.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// DefaultSeed is used when callers pass seed==0 or a nil Rand.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so neighbouring streams are decorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns an independent deterministic stream for (seed, stream).
// The same pair always yields the same sequence, whatever goroutine asks.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(DeriveSeed(seed, stream)))
}

// LockedRand serializes access to an underlying Rand.
type LockedRand struct {
	mu sync.Mutex
	r  Rand
}

// NewLockedRand wraps r for use from several goroutines. A nil r gets the
// DefaultSeed stream. Results stay reproducible only if callers also fix the
// order in which they draw.
func NewLockedRand(r Rand) *LockedRand {
	if r == nil {
		r = NewRand(0)
	}

	return &LockedRand{r: r}
}

// Float64 implements Rand.
func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Float64()
}
