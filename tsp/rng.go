// Deterministic RNG plumbing shared by every heuristic solver (greedy random
// restarts, k-swap perturbation, the multi-seed tournament). Every randomized
// routine in this package takes its randomness from here — nothing reaches
// for time.Now() or an ambient global source.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed stream used whenever a caller passes Seed == 0,
// so DefaultOptions() still yields reproducible runs.
const defaultRNGSeed int64 = 1

// rngFromSeed builds the *rand.Rand a Solver method derives all of its
// randomness from. seed == 0 maps to defaultRNGSeed; any other value is used
// as-is.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed with a stream id via a SplitMix64-style
// finalizer (Vigna 2014), giving well-distributed, uncorrelated children even
// for adjacent stream ids.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG returns an independent RNG stream for restart/seed index stream,
// decorrelated from base and from every other stream id. base.Int63() is
// consumed once per call so that reusing the same stream id twice against the
// same base never hands back identical children. A nil base derives from
// defaultRNGSeed instead.
//
// Used to give each of the tournament's S independent seeds (Section 4.6) its
// own stream rather than having them share one *rand.Rand sequentially.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace Fisher-Yates shuffles a using rng. A nil rng falls back
// to the default deterministic stream.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a permutation of [0, n) shuffled by rng (or the default
// stream, if rng is nil). Returns ErrDimensionMismatch for n < 0.
func permRange(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrDimensionMismatch
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)
	return p, nil
}
