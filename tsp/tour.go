// Tour utilities shared by every solver (Section 4.2).
//
// A Tour here is a permutation of [0, N) of length N — the closing edge
// last→first is implicit, never stored as a duplicate trailing element.
package tsp

import (
	"fmt"
	"math"
	"math/rand"
)

// Tour is an ordered sequence of N distinct city indices.
type Tour []int

// ValidateTour checks that t is a permutation of [0, n).
func ValidateTour(t Tour, n int) error {
	if len(t) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range t {
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// TotalCost sums the cost of every consecutive edge plus the closing edge
// last→first. Infinity-absorbing: any missing edge makes the whole tour
// cost +Inf rather than returning an error (Section 4.2).
//
// Complexity: O(N).
func (t Tour) TotalCost(s *Scenario) float64 {
	n := len(t)
	if n <= 1 {
		return 0 // no edges to traverse; the diagonal is always +Inf
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := s.Cost(t[i], t[j])
		if math.IsInf(w, 1) {
			return math.Inf(1)
		}
		sum += w
	}
	return round1e9(sum)
}

// Copy returns an independent copy of the tour.
func (t Tour) Copy() Tour {
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// ReverseSegment returns a new tour equal to t[0..i] ++ reverse(t[i..=j]) ++
// t[j+1..]. Preconditions: 0 ≤ i < j < N (Section 4.2).
func (t Tour) ReverseSegment(i, j int) (Tour, error) {
	n := len(t)
	if i < 0 || j >= n || i >= j {
		return nil, ErrDimensionMismatch
	}
	out := t.Copy()
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out, nil
}

// KRandomSwap picks k distinct positions and permutes the cities occupying
// them uniformly at random, returning a new tour. Requires k ≤ N. The
// returned tour is built from a fresh copy of t — candidates never alias the
// caller's backing array (Section 9, resolved Open Question).
func (t Tour) KRandomSwap(k int, rng *rand.Rand) (Tour, error) {
	n := len(t)
	if k < 0 || k > n {
		return nil, ErrDimensionMismatch
	}
	out := t.Copy()
	if k <= 1 {
		return out, nil
	}

	// Choose k distinct positions via a full Fisher-Yates shuffle of an
	// index pool, then take its first k entries.
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	shuffleIntsInPlace(pool, rng)
	positions := pool[:k]

	// Permute the cities at those positions uniformly at random: draw a
	// random permutation of the k selected values and reassign.
	values := make([]int, k)
	for i, p := range positions {
		values[i] = out[p]
	}
	shuffleIntsInPlace(values, rng)
	for i, p := range positions {
		out[p] = values[i]
	}
	return out, nil
}

// DebugString renders a compact representation for tests, e.g. "[0 3 1 2]".
func (t Tour) DebugString() string {
	s := "["
	for i, v := range t {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + "]"
}

// EqualModuloRotation reports whether a and b describe the same cyclic order
// (same direction, any rotation).
func EqualModuloRotation(a, b Tour) bool {
	n := len(a)
	if n != len(b) || n == 0 {
		return false
	}
	pivot := -1
	for i, v := range b {
		if v == a[0] {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(pivot+i)%n] {
			return false
		}
	}
	return true
}

// round1e9 stabilizes a cost to 1e-9 absolute precision, damping
// cross-platform floating-point drift without affecting algorithmic
// correctness.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*1e9) / 1e9
}
