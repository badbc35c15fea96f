// Greedy initializer (Section 4.3): deterministic sweep over every start
// city, and a randomized single-start variant used to seed the B&B's BSSF
// and the local-search tournament.
package tsp

import (
	"math"
	"math/rand"
	"time"
)

// nearestNeighborTour builds a tour starting at `start` by repeatedly
// choosing the unvisited city of minimum outgoing cost from the current
// head, breaking ties by lowest index. Resolved bug (Section 9): the
// visited set is keyed by city index, never by tour position.
//
// If no reachable (finite-cost) unvisited city remains, the sweep stops and
// the remaining cities are appended in index order so the result is still a
// full permutation — just one whose TotalCost is infinite.
func nearestNeighborTour(s *Scenario, start int) Tour {
	n := s.N()
	visited := make([]bool, n)
	tour := make(Tour, 1, n)
	tour[0] = start
	visited[start] = true
	head := start

	for len(tour) < n {
		best := -1
		var bestCost float64
		for c := 0; c < n; c++ {
			if visited[c] {
				continue
			}
			w := s.Cost(head, c)
			if best == -1 || w < bestCost {
				best, bestCost = c, w
			}
		}
		if best == -1 {
			break // n == len(tour) already, unreachable in practice
		}
		if math.IsInf(bestCost, 1) {
			for c := 0; c < n; c++ {
				if !visited[c] {
					tour = append(tour, c)
					visited[c] = true
				}
			}
			break
		}
		tour = append(tour, best)
		visited[best] = true
		head = best
	}
	return tour
}

// GreedySweep tries all N possible start cities and returns the best
// finite-cost tour found. If no start yields a finite tour, it returns the
// first tour produced together with its (infinite) cost. A zero deadline
// means no time budget; otherwise the sweep exits early once the deadline
// passes, having tried as many starts as it could.
func GreedySweep(s *Scenario, deadline time.Time) (Tour, float64) {
	n := s.N()
	if n == 0 {
		return Tour{}, 0
	}
	var (
		best     Tour
		bestCost = math.Inf(1)
		any      bool
	)
	for start := 0; start < n; start++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		t := nearestNeighborTour(s, start)
		c := t.TotalCost(s)
		if !any || c < bestCost {
			best, bestCost, any = t, c, true
		}
	}
	return best, bestCost
}

// GreedyRandom picks a uniform random start in [0, N) via rng and builds a
// nearest-neighbor tour from it (Section 4.3, "Randomized single start").
// Resolved Open Question: the start range is [0, N), never [0, N] inclusive.
func GreedyRandom(s *Scenario, rng *rand.Rand) (Tour, float64) {
	n := s.N()
	if n == 0 {
		return Tour{}, 0
	}
	start := rng.Intn(n)
	t := nearestNeighborTour(s, start)
	return t, t.TotalCost(s)
}

// greedySeedBSSF runs GreedyRandom up to restarts times and keeps the best
// finite-cost tour, seeding the branch-and-bound's initial BSSF (Section
// 4.5, "Initialization"). If nothing finite is found, bestCost is +Inf and
// the caller relies on exhaustive search.
func greedySeedBSSF(s *Scenario, rng *rand.Rand, restarts int) (Tour, float64) {
	var (
		best     Tour
		bestCost = math.Inf(1)
	)
	for i := 0; i < restarts; i++ {
		t, c := GreedyRandom(s, rng)
		if c < bestCost {
			best, bestCost = t, c
		}
	}
	return best, bestCost
}
