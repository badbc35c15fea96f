// Christofides 1.5-approximation (supplemented algorithm; Section
// "Christofides" in the glossary). Requires a symmetric, metric scenario.
//
// Pipeline: minimum spanning tree → odd-degree vertex collection → greedy
// (or, when available, exact) perfect matching on the odd set → Eulerian
// circuit on the resulting multigraph → shortcut repeated visits into a
// Hamiltonian cycle.
//
// Guarantee: for a metric symmetric instance, the returned tour's cost is at
// most 1.5x optimal whenever the matching step is a true minimum-weight
// perfect matching; greedyMatch is a fallback that keeps the pipeline valid
// but does not itself carry the 1.5 factor.
package tsp

import "errors"

// SolveChristofides runs the Christofides pipeline on s. Returns
// ErrAsymmetricUnsupported if s is not symmetric.
func SolveChristofides(s *Scenario) (Result, error) {
	n := s.N()
	if n == 0 {
		return Result{}, nil
	}
	if n == 1 {
		return Result{Cost: 0, Tour: Tour{0}, Count: 1}, nil
	}
	if !s.Symmetric() {
		return Result{}, ErrAsymmetricUnsupported
	}

	mstWeight, adj, err := MinimumSpanningTree(s)
	if err != nil {
		return Result{}, err
	}
	_ = mstWeight // not needed beyond building the multigraph

	odd := make([]int, 0, n/2+1)
	for v := 0; v < n; v++ {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}

	if mErr := blossomMatch(odd, s, adj); mErr != nil {
		if errors.Is(mErr, ErrMatchingNotImplemented) {
			greedyMatch(odd, s, adj)
		}
	}

	euler := EulerianCircuit(adj, 0)
	tour := shortcutEulerianToHamiltonian(euler, n)

	return Result{
		Cost:  Tour(tour).TotalCost(s),
		Tour:  tour,
		Count: 1,
	}, nil
}

// shortcutEulerianToHamiltonian walks euler in order, keeping only the first
// occurrence of each city, producing a permutation of [0, n).
func shortcutEulerianToHamiltonian(euler []int, n int) Tour {
	visited := make([]bool, n)
	tour := make(Tour, 0, n)
	for _, v := range euler {
		if !visited[v] {
			visited[v] = true
			tour = append(tour, v)
		}
	}
	return tour
}
