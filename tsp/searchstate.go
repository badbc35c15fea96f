// SearchState: a node in the branch-and-bound tree (Section 4.4).
//
// No parent back-pointer is retained (Section 9, "Parent reference in
// state"): a child reads what it needs from its parent at construction time
// and is otherwise self-sufficient, avoiding cyclic references.
package tsp

import "math"

// SearchState is a tuple (bound, matrix, path, last); see Section 3.
type SearchState struct {
	Bound  float64
	Matrix *CostMatrix
	Path   []int
	Last   int
}

// NewRootState builds the root state from a start city c0: the full cost
// matrix (diagonal +Inf) is reduced once, and bound starts at the reduction
// cost (Section 4.4, "Construction from a root city").
func NewRootState(s *Scenario, c0 int) *SearchState {
	m := NewCostMatrix(s)
	reduction := m.Reduce()
	return &SearchState{
		Bound:  reduction,
		Matrix: m,
		Path:   []int{c0},
		Last:   c0,
	}
}

// child builds the state reached by committing edge (p.Last -> nextCity).
// Returns ok=false if that edge is infeasible (infinite cost).
func (p *SearchState) child(nextCity int) (state *SearchState, ok bool) {
	edgeCost := p.Matrix.At(p.Last, nextCity)
	if math.IsInf(edgeCost, 1) {
		return nil, false
	}

	m := p.Matrix.Clone()
	m.Block(p.Last, nextCity)
	if len(p.Path)+1 < m.N() {
		// Keep the edge back to the start city closed until the path is full.
		m.Set(nextCity, p.Path[0], math.Inf(1))
	}
	reduction := m.Reduce()

	path := make([]int, len(p.Path)+1)
	copy(path, p.Path)
	path[len(p.Path)] = nextCity

	return &SearchState{
		Bound:  p.Bound + edgeCost + reduction,
		Matrix: m,
		Path:   path,
		Last:   nextCity,
	}, true
}

// Expand yields one child per index j for which matrix[last, j] is finite
// (Section 4.4). Pruning against the current BSSF is the caller's
// responsibility (Section 4.5).
func (p *SearchState) Expand() []*SearchState {
	n := p.Matrix.N()
	children := make([]*SearchState, 0, n)
	for j := 0; j < n; j++ {
		if c, ok := p.child(j); ok {
			children = append(children, c)
		}
	}
	return children
}

// IsSolution reports whether path covers all n cities and the closing edge
// back to path[0] is still finite in the state's own reduced matrix
// (Section 4.4).
func (p *SearchState) IsSolution(n int) bool {
	if len(p.Path) != n {
		return false
	}
	return !math.IsInf(p.Matrix.At(p.Last, p.Path[0]), 1)
}

// Depth returns the number of cities committed so far (len(path)).
func (p *SearchState) Depth() int { return len(p.Path) }
