package tsp

import "math"

// CostMatrix owns an N×N cost array and provides the row/column reduction
// and edge-blocking operations that drive the branch-and-bound search
// (Section 4.1). The backing store is a flat row-major []float64 buffer —
// the same dense-buffer idiom the local-search engines use in their hot
// paths — rather than a 2D slice or an interface-indirected matrix type.
type CostMatrix struct {
	w []float64 // row-major n*n
	n int
}

// NewCostMatrix builds a CostMatrix from a Scenario, with the diagonal set
// to +Inf (Section 4.4, "Construction from a root city").
func NewCostMatrix(s *Scenario) *CostMatrix {
	n := s.N()
	m := &CostMatrix{w: make([]float64, n*n), n: n}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.w[i*n+j] = s.Cost(i, j)
		}
	}
	return m
}

// N returns the matrix dimension.
func (m *CostMatrix) N() int { return m.n }

// At returns entry (i, j).
func (m *CostMatrix) At(i, j int) float64 { return m.w[i*m.n+j] }

// Set overwrites entry (i, j).
func (m *CostMatrix) Set(i, j int, v float64) { m.w[i*m.n+j] = v }

// Clone returns an independent copy (Section 4.1, clone()).
func (m *CostMatrix) Clone() *CostMatrix {
	w := make([]float64, len(m.w))
	copy(w, m.w)
	return &CostMatrix{w: w, n: m.n}
}

// Block sets row i to infinity, column j to infinity, and entry (j, i) to
// infinity; it does not touch (i, j) itself (Section 4.1).
func (m *CostMatrix) Block(i, j int) {
	n := m.n
	for k := 0; k < n; k++ {
		m.w[i*n+k] = math.Inf(1)
	}
	for k := 0; k < n; k++ {
		m.w[k*n+j] = math.Inf(1)
	}
	m.w[j*n+i] = math.Inf(1)
}

// Reduce subtracts row minima, then column minima of what remains, so that
// every row and every column contains a zero or is entirely infinite. It
// returns the accumulated reduction cost (Section 4.1).
//
// Subtraction preserves infinity: a row/column whose minimum is +Inf is left
// untouched and contributes zero to the accumulator.
func (m *CostMatrix) Reduce() float64 {
	n := m.n
	var acc float64

	// Row pass.
	for i := 0; i < n; i++ {
		min := math.Inf(1)
		for j := 0; j < n; j++ {
			v := m.w[i*n+j]
			if v < min {
				min = v
			}
		}
		if math.IsInf(min, 1) || min <= 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if !math.IsInf(m.w[i*n+j], 1) {
				m.w[i*n+j] -= min
			}
		}
		acc += min
	}

	// Column pass, over the matrix as left after the row pass.
	for j := 0; j < n; j++ {
		min := math.Inf(1)
		for i := 0; i < n; i++ {
			v := m.w[i*n+j]
			if v < min {
				min = v
			}
		}
		if math.IsInf(min, 1) || min <= 0 {
			continue
		}
		for i := 0; i < n; i++ {
			if !math.IsInf(m.w[i*n+j], 1) {
				m.w[i*n+j] -= min
			}
		}
		acc += min
	}

	return acc
}

// IsReduced reports whether every row and every column has a zero entry or
// is entirely infinite — the invariant a SearchState's matrix must satisfy
// (Section 8, property 1). Exported for invariant checks in tests.
func (m *CostMatrix) IsReduced() bool {
	n := m.n
	hasZeroOrAllInf := func(get func(k int) float64) bool {
		allInf := true
		for k := 0; k < n; k++ {
			v := get(k)
			if !math.IsInf(v, 1) {
				allInf = false
				if v == 0 {
					return true
				}
			}
		}
		return allInf
	}
	for i := 0; i < n; i++ {
		i := i
		if !hasZeroOrAllInf(func(k int) float64 { return m.w[i*n+k] }) {
			return false
		}
	}
	for j := 0; j < n; j++ {
		j := j
		if !hasZeroOrAllInf(func(k int) float64 { return m.w[k*n+j] }) {
			return false
		}
	}
	return true
}
