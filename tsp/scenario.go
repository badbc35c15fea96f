package tsp

import (
	"math"
	"strconv"
)

// City is an opaque identity with a stable integer index in [0, N). Label is
// a human-readable tag carried through for diagnostics; it plays no role in
// solving.
type City struct {
	Index int
	Label string
}

// Scenario owns the ordered set of N cities and their pairwise costs. It is
// immutable for the duration of a solve: every solver reads Cost but never
// mutates a Scenario.
type Scenario struct {
	cities []City
	cost   []float64 // row-major N*N; diagonal is always +Inf
	n      int
}

// NewScenario builds a Scenario from an explicit N×N cost function. The
// diagonal is forced to +Inf regardless of what costFn(i, i) returns, per the
// Scenario contract (Section 3: "diagonal entries are treated as infinity").
//
// Returns ErrNegativeWeight if any off-diagonal cost is negative.
func NewScenario(labels []string, costFn func(i, j int) float64) (*Scenario, error) {
	n := len(labels)
	s := &Scenario{
		cities: make([]City, n),
		cost:   make([]float64, n*n),
		n:      n,
	}
	for i := 0; i < n; i++ {
		s.cities[i] = City{Index: i, Label: labels[i]}
		for j := 0; j < n; j++ {
			if i == j {
				s.cost[i*n+j] = math.Inf(1)
				continue
			}
			w := costFn(i, j)
			if w < 0 {
				return nil, ErrNegativeWeight
			}
			s.cost[i*n+j] = w
		}
	}
	return s, nil
}

// NewScenarioFromMatrix builds a Scenario from a flat row-major N*N cost
// matrix, forcing the diagonal to +Inf. labels may be nil, in which case
// cities are labeled by their decimal index.
func NewScenarioFromMatrix(labels []string, mat []float64, n int) (*Scenario, error) {
	if len(mat) != n*n {
		return nil, ErrDimensionMismatch
	}
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	return NewScenario(labels, func(i, j int) float64 { return mat[i*n+j] })
}

// N returns the number of cities.
func (s *Scenario) N() int { return s.n }

// Cities returns the ordered list of cities.
func (s *Scenario) Cities() []City { return s.cities }

// Cost returns cost(i, j); cost(i, i) is always +Inf.
func (s *Scenario) Cost(i, j int) float64 { return s.cost[i*s.n+j] }

// At implements the Dist interface consumed by the Christofides pipeline.
func (s *Scenario) At(i, j int) float64 { return s.Cost(i, j) }

// Symmetric reports whether cost(i,j) == cost(j,i) for every pair, within a
// small tolerance to absorb floating-point noise from geometric scenarios.
func (s *Scenario) Symmetric() bool {
	const tol = 1e-9
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			a, b := s.Cost(i, j), s.Cost(j, i)
			if math.IsInf(a, 1) != math.IsInf(b, 1) {
				return false
			}
			if math.IsInf(a, 1) {
				continue
			}
			if math.Abs(a-b) > tol {
				return false
			}
		}
	}
	return true
}

// validate enforces the Setup-time contract: square shape (implicit by
// construction), non-negative off-diagonal costs, no NaN.
func (s *Scenario) validate() error {
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			w := s.Cost(i, j)
			if math.IsNaN(w) {
				return ErrDimensionMismatch
			}
			if i != j && w < 0 {
				return ErrNegativeWeight
			}
		}
	}
	return nil
}

// Dist is the minimal distance-source contract shared by CostMatrix and
// Scenario, used internally by the Christofides pipeline so it need not
// depend on either concrete type.
type Dist interface {
	At(i, j int) float64
	N() int
}

// edgeCost reads dist.At(u, v), normalizing NaN to +Inf so callers comparing
// candidate edges never have to special-case it.
func edgeCost(dist Dist, u, v int) (float64, error) {
	w := dist.At(u, v)
	if math.IsNaN(w) {
		return math.Inf(1), nil
	}
	return w, nil
}
