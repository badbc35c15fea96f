// Package tsp implements exact and heuristic solvers for the symmetric and
// asymmetric Traveling Salesperson Problem over a dense, possibly partially
// disconnected N×N cost matrix.
//
// Design goals:
//   - Determinism: every randomized routine is driven by an explicit *rand.Rand.
//   - Zero surprises: solvers never panic on ordinary input; they return a
//     Result record even when no finite tour exists.
//   - Infinity-first: a missing edge is math.Inf(1), not an error condition.
package tsp

import "errors"

// Sentinel errors for malformed input. Setup returns ErrEmptyScenario,
// ErrDimensionMismatch or ErrNegativeWeight; ErrNonSquare comes from
// MinimumSpanningTree, and no function in this package returns
// ErrStartOutOfRange.
var (
	// ErrNonSquare indicates the cost matrix is not square.
	ErrNonSquare = errors.New("tsp: cost matrix is not square")

	// ErrDimensionMismatch indicates an internal shape mismatch (tour length,
	// path length, or matrix dimension inconsistent with N).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight indicates a negative cost was encountered.
	ErrNegativeWeight = errors.New("tsp: negative cost encountered")

	// ErrStartOutOfRange indicates a start vertex outside [0, N).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrEmptyScenario is returned by Setup for a nil scenario. A scenario
	// with N == 0 is not an error: solvers short-circuit to a zero-cost empty
	// tour.
	ErrEmptyScenario = errors.New("tsp: empty scenario")
)

// Sentinel errors for solve-time conditions. ErrTimeBudgetExceeded is not
// returned by any solver: a loop whose deadline passes simply stops and the
// solver returns its best Result so far. ErrInvariantViolation signals a
// programming bug, not an ordinary solve outcome.
var (
	// ErrTimeBudgetExceeded names an exhausted time budget; no function in
	// this package currently returns it.
	ErrTimeBudgetExceeded = errors.New("tsp: time budget exceeded")

	// ErrInvariantViolation signals a broken internal invariant (e.g. a
	// non-reduced matrix reaching the priority queue). Fatal; never expected
	// in normal operation.
	ErrInvariantViolation = errors.New("tsp: invariant violation")

	// ErrAsymmetricUnsupported is returned by solvers that require a
	// symmetric, metric scenario (Christofides) when given an asymmetric one.
	ErrAsymmetricUnsupported = errors.New("tsp: algorithm requires a symmetric scenario")

	// ErrMatchingNotImplemented is returned by the exact Blossom matcher,
	// which the Christofides pipeline falls back from to greedyMatch.
	ErrMatchingNotImplemented = errors.New("tsp: blossom matching not implemented")
)

// symTol is the absolute tolerance used wherever two costs are compared for
// "equal enough to tie-break by index" (symmetry checks, matching ties).
const symTol = 1e-9

// Algorithm enumerates the top-level strategies exposed by the facade.
type Algorithm int

const (
	// DefaultRandom repeatedly samples random tours until one is finite or the
	// budget expires.
	DefaultRandom Algorithm = iota
	// Greedy runs the deterministic nearest-neighbor sweep over all starts.
	Greedy
	// BranchAndBound runs the exact reduced-cost-matrix search of Section 4.5.
	BranchAndBound
	// TwoOpt runs the 2-opt engine from a single greedy-random seed tour.
	TwoOpt
	// Tournament runs the multi-seed 2-opt/3-opt tournament of Section 4.6.
	Tournament
	// Christofides runs the MST+matching+Eulerian-shortcut 1.5-approximation
	// (supplemented algorithm; symmetric metric scenarios only).
	Christofides
)

// String renders the algorithm name for logging.
func (a Algorithm) String() string {
	switch a {
	case DefaultRandom:
		return "default_random"
	case Greedy:
		return "greedy"
	case BranchAndBound:
		return "branch_and_bound"
	case TwoOpt:
		return "two_opt"
	case Tournament:
		return "tournament"
	case Christofides:
		return "christofides"
	default:
		return "unknown"
	}
}

// Default knobs, mirrored from the source's constants.
const (
	// DefaultGreedyRestarts is R in Section 4.5: how many greedy runs seed BSSF.
	DefaultGreedyRestarts = 10
	// DefaultKSwapK is the default perturbation width for k_random_swap.
	DefaultKSwapK = 5
	// DefaultTournamentSeeds is S in Section 4.6.
	DefaultTournamentSeeds = 5
)

// Result is the uniform record returned by every solver entry point
// (Section 4.7). Fields not meaningful for a given algorithm keep their zero
// value. When no finite tour was found, BranchAndBound and Tournament leave
// Tour nil, while DefaultRandom, Greedy and TwoOpt return the infinite-cost
// permutation they ended with.
type Result struct {
	// Cost is the total tour cost, or +Inf if no finite tour was found.
	Cost float64
	// Time is wall-clock seconds spent inside the solver.
	Time float64
	// Count is algorithm-specific: improving solutions found (B&B), tours
	// tried (random baseline), or seeds evaluated (tournament).
	Count int
	// Tour is the best Hamiltonian cycle found, as a sequence of N city
	// indices (the closing edge last→first is implicit). See above for the
	// case where no finite tour was found.
	Tour []int
	// MaxQ is the maximum observed size of the primary B&B queue. Zero for
	// algorithms without a priority queue.
	MaxQ int
	// TotalStates is the number of SearchState values created during B&B,
	// including discarded children. Zero for non-B&B algorithms.
	TotalStates int
	// Pruned is the number of B&B children rejected at enqueue or on pop.
	Pruned int
}

// Option configures a solve call. Construct via DefaultOptions and override
// individual fields, or pass functional Option values to Solver methods that
// accept them.
type Option func(*Options)

// Options bundles the knobs shared across solvers.
type Options struct {
	// Seed drives every randomized routine. Seed == 0 selects a fixed,
	// reproducible default stream (see rng.go).
	Seed int64
	// GreedyRestarts is R: how many greedy runs seed the B&B's initial BSSF.
	GreedyRestarts int
	// KSwapK holds a k for k_random_swap. No solver reads it: TwoOptPass
	// always samples with DefaultKSwapK.
	KSwapK int
	// TournamentSeeds is S: independent greedy-random starts in the tournament.
	TournamentSeeds int
	// Eps is the minimal strictly-better improvement accepted by local search.
	Eps float64
}

// DefaultOptions returns Options populated with the constants named in the
// spec: 10 greedy restarts, k=5 swaps, 5 tournament seeds, a fixed seed.
func DefaultOptions() Options {
	return Options{
		Seed:            0,
		GreedyRestarts:  DefaultGreedyRestarts,
		KSwapK:          DefaultKSwapK,
		TournamentSeeds: DefaultTournamentSeeds,
		Eps:             1e-9,
	}
}

// WithSeed overrides the PRNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithGreedyRestarts overrides R, the number of greedy BSSF seeding runs.
func WithGreedyRestarts(r int) Option { return func(o *Options) { o.GreedyRestarts = r } }

// WithKSwapK sets Options.KSwapK, which no solver reads (see Options).
func WithKSwapK(k int) Option { return func(o *Options) { o.KSwapK = k } }

// WithTournamentSeeds overrides S, the tournament's independent seed count.
func WithTournamentSeeds(s int) Option { return func(o *Options) { o.TournamentSeeds = s } }

// WithEps overrides the minimal-improvement tolerance for local search.
func WithEps(eps float64) Option { return func(o *Options) { o.Eps = eps } }

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
