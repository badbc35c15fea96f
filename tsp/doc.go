// Package tsp provides Travelling Salesperson Problem (TSP) solvers over a
// dense, possibly partially disconnected cost matrix with a consistent API,
// strict sentinel errors, deterministic behavior, and stable cost rounding
// (1e-9). The package exposes an exact search, a classical approximation, and
// several local-search improvements behind a single Solver facade.
//
// # What & Why
//
// Given a Scenario of N cities and their pairwise costs, tsp computes a Tour
// — a permutation of [0, N) — visiting every city once and returning to the
// start (the closing edge is implicit, never stored).
//
//   - Baseline: uniform-random sampling (DefaultRandom) and deterministic
//     nearest-neighbor sweep (Greedy).
//   - Exact: reduced-cost-matrix branch-and-bound (BranchAndBound), scheduled
//     across a DFS-keyed queue and a balanced-keyed queue that share states.
//   - Approximation (symmetric metric only): Christofides 1.5-approx.
//   - Local search: full-pass best-improving 2-opt (TwoOpt), k-swap
//     perturbation, 3-opt, and a multi-seed tournament combining both
//     (Tournament).
//
// # Determinism & Stability
//
//   - No time-based randomness. Every randomized routine takes an explicit
//     *rand.Rand derived from Options.Seed; Seed == 0 selects a fixed stream.
//   - Costs are stabilized to 1e-9 (round1e9) to damp cross-platform
//     floating-point drift.
//   - A missing edge is math.Inf(1), never an error: solvers return a Result
//     with Cost == +Inf rather than failing.
//
// # Setup
//
//	sv, err := tsp.Setup(scenario)
//	res, err := sv.Solve(ctx, tsp.BranchAndBound, budget, tsp.WithSeed(7))
//
// Setup validates the Scenario once; every Solve* method on the returned
// Solver assumes valid input and never re-validates.
//
// # Options
//
//	type Options struct {
//	    Seed            int64         // deterministic RNG seed (0 = stable default)
//	    GreedyRestarts  int           // R: greedy runs seeding B&B's initial BSSF
//	    KSwapK          int           // k for k_random_swap; not read by any solver
//	    TournamentSeeds int           // S: independent tournament seeds
//	    Eps             float64       // minimal strict improvement accepted by local search
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight, ErrStartOutOfRange,
//	ErrEmptyScenario, ErrTimeBudgetExceeded, ErrInvariantViolation,
//	ErrAsymmetricUnsupported, ErrMatchingNotImplemented.
//
// # Results
//
//	type Result struct {
//	    Cost        float64 // total tour cost, or +Inf if none finite was found
//	    Time        float64 // wall-clock seconds spent inside the solver
//	    Count       int     // algorithm-specific iteration count
//	    Tour        []int   // best Hamiltonian cycle found (len == N)
//	    MaxQ        int     // max observed B&B queue size (0 outside B&B)
//	    TotalStates int     // SearchState values created during B&B
//	    Pruned      int     // B&B children rejected at enqueue or pop
//	}
package tsp
