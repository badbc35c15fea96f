// Unified solver facade (Section 4.7): a Solver wraps one validated Scenario
// and exposes one method per algorithm, each returning the uniform Result
// record described in Section 3. Construction fails fast on a malformed
// scenario so every Solve* method can assume valid input.
package tsp

import (
	"context"
	"math"
	"time"
)

// Solver runs any of the package's algorithms against one Scenario.
type Solver struct {
	scenario *Scenario
}

// Setup validates s and returns a ready-to-use Solver. Returns
// ErrEmptyScenario for a nil scenario, or ErrNegativeWeight /
// ErrDimensionMismatch for a malformed scenario. A scenario with N == 0 is
// accepted; every Solve* method then returns a zero-cost empty tour.
func Setup(s *Scenario) (*Solver, error) {
	if s == nil {
		return nil, ErrEmptyScenario
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &Solver{scenario: s}, nil
}

// deadlineFrom converts a budget duration into an absolute deadline, honoring
// ctx's own deadline if it is sooner. A zero budget with no context deadline
// means unlimited.
func deadlineFrom(ctx context.Context, budget time.Duration) time.Time {
	var d time.Time
	if budget > 0 {
		d = time.Now().Add(budget)
	}
	if ctxDeadline, ok := ctx.Deadline(); ok {
		if d.IsZero() || ctxDeadline.Before(d) {
			d = ctxDeadline
		}
	}
	return d
}

// SolveDefaultRandom repeatedly samples a uniform-random permutation until a
// finite one is found or budget expires (Section 4.7's trivial baseline).
func (sv *Solver) SolveDefaultRandom(ctx context.Context, opts Options, budget time.Duration) Result {
	s := sv.scenario
	n := s.N()
	started := time.Now()
	deadline := deadlineFrom(ctx, budget)
	rng := rngFromSeed(opts.Seed)

	p, _ := permRange(n, rng)
	best := Tour(p)
	bestCost := best.TotalCost(s)
	count := 1

	for math.IsInf(bestCost, 1) {
		if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
			break
		}
		p, _ := permRange(n, rng)
		t := Tour(p)
		c := t.TotalCost(s)
		count++
		if c < bestCost {
			bestCost, best = c, t
		}
	}

	return Result{Cost: bestCost, Time: time.Since(started).Seconds(), Count: count, Tour: best}
}

// SolveGreedy runs the deterministic nearest-neighbor sweep over every start
// city (Section 4.3).
func (sv *Solver) SolveGreedy(ctx context.Context, budget time.Duration) Result {
	started := time.Now()
	deadline := deadlineFrom(ctx, budget)
	t, c := GreedySweep(sv.scenario, deadline)
	return Result{Cost: c, Time: time.Since(started).Seconds(), Count: sv.scenario.N(), Tour: t}
}

// SolveBranchAndBound runs the exact reduced-cost-matrix search (Section 4.5).
func (sv *Solver) SolveBranchAndBound(ctx context.Context, opts Options, budget time.Duration) Result {
	deadline := deadlineFrom(ctx, budget)
	rng := rngFromSeed(opts.Seed)
	return SolveBranchAndBound(sv.scenario, rng, opts, deadline)
}

// SolveTwoOpt runs full-pass best-improving 2-opt from a single greedy-random
// seed tour (Section 4.6).
func (sv *Solver) SolveTwoOpt(ctx context.Context, opts Options, budget time.Duration) Result {
	s := sv.scenario
	started := time.Now()
	deadline := deadlineFrom(ctx, budget)
	rng := rngFromSeed(opts.Seed)

	seed, _ := GreedyRandom(s, rng)
	t, c := TwoOptPass(s, seed, opts.Eps, rng, deadline)
	return Result{Cost: c, Time: time.Since(started).Seconds(), Count: 1, Tour: t}
}

// SolveTournament runs the multi-seed 2-opt/3-opt tournament (Section 4.6).
func (sv *Solver) SolveTournament(ctx context.Context, opts Options, budget time.Duration) Result {
	rng := rngFromSeed(opts.Seed)
	_ = ctx // budget alone governs the tournament's own phase deadlines
	return LocalSearchTournament(sv.scenario, rng, opts, budget)
}

// SolveChristofides runs the MST + matching + Eulerian-shortcut
// 1.5-approximation; requires a symmetric, metric scenario.
func (sv *Solver) SolveChristofides(ctx context.Context) (Result, error) {
	_ = ctx // the pipeline is deterministic and runs to completion, no deadline to honor
	started := time.Now()
	res, err := SolveChristofides(sv.scenario)
	if err != nil {
		return Result{}, err
	}
	res.Time = time.Since(started).Seconds()
	return res, nil
}

// Solve dispatches to the named Algorithm, applying DefaultOptions() merged
// with opts. A ctx deadline earlier than budget shortens DefaultRandom,
// Greedy, BranchAndBound and TwoOpt; DefaultRandom also stops on ctx
// cancellation. Tournament and Christofides do not read ctx (Section 5,
// composability note).
func (sv *Solver) Solve(ctx context.Context, algo Algorithm, budget time.Duration, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	switch algo {
	case DefaultRandom:
		return sv.SolveDefaultRandom(ctx, o, budget), nil
	case Greedy:
		return sv.SolveGreedy(ctx, budget), nil
	case BranchAndBound:
		return sv.SolveBranchAndBound(ctx, o, budget), nil
	case TwoOpt:
		return sv.SolveTwoOpt(ctx, o, budget), nil
	case Tournament:
		return sv.SolveTournament(ctx, o, budget), nil
	case Christofides:
		return sv.SolveChristofides(ctx)
	default:
		return Result{}, ErrInvariantViolation
	}
}
