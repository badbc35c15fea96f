// Command tspsweep runs every solver algorithm across a sweep of generated
// random instances and reports a per-algorithm leaderboard. It exists to
// compare solvers against each other, not to solve one concrete instance
// (see the worked Example functions in tsp/example_test.go for that).
//
// Sweep shape mirrors the data-collection harness this package was built
// from: a list of city counts, a shared per-run time budget, and every
// algorithm run once per (n, repeat) pair.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"

	"github.com/tspkit/tspkit/tsp"
)

var cli struct {
	NCities []int         `name:"n" help:"City counts to sweep." default:"15,30,60,100,200"`
	Budget  time.Duration `name:"budget" help:"Per-run wall-clock budget." default:"10s"`
	Repeats int           `name:"repeats" help:"Repeats per (algorithm, n) pair." default:"3"`
	Seed    int64         `name:"seed" help:"Base RNG seed; each repeat derives seed+i." default:"1"`
	Listen  string        `name:"listen" help:"Address to serve /metrics on; empty disables it." default:""`
}

var algorithms = []tsp.Algorithm{
	tsp.DefaultRandom,
	tsp.Greedy,
	tsp.BranchAndBound,
	tsp.TwoOpt,
	tsp.Tournament,
}

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tspsweep",
		Name:      "runs_total",
		Help:      "Number of solver runs completed, by algorithm and city count.",
	}, []string{"algorithm", "n_cities"})

	bestCost = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "tspsweep",
		Name:      "best_cost",
		Help:      "Best tour cost observed so far, by algorithm and city count.",
	}, []string{"algorithm", "n_cities"})

	runSeconds = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "tspsweep",
		Name:      "run_seconds",
		Help:      "Wall-clock seconds spent in the most recent run, by algorithm and city count.",
	}, []string{"algorithm", "n_cities"})
)

// runRecord is one (algorithm, n, repeat) observation.
type runRecord struct {
	algorithm tsp.Algorithm
	n         int
	cost      float64
	seconds   float64
}

func main() {
	kong.Parse(&cli, kong.Description("Sweep every tspkit solver across a range of instance sizes."))

	sweepID := uuid.New()
	log.SetLevel(log.InfoLevel)
	log.Info("starting sweep", "sweep_id", sweepID, "n_cities", cli.NCities, "budget", cli.Budget, "repeats", cli.Repeats)

	if cli.Listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Info("serving metrics", "addr", cli.Listen)
			if err := http.ListenAndServe(cli.Listen, mux); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	records := make([]runRecord, 0, len(cli.NCities)*len(algorithms)*cli.Repeats)
	bestSeen := make(map[string]float64)

	for _, n := range cli.NCities {
		for repeat := 0; repeat < cli.Repeats; repeat++ {
			seed := cli.Seed + int64(repeat)
			scenario := randomScenario(n, seed)

			sv, err := tsp.Setup(scenario)
			if err != nil {
				log.Error("failed to set up solver", "sweep_id", sweepID, "n_cities", n, "error", err)
				continue
			}

			for _, algo := range algorithms {
				rec, err := runOnce(sv, algo, n, seed)
				if err != nil {
					log.Error("run failed", "sweep_id", sweepID, "algorithm", algo, "n_cities", n, "error", err)
					continue
				}
				records = append(records, rec)

				nLabel := fmt.Sprintf("%d", n)
				runsTotal.WithLabelValues(algo.String(), nLabel).Inc()
				runSeconds.WithLabelValues(algo.String(), nLabel).Set(rec.seconds)

				key := algo.String() + "/" + nLabel
				if prior, ok := bestSeen[key]; !ok || rec.cost < prior {
					bestSeen[key] = rec.cost
					bestCost.WithLabelValues(algo.String(), nLabel).Set(rec.cost)
				}

				log.Info("run complete", "sweep_id", sweepID, "algorithm", algo, "n_cities", n, "repeat", repeat, "cost", rec.cost, "seconds", rec.seconds)
			}
		}
	}

	printLeaderboard(records)
}

func runOnce(sv *tsp.Solver, algo tsp.Algorithm, n int, seed int64) (runRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cli.Budget)
	defer cancel()

	res, err := sv.Solve(ctx, algo, cli.Budget, tsp.WithSeed(seed))
	if err != nil {
		return runRecord{}, err
	}
	return runRecord{algorithm: algo, n: n, cost: res.Cost, seconds: res.Time}, nil
}

// randomScenario builds a symmetric Euclidean instance on n cities, seeded
// deterministically so sweeps are reproducible across runs.
func randomScenario(n int, seed int64) *tsp.Scenario {
	rng := rand.New(rand.NewSource(seed))
	points := make([][2]float64, n)
	for i := range points {
		points[i] = [2]float64{rng.Float64() * 1000, rng.Float64() * 1000}
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("city-%d", i)
	}

	scenario, err := tsp.NewScenario(labels, func(i, j int) float64 {
		dx := points[i][0] - points[j][0]
		dy := points[i][1] - points[j][1]
		return math.Hypot(dx, dy)
	})
	if err != nil {
		// n ≥ 1 and the cost function is total, so NewScenario cannot fail here.
		panic(err)
	}
	return scenario
}

// printLeaderboard groups records by algorithm and prints the mean cost and
// mean runtime across every (n, repeat) pair that algorithm completed.
func printLeaderboard(records []runRecord) {
	if len(records) == 0 {
		fmt.Println("no runs completed")
		return
	}

	byAlgo := lo.GroupBy(records, func(r runRecord) tsp.Algorithm { return r.algorithm })

	fmt.Println("algorithm        mean_cost       mean_seconds    runs")
	for _, algo := range algorithms {
		group, ok := byAlgo[algo]
		if !ok || len(group) == 0 {
			continue
		}
		totalCost := lo.Reduce(group, func(acc float64, r runRecord, _ int) float64 { return acc + r.cost }, 0.0)
		totalSeconds := lo.Reduce(group, func(acc float64, r runRecord, _ int) float64 { return acc + r.seconds }, 0.0)
		count := float64(len(group))
		fmt.Printf("%-16s %-15.2f %-15.4f %d\n", algo, totalCost/count, totalSeconds/count, len(group))
	}
}
