// Package tspkit is the root of a small toolkit for solving the Travelling
// Salesperson Problem over dense, possibly partially disconnected cost
// matrices.
//
// The solving logic lives in the tsp subpackage:
//
//	tsp/ — Scenario, CostMatrix, Tour, the branch-and-bound search, the
//	       Christofides approximation, and the 2-opt/3-opt local-search
//	       engines, all behind a single Solver facade.
//
// cmd/tspsweep is a CLI harness that runs every algorithm across a sweep of
// generated instances and reports a leaderboard, built for comparing
// solvers rather than for solving a single instance.
package tspkit
