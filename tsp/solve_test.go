package tsp_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tspkit/tspkit/tsp"
)

type SolverSuite struct {
	suite.Suite
}

func (s *SolverSuite) scenario() *tsp.Scenario {
	mat := []float64{
		0, 10, 15, 20,
		10, 0, 35, 25,
		15, 35, 0, 30,
		20, 25, 30, 0,
	}
	sc, err := tsp.NewScenarioFromMatrix(nil, mat, 4)
	require.NoError(s.T(), err)
	return sc
}

func (s *SolverSuite) TestSetupAcceptsEmptyScenario() {
	sc, err := tsp.NewScenario(nil, func(i, j int) float64 { return 0 })
	require.NoError(s.T(), err)
	sv, err := tsp.Setup(sc)
	require.NoError(s.T(), err)
	res, err := sv.Solve(context.Background(), tsp.Greedy, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, res.Cost)
	require.Empty(s.T(), res.Tour)
}

func (s *SolverSuite) TestSetupRejectsNilScenario() {
	_, err := tsp.Setup(nil)
	require.ErrorIs(s.T(), err, tsp.ErrEmptyScenario)
}

func (s *SolverSuite) TestSolveBranchAndBoundFindsKnownOptimum() {
	sv, err := tsp.Setup(s.scenario())
	require.NoError(s.T(), err)
	res, err := sv.Solve(context.Background(), tsp.BranchAndBound, time.Second)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 80.0, res.Cost, 1e-6)
}

func (s *SolverSuite) TestSolveEveryAlgorithmReturnsValidTour() {
	sv, err := tsp.Setup(s.scenario())
	require.NoError(s.T(), err)

	for _, algo := range []tsp.Algorithm{tsp.DefaultRandom, tsp.Greedy, tsp.BranchAndBound, tsp.TwoOpt, tsp.Tournament, tsp.Christofides} {
		res, err := sv.Solve(context.Background(), algo, 200*time.Millisecond, tsp.WithSeed(11))
		require.NoErrorf(s.T(), err, "algorithm %s", algo)
		require.NoErrorf(s.T(), tsp.ValidateTour(res.Tour, 4), "algorithm %s", algo)
		require.Falsef(s.T(), math.IsInf(res.Cost, 1), "algorithm %s", algo)
	}
}

func (s *SolverSuite) TestSolveUnknownAlgorithmIsInvariantViolation() {
	sv, err := tsp.Setup(s.scenario())
	require.NoError(s.T(), err)
	_, err = sv.Solve(context.Background(), tsp.Algorithm(999), time.Second)
	require.ErrorIs(s.T(), err, tsp.ErrInvariantViolation)
}

func (s *SolverSuite) TestSolveHonorsContextCancellation() {
	sv, err := tsp.Setup(s.scenario())
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := sv.Solve(ctx, tsp.DefaultRandom, 0, tsp.WithSeed(1))
	require.NoError(s.T(), err)
	require.NoError(s.T(), tsp.ValidateTour(res.Tour, 4))
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
