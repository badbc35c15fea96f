package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tspkit/tspkit/tsp"
)

type ChristofidesSuite struct {
	suite.Suite
}

func (s *ChristofidesSuite) squareScenario() *tsp.Scenario {
	points := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	sc, err := tsp.NewScenario([]string{"a", "b", "c", "d", "e"}, func(i, j int) float64 {
		dx := points[i][0] - points[j][0]
		dy := points[i][1] - points[j][1]
		return math.Hypot(dx, dy)
	})
	require.NoError(s.T(), err)
	return sc
}

func (s *ChristofidesSuite) TestProducesValidTour() {
	sc := s.squareScenario()
	res, err := tsp.SolveChristofides(sc)
	require.NoError(s.T(), err)
	require.NoError(s.T(), tsp.ValidateTour(res.Tour, sc.N()))
	require.False(s.T(), math.IsInf(res.Cost, 1))
}

func (s *ChristofidesSuite) TestRejectsAsymmetricScenario() {
	mat := []float64{
		0, 1, 9,
		2, 0, 1,
		1, 9, 0,
	}
	sc, err := tsp.NewScenarioFromMatrix(nil, mat, 3)
	require.NoError(s.T(), err)
	_, err = tsp.SolveChristofides(sc)
	require.ErrorIs(s.T(), err, tsp.ErrAsymmetricUnsupported)
}

func (s *ChristofidesSuite) TestSingleCity() {
	sc, err := tsp.NewScenario([]string{"only"}, func(i, j int) float64 { return 0 })
	require.NoError(s.T(), err)
	res, err := tsp.SolveChristofides(sc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, res.Cost)
}

func TestChristofidesSuite(t *testing.T) {
	suite.Run(t, new(ChristofidesSuite))
}
