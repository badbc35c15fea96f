package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tspkit/tspkit/tsp"
)

type TourSuite struct {
	suite.Suite
}

func squareScenario(s *testing.T) *tsp.Scenario {
	// Four corners of a unit square: 0-1-2-3-0 has cost 4, 0-2-1-3-0 has cost
	// 2*sqrt(2)+2 > 4, so the natural cyclic order is optimal.
	points := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	sc, err := tsp.NewScenario([]string{"0", "1", "2", "3"}, func(i, j int) float64 {
		dx := points[i][0] - points[j][0]
		dy := points[i][1] - points[j][1]
		return math.Hypot(dx, dy)
	})
	require.NoError(s, err)
	return sc
}

func (s *TourSuite) TestTotalCostTrivial() {
	require.Equal(s.T(), 0.0, tsp.Tour{}.TotalCost(nil))
	sc := squareScenario(s.T())
	require.Equal(s.T(), 0.0, tsp.Tour{0}.TotalCost(sc))
}

func (s *TourSuite) TestTotalCostClosesLoop() {
	sc := squareScenario(s.T())
	t := tsp.Tour{0, 1, 2, 3}
	require.InDelta(s.T(), 4.0, t.TotalCost(sc), 1e-9)
}

func (s *TourSuite) TestValidateTour() {
	require.NoError(s.T(), tsp.ValidateTour(tsp.Tour{2, 0, 1}, 3))
	require.Error(s.T(), tsp.ValidateTour(tsp.Tour{0, 0, 1}, 3))
	require.Error(s.T(), tsp.ValidateTour(tsp.Tour{0, 1}, 3))
}

func (s *TourSuite) TestReverseSegmentPreservesSet() {
	orig := tsp.Tour{0, 1, 2, 3, 4}
	rev, err := orig.ReverseSegment(1, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), tsp.Tour{0, 3, 2, 1, 4}, rev)
	require.Equal(s.T(), tsp.Tour{0, 1, 2, 3, 4}, orig, "original must be untouched")
}

func (s *TourSuite) TestReverseSegmentBounds() {
	t := tsp.Tour{0, 1, 2}
	_, err := t.ReverseSegment(1, 1)
	require.Error(s.T(), err)
	_, err = t.ReverseSegment(-1, 1)
	require.Error(s.T(), err)
	_, err = t.ReverseSegment(0, 5)
	require.Error(s.T(), err)
}

func (s *TourSuite) TestKRandomSwapIsPermutation() {
	orig := tsp.Tour{0, 1, 2, 3, 4, 5}
	rng := rand.New(rand.NewSource(42))
	out, err := orig.KRandomSwap(3, rng)
	require.NoError(s.T(), err)
	require.NoError(s.T(), tsp.ValidateTour(out, 6))
	require.Equal(s.T(), tsp.Tour{0, 1, 2, 3, 4, 5}, orig, "original must be untouched")
}

func (s *TourSuite) TestEqualModuloRotation() {
	require.True(s.T(), tsp.EqualModuloRotation(tsp.Tour{0, 1, 2, 3}, tsp.Tour{2, 3, 0, 1}))
	require.False(s.T(), tsp.EqualModuloRotation(tsp.Tour{0, 1, 2, 3}, tsp.Tour{0, 2, 1, 3}))
	require.False(s.T(), tsp.EqualModuloRotation(tsp.Tour{0, 1}, tsp.Tour{0, 1, 2}))
}

func (s *TourSuite) TestInfinityAbsorbingCost() {
	sc, err := tsp.NewScenario([]string{"a", "b", "c"}, func(i, j int) float64 {
		if i == j {
			return 0
		}
		if (i == 0 && j == 1) || (i == 1 && j == 0) {
			return math.Inf(1)
		}
		return 1
	})
	require.NoError(s.T(), err)
	t := tsp.Tour{0, 1, 2}
	require.True(s.T(), math.IsInf(t.TotalCost(sc), 1))
}

func TestTourSuite(t *testing.T) {
	suite.Run(t, new(TourSuite))
}
