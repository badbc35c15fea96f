package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tspkit/tspkit/tsp"
)

type SearchStateSuite struct {
	suite.Suite
}

func (s *SearchStateSuite) scenario() *tsp.Scenario {
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

func (s *SearchStateSuite) TestRootStateIsReduced() {
	root := tsp.NewRootState(s.scenario(), 0)
	require.Equal(s.T(), []int{0}, root.Path)
	require.True(s.T(), root.Matrix.IsReduced())
	require.GreaterOrEqual(s.T(), root.Bound, 0.0)
}

func (s *SearchStateSuite) TestExpandYieldsOneChildPerReachableCity() {
	root := tsp.NewRootState(s.scenario(), 0)
	children := root.Expand()
	require.Len(s.T(), children, 3, "complete graph on 4 cities reaches the other 3 from the root")
	for _, c := range children {
		require.Equal(s.T(), 2, c.Depth())
		require.GreaterOrEqual(s.T(), c.Bound, root.Bound)
	}
}

func (s *SearchStateSuite) TestIsSolutionRequiresFullPathAndClosingEdge() {
	root := tsp.NewRootState(s.scenario(), 0)
	require.False(s.T(), root.IsSolution(4))

	// Drive to a full path by always taking the first child.
	cur := root
	for cur.Depth() < 4 {
		children := cur.Expand()
		require.NotEmpty(s.T(), children)
		cur = children[0]
	}
	require.True(s.T(), cur.IsSolution(4))
}

func TestSearchStateSuite(t *testing.T) {
	suite.Run(t, new(SearchStateSuite))
}
