package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimumSpanningTreeWeightAndDegree(t *testing.T) {
	mat := []float64{
		0, 1, 3, 4,
		1, 0, 1, 2,
		3, 1, 0, 5,
		4, 2, 5, 0,
	}
	sc, err := NewScenarioFromMatrix(nil, mat, 4)
	require.NoError(t, err)

	weight, adj, err := MinimumSpanningTree(sc)
	require.NoError(t, err)
	require.InDelta(t, 4.0, weight, 1e-9, "edges 0-1, 1-2, 1-3 sum to 1+1+2=4")

	edges := 0
	for _, neighbors := range adj {
		edges += len(neighbors)
	}
	require.Equal(t, 2*(4-1), edges, "an MST on n vertices has n-1 edges, each counted from both ends")
}

func TestMinimumSpanningTreeSingleVertex(t *testing.T) {
	sc, err := NewScenario([]string{"a"}, func(i, j int) float64 { return 0 })
	require.NoError(t, err)
	weight, adj, err := MinimumSpanningTree(sc)
	require.NoError(t, err)
	require.Equal(t, 0.0, weight)
	require.Len(t, adj, 1)
}

func TestMinimumSpanningTreeEmpty(t *testing.T) {
	_, _, err := MinimumSpanningTree(nil)
	require.ErrorIs(t, err, ErrNonSquare)
}
