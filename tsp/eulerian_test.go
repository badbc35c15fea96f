package tsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEulerianCircuitVisitsEveryEdgeOnce(t *testing.T) {
	// A plain 4-cycle, so every vertex has even degree (2).
	adj := [][]int{
		{1, 3},
		{0, 2},
		{1, 3},
		{2, 0},
	}
	circuit := EulerianCircuit(adj, 0)
	edgeCount := 0
	for _, neighbors := range adj {
		edgeCount += len(neighbors)
	}
	require.Equal(t, edgeCount/2+1, len(circuit), "a closed walk over m undirected edges visits m+1 vertices (with repeats)")
	require.Equal(t, 0, circuit[0])
	require.Equal(t, 0, circuit[len(circuit)-1])
}

func TestPackUndirectedKeySymmetric(t *testing.T) {
	require.Equal(t, packUndirectedKey(3, 7), packUndirectedKey(7, 3))
	require.NotEqual(t, packUndirectedKey(3, 7), packUndirectedKey(3, 8))
}
