// Minimum spanning tree (Prim, O(n²)) over a dense Dist — step one of the
// Christofides pipeline (Section "Christofides" in the glossary).
//
// Prim is run without a heap: on dense instances the O(n²) scan beats a
// heap's O(E log n) once E approaches n², and it keeps memory predictable.
package tsp

import "math"

// MinimumSpanningTree runs Prim's algorithm over any Dist. Returns the total
// tree weight and an undirected adjacency list (no parallel edges).
func MinimumSpanningTree(dist Dist) (totalW float64, adj [][]int, err error) {
	if dist == nil {
		return 0, nil, ErrNonSquare
	}
	n := dist.N()
	if n <= 0 {
		return 0, nil, ErrNonSquare
	}
	if n == 1 {
		return 0, make([][]int, 1), nil
	}

	var (
		inMST    = make([]bool, n)
		bestCost = make([]float64, n)
		parent   = make([]int, n)
		adjList  = make([][]int, n)
	)
	for i := range bestCost {
		bestCost[i] = math.Inf(1)
		parent[i] = -1
	}
	bestCost[0] = 0 // start from vertex 0; MST weight does not depend on the root

	var total float64
	for iter := 0; iter < n; iter++ {
		u := -1
		minW := math.Inf(1)
		for v := 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u == -1 {
			return 0, nil, ErrInvariantViolation // unreachable vertex remained
		}

		inMST[u] = true
		if parent[u] != -1 {
			adjList[u] = append(adjList[u], parent[u])
			adjList[parent[u]] = append(adjList[parent[u]], u)
			total += bestCost[u]
		}

		for v := 0; v < n; v++ {
			if inMST[v] {
				continue
			}
			w := dist.At(u, v)
			if w < 0 {
				return 0, nil, ErrNegativeWeight
			}
			if w < bestCost[v] {
				bestCost[v] = w
				parent[v] = u
			}
		}
	}

	return round1e9(total), adjList, nil
}
