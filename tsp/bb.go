// Branch-and-bound solver (Section 4.5): reduced-cost-matrix search over
// SearchState nodes, scheduled across a DFS-keyed queue and a balanced-keyed
// queue that share their states (Section 9, "Two priority queues sharing
// states"). Phase one drains the DFS queue to dive for an early, deep BSSF,
// stopping as soon as that dive improves on the initial greedy BSSF; phase
// two then switches to the balanced queue to spend the remaining budget
// closing the gap between BSSF and the best live bound.
package tsp

import (
	"container/heap"
	"math/rand"
	"time"
)

// deadlineCheckMask bounds how often the hot loop calls time.Now(): every
// 256th iteration, following the teacher's bitmask step-counter idiom.
const deadlineCheckMask = 0xFF

// SolveBranchAndBound runs the reduced-cost-matrix branch-and-bound search
// to completion or until deadline, whichever comes first. A zero deadline
// means no time budget (run to exhaustion).
func SolveBranchAndBound(s *Scenario, rng *rand.Rand, opts Options, deadline time.Time) Result {
	n := s.N()
	if n == 0 {
		return Result{}
	}
	started := time.Now()
	if n == 1 {
		return Result{Cost: 0, Tour: Tour{0}, Count: 1, TotalStates: 1}
	}

	bestTour, bestCost := greedySeedBSSF(s, rng, opts.GreedyRestarts)

	rootCity := rng.Intn(n)
	root := NewRootState(s, rootCity)

	dq := &dfsQueue{}
	bq := &balancedQueue{}
	heap.Init(dq)
	heap.Init(bq)

	var seq int64
	var count, totalStates, pruned, maxQ int
	var foundImprovement bool

	enqueue := func(st *SearchState) {
		totalStates++
		node := &bbNode{state: st, depth: st.Depth(), seq: seq}
		seq++
		heap.Push(dq, node)
		heap.Push(bq, node)
		if q := dq.Len(); q > maxQ {
			maxQ = q
		}
		if q := bq.Len(); q > maxQ {
			maxQ = q
		}
	}

	process := func(st *SearchState) {
		if st.Bound >= bestCost {
			pruned++
			return
		}
		if st.IsSolution(n) {
			t := Tour(st.Path)
			c := t.TotalCost(s)
			if c < bestCost {
				count++
				bestCost, bestTour = c, t.Copy()
				foundImprovement = true
			}
			return
		}
		for _, child := range st.Expand() {
			if child.Bound >= bestCost {
				pruned++
				continue
			}
			enqueue(child)
		}
	}

	pastDeadline := func() bool {
		return !deadline.IsZero() && time.Now().After(deadline)
	}

	enqueue(root)

	var phase1Deadline time.Time
	if !deadline.IsZero() {
		half := deadline.Sub(started) / 2
		phase1Deadline = started.Add(half)
	}

	// Phase one: DFS-primary dive for an early BSSF. Stops as soon as a
	// DFS-discovered solution improves on the initial greedy BSSF, handing
	// the remaining budget to the balanced queue.
	for i := 0; dq.Len() > 0 && !foundImprovement; i++ {
		if i&deadlineCheckMask == 0 {
			if pastDeadline() || (!phase1Deadline.IsZero() && time.Now().After(phase1Deadline)) {
				break
			}
		}
		node := popFreshDFS(dq)
		if node == nil {
			break
		}
		process(node.state)
	}

	// Phase two: balanced-primary closes the remaining gap.
	for i := 0; bq.Len() > 0; i++ {
		if i&deadlineCheckMask == 0 && pastDeadline() {
			break
		}
		node := popFreshBalanced(bq)
		if node == nil {
			break
		}
		process(node.state)
	}

	return Result{
		Cost:        bestCost,
		Time:        time.Since(started).Seconds(),
		Count:       count,
		Tour:        bestTour,
		MaxQ:        maxQ,
		TotalStates: totalStates,
		Pruned:      pruned,
	}
}
