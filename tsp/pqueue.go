// Dual priority queues for branch-and-bound scheduling (Section 4.5).
//
// Both queues share the same underlying states through a *bbNode pointer:
// marking bbNode.stale true on one queue's entry is immediately visible to
// the other queue's entry for the same state, replacing the source's O(Q)
// linear-scan-and-remove synchronization with an O(1) stale bit (Section 9,
// "Two priority queues sharing states").
package tsp

import "container/heap"

// bbNode is a single search-state wrapped with scheduling metadata shared
// between both queues.
type bbNode struct {
	state *SearchState
	depth int
	seq   int64 // insertion sequence; the tie-breaker of last resort
	stale bool  // true once popped from either queue
}

// dfsQueue is keyed by (-depth, bound, seq): pop the deepest state, breaking
// ties by tighter bound, then by insertion order.
type dfsQueue []*bbNode

func (q dfsQueue) Len() int { return len(q) }
func (q dfsQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.depth != b.depth {
		return a.depth > b.depth // deeper first
	}
	if a.state.Bound != b.state.Bound {
		return a.state.Bound < b.state.Bound
	}
	return a.seq < b.seq
}
func (q dfsQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *dfsQueue) Push(x any)        { *q = append(*q, x.(*bbNode)) }
func (q *dfsQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// balancedQueue is keyed by (bound/(depth+1), seq): pop the state with the
// best bound-per-edge-committed ratio.
type balancedQueue []*bbNode

func (q balancedQueue) Len() int { return len(q) }
func (q balancedQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	ra := a.state.Bound / float64(a.depth+1)
	rb := b.state.Bound / float64(b.depth+1)
	if ra != rb {
		return ra < rb
	}
	return a.seq < b.seq
}
func (q balancedQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *balancedQueue) Push(x any)   { *q = append(*q, x.(*bbNode)) }
func (q *balancedQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// popFresh pops entries until a non-stale one surfaces (or the queue is
// empty), marking every popped entry stale along the way.
func popFreshDFS(q *dfsQueue) *bbNode {
	for q.Len() > 0 {
		n := heap.Pop(q).(*bbNode)
		if n.stale {
			continue
		}
		n.stale = true
		return n
	}
	return nil
}

func popFreshBalanced(q *balancedQueue) *bbNode {
	for q.Len() > 0 {
		n := heap.Pop(q).(*bbNode)
		if n.stale {
			continue
		}
		n.stale = true
		return n
	}
	return nil
}
