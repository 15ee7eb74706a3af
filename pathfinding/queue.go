package pathfinding

import "github.com/katalvlaran/algoviz/gridgraph"

// cellItem is one heap entry: a cell and the priority it was pushed with.
type cellItem struct {
	cell     *gridgraph.Cell
	priority float64
}

// cellPQ is a min-heap of *cellItem ordered by priority ascending.
// It is used with the lazy-decrease-key pattern: an improved cost pushes a
// new entry and the stale one is skipped when popped (closed/visited set).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *cellItem. Called by heap.Push.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
