package search

import (
	"container/heap"

	"github.com/katalvlaran/gridplanner/grid"
)

// frontier abstracts the open-set ordering discipline. Implementations
// need not deduplicate: the engine skips stale entries on pop.
type frontier interface {
	push(c grid.Cell, priority, seq int)
	pop() (grid.Cell, bool)
	len() int
}

func newFrontier(o Order) frontier {
	switch o {
	case LIFO:
		return &lifoFrontier{}
	case MinHeap:
		return &heapFrontier{}
	default:
		return &fifoFrontier{}
	}
}

// fifoFrontier is a plain queue: pop order equals insertion order.
type fifoFrontier struct {
	queue []grid.Cell
}

func (f *fifoFrontier) push(c grid.Cell, _, _ int) { f.queue = append(f.queue, c) }

func (f *fifoFrontier) pop() (grid.Cell, bool) {
	if len(f.queue) == 0 {
		return grid.Cell{}, false
	}
	c := f.queue[0]
	f.queue = f.queue[1:]

	return c, true
}

func (f *fifoFrontier) len() int { return len(f.queue) }

// lifoFrontier is a plain stack: the most recent insertion pops first.
type lifoFrontier struct {
	stack []grid.Cell
}

func (f *lifoFrontier) push(c grid.Cell, _, _ int) { f.stack = append(f.stack, c) }

func (f *lifoFrontier) pop() (grid.Cell, bool) {
	if len(f.stack) == 0 {
		return grid.Cell{}, false
	}
	n := len(f.stack) - 1
	c := f.stack[n]
	f.stack = f.stack[:n]

	return c, true
}

func (f *lifoFrontier) len() int { return len(f.stack) }

// heapFrontier is a lazy min-heap: duplicates are pushed rather than
// decreased in place, and the engine discards stale pops via its closed
// set. Ties on priority break by insertion sequence, so equal-priority
// cells expand in first-inserted order.
type heapFrontier struct {
	pq cellPQ
}

func (f *heapFrontier) push(c grid.Cell, priority, seq int) {
	heap.Push(&f.pq, &pqItem{cell: c, priority: priority, seq: seq})
}

func (f *heapFrontier) pop() (grid.Cell, bool) {
	if f.pq.Len() == 0 {
		return grid.Cell{}, false
	}
	item := heap.Pop(&f.pq).(*pqItem)

	return item.cell, true
}

func (f *heapFrontier) len() int { return f.pq.Len() }

// pqItem pairs a cell with its integer priority and insertion sequence.
type pqItem struct {
	cell     grid.Cell
	priority int
	seq      int
}

// cellPQ is a min-heap of *pqItem ordered by (priority, seq) ascending.
type cellPQ []*pqItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
