package astar

import (
	"github.com/zyedidia/generic/heap"
)

// node is one explored cell. parent is an arena index, -1 for the start.
type node struct {
	cell   int
	g, h   float64
	parent int
}

// arena holds every node of one search; indices are stable for its lifetime.
type arena []node

// frontier is a min-heap of arena indices ordered by f = g + h, then h, then
// arena index. Arena indices grow with insertion, so the last key is FIFO.
type frontier struct {
	nodes *arena
	heap  *heap.Heap[int]
}

func newFrontier(nodes *arena) *frontier {
	f := &frontier{nodes: nodes}
	f.heap = heap.New[int](f.less)

	return f
}

func (f *frontier) less(a, b int) bool {
	na, nb := &(*f.nodes)[a], &(*f.nodes)[b]
	fa, fb := na.g+na.h, nb.g+nb.h
	if fa != fb {
		return fa < fb
	}
	if na.h != nb.h {
		return na.h < nb.h
	}

	return a < b
}

func (f *frontier) push(i int) { f.heap.Push(i) }

func (f *frontier) peek() (int, bool) { return f.heap.Peek() }

func (f *frontier) pop() { f.heap.Pop() }

func (f *frontier) len() int { return f.heap.Size() }
