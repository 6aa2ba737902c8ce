package schedulers

import (
	"container/heap"
	"os-scheduler-sim/internal/core"
	"sort"
)

// arrivalQueue hands out processes in arrival order, ties in input order.
type arrivalQueue struct {
	pending []*core.Process
	next    int
}

func newArrivalQueue(processes []*core.Process) *arrivalQueue {
	pending := sortByArrival(processes)
	return &arrivalQueue{pending: pending}
}

func sortByArrival(processes []*core.Process) []*core.Process {
	sorted := make([]*core.Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Arrival < sorted[j].Arrival
	})
	return sorted
}

// admit passes every process with arrival <= tick to fn, in order.
func (q *arrivalQueue) admit(tick int, fn func(p *core.Process)) {
	for q.next < len(q.pending) && q.pending[q.next].Arrival <= tick {
		fn(q.pending[q.next])
		q.next++
	}
}

func (q *arrivalQueue) peek() *core.Process {
	if q.next >= len(q.pending) {
		return nil
	}
	return q.pending[q.next]
}

type readyItem struct {
	process *core.Process
	seq     int
}

// readyHeap orders by remaining burst, then by insertion sequence.
type readyHeap []readyItem

func (h readyHeap) Len() int { return len(h) }

func (h readyHeap) Less(i, j int) bool {
	if h[i].process.Remaining != h[j].process.Remaining {
		return h[i].process.Remaining < h[j].process.Remaining
	}
	return h[i].seq < h[j].seq
}

func (h readyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x any) {
	*h = append(*h, x.(readyItem))
}

func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = readyItem{}
	*h = old[:n-1]
	return item
}

// readyQueue is the SJF ready set. Remaining bursts of queued processes never
// change while they wait, so heap order stays valid.
type readyQueue struct {
	items readyHeap
	seq   int
}

func (q *readyQueue) push(p *core.Process) {
	heap.Push(&q.items, readyItem{process: p, seq: q.seq})
	q.seq++
}

func (q *readyQueue) peek() *core.Process {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0].process
}

func (q *readyQueue) pop() *core.Process {
	return heap.Pop(&q.items).(readyItem).process
}
