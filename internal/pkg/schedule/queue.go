// Package schedule is a tick-indexed event queue. It stands in for wall-clock
// timers so delayed transitions (enemy thinking time, victory settle, travel
// pacing) are driven explicitly by the caller.
package schedule

import (
	"container/heap"
)

type item[T any] struct {
	value T
	at    int64
	seq   uint64
}

type items[T any] []*item[T]

func (pq items[T]) Len() int { return len(pq) }

func (pq items[T]) Less(i, j int) bool {
	if pq[i].at == pq[j].at {
		return pq[i].seq < pq[j].seq
	}
	return pq[i].at < pq[j].at
}

func (pq items[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *items[T]) Push(x interface{}) {
	*pq = append(*pq, x.(*item[T]))
}

func (pq *items[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

// Queue orders values by due tick, then by insertion
type Queue[T any] struct {
	now  int64
	seq  uint64
	heap items[T]
}

// New returns an empty queue at tick 0
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Now is the current tick
func (q *Queue[T]) Now() int64 {
	return q.now
}

// Len is the number of pending items
func (q *Queue[T]) Len() int {
	return q.heap.Len()
}

// Schedule queues v to fire delay ticks from now. Negative delays are
// treated as zero.
func (q *Queue[T]) Schedule(delay int64, v T) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	heap.Push(&q.heap, &item[T]{value: v, at: q.now + delay, seq: q.seq})
}

// Clear drops every pending item
func (q *Queue[T]) Clear() {
	q.heap = nil
}

// Advance moves time forward by ticks, firing every item that comes due in
// order. The clock reads each item's due tick while fn runs, so anything fn
// schedules is relative to that moment and fires in the same call if it
// lands inside the window. Returns the number of items fired.
func (q *Queue[T]) Advance(ticks int64, fn func(T)) int {
	if ticks < 0 {
		ticks = 0
	}
	target := q.now + ticks
	fired := 0
	for q.heap.Len() > 0 && q.heap[0].at <= target {
		it := heap.Pop(&q.heap).(*item[T])
		if it.at > q.now {
			q.now = it.at
		}
		fired++
		fn(it.value)
	}
	q.now = target
	return fired
}
