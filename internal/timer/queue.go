// Package timer provides a single-threaded timer queue driven by virtual time.
//
// Nothing in this package starts goroutines. Callbacks run synchronously on
// the goroutine that calls Advance, which makes the queue usable both from a
// Bubble Tea Update loop (advanced by frame ticks) and from deterministic
// tests (advanced by hand).
package timer

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled timer. The zero Handle never refers to a
// live timer, so it is safe to Cancel.
type Handle uint64

// Scheduler schedules cancelable callbacks.
type Scheduler interface {
	// Every runs fn every d until the returned handle is cancelled.
	Every(d time.Duration, fn func()) Handle
	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Handle
	// Cancel stops a timer. Cancelling an unknown or fired handle is a no-op.
	Cancel(h Handle)
}

// minPeriod bounds recurring timers so Advance always terminates.
const minPeriod = time.Millisecond

type entry struct {
	handle Handle
	due    time.Duration
	period time.Duration // zero for one-shot timers
	seq    uint64        // insertion order, breaks ties between equal due times
	fn     func()
	index  int
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Queue is a virtual-time Scheduler. It is not safe for concurrent use.
type Queue struct {
	now     time.Duration
	nextID  Handle
	seq     uint64
	pending entryHeap
	active  map[Handle]*entry
}

// NewQueue creates an empty queue at virtual time zero.
func NewQueue() *Queue {
	return &Queue{
		active: make(map[Handle]*entry),
	}
}

// Now returns the virtual time elapsed since the queue was created.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Pending returns the number of live timers.
func (q *Queue) Pending() int {
	return len(q.active)
}

// Every schedules fn to run every d. Periods below one millisecond are
// raised to one millisecond.
func (q *Queue) Every(d time.Duration, fn func()) Handle {
	if d < minPeriod {
		d = minPeriod
	}
	return q.add(d, d, fn)
}

// After schedules fn to run once after d. Negative delays fire on the next
// Advance.
func (q *Queue) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	return q.add(d, 0, fn)
}

func (q *Queue) add(delay, period time.Duration, fn func()) Handle {
	q.nextID++
	q.seq++
	e := &entry{
		handle: q.nextID,
		due:    q.now + delay,
		period: period,
		seq:    q.seq,
		fn:     fn,
	}
	heap.Push(&q.pending, e)
	q.active[e.handle] = e
	return e.handle
}

// Cancel removes the timer. It may be called from inside a callback,
// including the callback of the timer being cancelled.
func (q *Queue) Cancel(h Handle) {
	e, ok := q.active[h]
	if !ok {
		return
	}
	delete(q.active, h)
	if e.index >= 0 {
		heap.Remove(&q.pending, e.index)
	}
}

// CancelAll removes every live timer.
func (q *Queue) CancelAll() {
	for h := range q.active {
		delete(q.active, h)
	}
	q.pending = q.pending[:0]
}

// Advance moves virtual time forward by d and runs every callback that
// falls due, in due-time order. It returns the number of callbacks run.
func (q *Queue) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := q.now + d
	fired := 0

	for len(q.pending) > 0 && q.pending[0].due <= target {
		e := heap.Pop(&q.pending).(*entry)
		q.now = e.due

		if e.period > 0 {
			// Re-arm before running so the callback can cancel or replace it.
			q.seq++
			e.due += e.period
			e.seq = q.seq
			heap.Push(&q.pending, e)
		} else {
			delete(q.active, e.handle)
		}

		fired++
		e.fn()
	}

	q.now = target
	return fired
}

var _ Scheduler = (*Queue)(nil)
