package eventloop

import "sync"

// compactThreshold bounds how many consumed slots may accumulate at the
// head of the queue's backing slice before it is compacted in place.
const compactThreshold = 256

// TaskQueue is a FIFO queue handing tasks from arbitrary producer
// goroutines to one consumer, the owning loop's goroutine. All operations
// are mutually exclusive under one lock, held only for the push or pop,
// never across task execution.
//
// Dequeue order matches enqueue order across all producers for this queue;
// there is no ordering relationship across different queues.
type TaskQueue struct {
	mu    sync.Mutex
	items []Task
	head  int
}

// Enqueue appends task to the queue. It always succeeds.
func (q *TaskQueue) Enqueue(task Task) bool {
	q.mu.Lock()
	q.items = append(q.items, task)
	q.mu.Unlock()

	return true
}

// Dequeue removes and returns the front task, or reports false when the
// queue is empty.
func (q *TaskQueue) Dequeue() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.items) {
		return nil, false
	}

	task := q.items[q.head]
	q.items[q.head] = nil // drop the reference for GC
	q.head++

	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > compactThreshold && q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return task, true
}

// IsEmpty reports a point-in-time snapshot of queue emptiness.
func (q *TaskQueue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.head >= len(q.items)
}

// Len returns a point-in-time snapshot of the queue depth.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.head
}
