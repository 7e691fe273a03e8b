// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"sync"
)

// queue is an unbounded multi-producer/multi-consumer FIFO of tasks.
// Pop blocks until a task is available or ctx is done.
type queue struct {
	mu    sync.Mutex
	items []Task
	ready chan struct{} // buffered(1): "the queue may be non-empty"
}

func newQueue() *queue {
	return &queue{ready: make(chan struct{}, 1)}
}

// signal leaves at most one pending wake-up token.
func (q *queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Push appends t and wakes one waiting consumer.
func (q *queue) Push(t Task) {
	q.mu.Lock()
	q.items = append(q.items, t)
	q.mu.Unlock()
	q.signal()
}

// Pop removes the oldest task, blocking while the queue is empty.
// A done ctx wins over queued tasks. A consumer that leaves items behind
// passes the wake-up on.
func (q *queue) Pop(ctx context.Context) (Task, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Task{}, err
		}
		q.mu.Lock()
		if len(q.items) > 0 {
			t := q.items[0]
			q.items[0] = Task{}
			q.items = q.items[1:]
			more := len(q.items) > 0
			q.mu.Unlock()
			if more {
				q.signal()
			}

			return t, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Task{}, ctx.Err()
		case <-q.ready:
		}
	}
}

// Len returns the number of queued tasks.
func (q *queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
