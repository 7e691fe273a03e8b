package partition

import "context"

// TaskQueue exposes the internal queue to partition_test.
type TaskQueue struct{ q *queue }

func NewTaskQueue() TaskQueue { return TaskQueue{q: newQueue()} }

func (t TaskQueue) Push(task Task) { t.q.Push(task) }

func (t TaskQueue) Pop(ctx context.Context) (Task, error) { return t.q.Pop(ctx) }

func (t TaskQueue) Len() int { return t.q.Len() }

// WithoutCPUCap lets tests run more workers than the host has CPUs.
var WithoutCPUCap = withoutCPUCap
