// SPDX-License-Identifier: MIT

package pqueue

import "container/heap"

// entry pairs an item with its priority.
type entry[T any] struct {
	item     T
	priority float64
}

// entries implements heap.Interface as a min-heap on priority.
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entries[T]) Len() int { return len(h) }

// Less orders by priority ascending; strict, so equal priorities never swap.
func (h entries[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }

// Swap swaps two entries.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes the last element; called by heap.Pop only.
func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop reference for the GC
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of T.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	h entries[T]
}

// New returns an empty queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{h: make(entries[T], 0, capacity)}
}

// Enqueue inserts item with the given priority.
// Complexity: O(log n).
func (q *Queue[T]) Enqueue(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority})
}

// Dequeue removes and returns the minimum-priority item and its priority.
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Dequeue() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the minimum-priority item without removing it.
func (q *Queue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}

	return q.h[0].item, q.h[0].priority, true
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of entries, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.h) }

// Reset empties the queue, keeping its capacity.
func (q *Queue[T]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
}
