// Package pqueue provides a generic binary min-heap priority queue over
// (item, priority) pairs, the container that drives shortest-path search.
//
// Ordering rules (inherited from container/heap):
//
//   - Enqueue appends and sifts the new entry toward the root while its
//     priority is strictly less than its parent's.
//   - Dequeue moves the last entry to the root and sifts it down, choosing the
//     smaller child (ties favour the left child) and swapping only while that
//     child is strictly less.
//
// Duplicate entries for the same logical item are allowed. There is no
// decrease-key and no identity deduplication: Dijkstra pushes a fresh entry
// whenever it improves a distance, and an outdated entry dequeued later only
// re-attempts relaxations that fail the distance check. This is an accepted
// amortized-efficiency trade-off (queue size is O(E) instead of O(V)), not a
// bug.
//
// Complexity: Enqueue/Dequeue O(log n), IsEmpty/Len/Peek O(1).
//
// A Queue is not safe for concurrent use; each search owns its own queue.
package pqueue
