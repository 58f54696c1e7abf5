package pqueue_test

import (
	"testing"

	"github.com/katalvlaran/meshroute/pqueue"
)

// BenchmarkEnqueueDequeue pushes then drains 1024 entries per iteration.
func BenchmarkEnqueueDequeue(b *testing.B) {
	const n = 1024
	q := pqueue.New[int](n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < n; j++ {
			q.Enqueue(j, float64((j*7919)%n))
		}
		for !q.IsEmpty() {
			q.Dequeue()
		}
	}
}
