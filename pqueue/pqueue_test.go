package pqueue_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshroute/pqueue"
)

func TestQueue_Empty(t *testing.T) {
	var q pqueue.Queue[int]
	assert.True(t, q.IsEmpty())
	assert.Zero(t, q.Len())

	_, _, ok := q.Dequeue()
	assert.False(t, ok, "Dequeue on empty queue reports !ok")
	_, _, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueue_MinOrder(t *testing.T) {
	q := pqueue.New[string](4)
	q.Enqueue("c", 3)
	q.Enqueue("a", 1)
	q.Enqueue("d", 4)
	q.Enqueue("b", 2)

	item, p, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", item)
	assert.Equal(t, 1.0, p)

	var got []string
	for !q.IsEmpty() {
		item, _, _ := q.Dequeue()
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

// TestQueue_DuplicatesAllowed: the same item may sit in the queue more than once.
func TestQueue_DuplicatesAllowed(t *testing.T) {
	q := pqueue.New[int](0)
	q.Enqueue(7, 5)
	q.Enqueue(7, 2)
	q.Enqueue(7, 9)
	require.Equal(t, 3, q.Len())

	var prios []float64
	for !q.IsEmpty() {
		item, p, _ := q.Dequeue()
		require.Equal(t, 7, item)
		prios = append(prios, p)
	}
	assert.Equal(t, []float64{2, 5, 9}, prios)
}

// TestQueue_TieFavoursLeftChild pins the sift-down tie rule.
//
// Heap after enqueues: [r0, a1, b1, c2]. Dequeue moves c to the root; both
// children have priority 1, the left one (a) must be promoted.
func TestQueue_TieFavoursLeftChild(t *testing.T) {
	q := pqueue.New[string](4)
	q.Enqueue("r", 0)
	q.Enqueue("a", 1)
	q.Enqueue("b", 1)
	q.Enqueue("c", 2)

	var got []string
	for !q.IsEmpty() {
		item, _, _ := q.Dequeue()
		got = append(got, item)
	}
	assert.Equal(t, []string{"r", "a", "b", "c"}, got)
}

func TestQueue_Reset(t *testing.T) {
	q := pqueue.New[int](2)
	q.Enqueue(1, 1)
	q.Enqueue(2, 2)
	q.Reset()
	assert.True(t, q.IsEmpty())
	q.Enqueue(3, 0)
	item, _, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 3, item)
}

// TestQueue_Properties checks heap ordering on random inputs.
func TestQueue_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("dequeue yields sorted priorities", prop.ForAll(
		func(prios []float64) bool {
			q := pqueue.New[int](len(prios))
			for i, p := range prios {
				q.Enqueue(i, p)
			}
			out := make([]float64, 0, len(prios))
			for !q.IsEmpty() {
				_, p, _ := q.Dequeue()
				out = append(out, p)
			}
			want := append([]float64(nil), prios...)
			sort.Float64s(want)
			if len(out) != len(want) {
				return false
			}
			for i := range out {
				if out[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 1e6)),
	))

	properties.Property("length tracks enqueue and dequeue", prop.ForAll(
		func(n int, k int) bool {
			q := pqueue.New[int](0)
			for i := 0; i < n; i++ {
				q.Enqueue(i, float64(n-i))
			}
			if k > n {
				k = n
			}
			for i := 0; i < k; i++ {
				q.Dequeue()
			}
			return q.Len() == n-k
		},
		gen.IntRange(0, 200),
		gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}
