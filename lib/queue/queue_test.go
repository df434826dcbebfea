package queue

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedQueueFIFO(t *testing.T) {
	q := NewLinkedQueue[string]()
	require.True(t, q.IsEmpty())
	_, exists := q.Dequeue()
	require.False(t, exists)

	q.Enqueue("to")
	q.Enqueue("be")
	q.Enqueue("or")
	require.Equal(t, int64(3), q.Len())

	head, exists := q.Peek()
	require.True(t, exists)
	require.Equal(t, "to", head)

	e, _ := q.Dequeue()
	require.Equal(t, "to", e)
	e, _ = q.Dequeue()
	require.Equal(t, "be", e)

	// The tail pointer must survive draining to one element.
	q.Enqueue("not")
	e, _ = q.Dequeue()
	require.Equal(t, "or", e)
	e, _ = q.Dequeue()
	require.Equal(t, "not", e)
	require.True(t, q.IsEmpty())
}

func TestMinPriorityQueue(t *testing.T) {
	pq := NewMinPriorityQueue[int]()
	require.True(t, pq.IsEmpty())
	_, exists := pq.Pop()
	require.False(t, exists)

	arr := make([]int, 0, 1000)
	for i := 0; i < 1000; i++ {
		n := int(randv2.Uint32() % 10000)
		arr = append(arr, n)
		pq.Push(n)
	}
	sort.Ints(arr)

	head, exists := pq.Peek()
	require.True(t, exists)
	require.Equal(t, arr[0], head)

	for i := 0; i < len(arr); i++ {
		e, exists := pq.Pop()
		require.True(t, exists)
		require.Equal(t, arr[i], e)
	}
	require.True(t, pq.IsEmpty())
}

func TestMaxPriorityQueue(t *testing.T) {
	pq := NewMaxPriorityQueue[string]()
	for _, s := range []string{"P", "Q", "E", "X", "A", "M"} {
		pq.Push(s)
	}
	e, _ := pq.Pop()
	require.Equal(t, "X", e)
	e, _ = pq.Pop()
	require.Equal(t, "Q", e)
	require.Equal(t, int64(4), pq.Len())
}

func TestArrayPriorityQueueCustomComparator(t *testing.T) {
	type task struct {
		name string
		cost int64
	}
	pq := NewArrayPriorityQueue[task](
		WithArrayPriorityQueueCapacity[task](16),
		WithArrayPriorityQueueComparator[task](func(i, j task) CmpEnum {
			if i.cost < j.cost {
				return iLTj
			} else if i.cost > j.cost {
				return iGTj
			}
			return iEQj
		}),
	)
	pq.Push(task{name: "slow", cost: 10})
	pq.Push(task{name: "fast", cost: 1})
	pq.Push(task{name: "mid", cost: 5})

	e, _ := pq.Pop()
	require.Equal(t, "fast", e.name)
	e, _ = pq.Pop()
	require.Equal(t, "mid", e.name)
}

func TestArrayPriorityQueueMissingComparator(t *testing.T) {
	require.Panics(t, func() {
		_ = NewArrayPriorityQueue[struct{ x int }]()
	})
}

func TestIndexMinPQ(t *testing.T) {
	pq := NewIndexMinPQ[float64](10)
	require.True(t, pq.IsEmpty())
	_, err := pq.DelMin()
	require.ErrorIs(t, err, ErrPriorityQueueEmp)

	require.NoError(t, pq.Insert(3, 9.5))
	require.NoError(t, pq.Insert(7, 1.5))
	require.NoError(t, pq.Insert(1, 4.25))
	require.True(t, pq.Contains(7))
	require.False(t, pq.Contains(2))

	require.ErrorIs(t, pq.Insert(3, 2.0), ErrIndexPresent)
	require.ErrorIs(t, pq.Insert(10, 2.0), ErrIndexOutOfRange)
	require.ErrorIs(t, pq.DecreaseKey(2, 1.0), ErrIndexAbsent)
	require.ErrorIs(t, pq.DecreaseKey(1, 8.0), ErrPriorityNoLower)

	key, err := pq.MinKey()
	require.NoError(t, err)
	require.Equal(t, 1.5, key)

	require.NoError(t, pq.DecreaseKey(3, 0.5))
	i, err := pq.DelMin()
	require.NoError(t, err)
	require.Equal(t, 3, i)
	i, err = pq.DelMin()
	require.NoError(t, err)
	require.Equal(t, 7, i)
	i, err = pq.DelMin()
	require.NoError(t, err)
	require.Equal(t, 1, i)
	require.True(t, pq.IsEmpty())
}
