package tree

import (
	"math"
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xalgo/xalgo/lib/id"
	"github.com/xalgo/xalgo/lib/infra"
)

func newSelfCheckedMap[K infra.OrderedKey, V any](t *testing.T) OrderedMap[K, V] {
	t.Helper()
	return NewOrderedMap[K, V](WithOrderedMapSelfValidation[K, V]())
}

func TestOrderedMapPutShape(t *testing.T) {
	type checkData struct {
		color RBColor
		key   uint64
	}

	tree := newSelfCheckedMap[uint64, uint64](t)

	tree.Put(52, 1)
	expected := []checkData{
		{Black, 52},
	}
	tree.Foreach(func(idx int64, color RBColor, key uint64, val uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})

	tree.Put(47, 1)
	expected = []checkData{
		{Red, 47}, {Black, 52},
	}
	tree.Foreach(func(idx int64, color RBColor, key uint64, val uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})

	tree.Put(3, 1)
	expected = []checkData{
		{Black, 3}, {Black, 47}, {Black, 52},
	}
	tree.Foreach(func(idx int64, color RBColor, key uint64, val uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})

	tree.Put(35, 1)
	expected = []checkData{
		{Red, 3}, {Black, 35}, {Black, 47}, {Black, 52},
	}
	tree.Foreach(func(idx int64, color RBColor, key uint64, val uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})

	tree.Put(24, 1)
	expected = []checkData{
		{Black, 3}, {Red, 24}, {Black, 35}, {Black, 47}, {Black, 52},
	}
	tree.Foreach(func(idx int64, color RBColor, key uint64, val uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})

	require.NoError(t, Validate[uint64, uint64](tree))
	require.Equal(t, int64(5), tree.Len())
}

func TestOrderedMapGetPut(t *testing.T) {
	tree := newSelfCheckedMap[int, string](t)

	tree.Put(1, "one")
	tree.Put(5, "five")
	tree.Put(3, "three")
	tree.Put(2, "two")
	tree.Put(8, "eight")
	tree.Put(6, "six")

	val, exists := tree.Get(5)
	require.True(t, exists)
	require.Equal(t, "five", val)
	require.Equal(t, int64(6), tree.Len())
	require.False(t, tree.Contains(4))

	// Duplicate key overwrites in place, no structural change.
	tree.Put(5, "FIVE")
	val, exists = tree.Get(5)
	require.True(t, exists)
	require.Equal(t, "FIVE", val)
	require.Equal(t, int64(6), tree.Len())
}

func TestOrderedMapEmptyQueries(t *testing.T) {
	tree := newSelfCheckedMap[int, int](t)

	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(-1), tree.Height())

	_, exists := tree.Min()
	require.False(t, exists)
	_, exists = tree.Max()
	require.False(t, exists)
	_, exists = tree.Floor(0)
	require.False(t, exists)
	_, exists = tree.Ceiling(0)
	require.False(t, exists)
	_, exists = tree.Select(0)
	require.False(t, exists)
	require.Equal(t, int64(0), tree.Rank(42))

	_, _, err := tree.RemoveMin()
	require.ErrorIs(t, err, ErrUnderflow)
	_, _, err = tree.RemoveMax()
	require.ErrorIs(t, err, ErrUnderflow)

	_, removed := tree.Remove(42)
	require.False(t, removed)
	require.Equal(t, int64(0), tree.Len())
}

func TestOrderedMapHeightBound_SequentialKeys(t *testing.T) {
	tree := newSelfCheckedMap[int, int](t)

	for i := 0; i < 200; i++ {
		tree.Put(i, i)
	}
	require.Equal(t, int64(7), tree.Height())

	bound := int64(2 * math.Log2(float64(tree.Len()+1)))
	require.LessOrEqual(t, tree.Height(), bound)
}

func TestOrderedMapHeightBound_SortedLetters(t *testing.T) {
	tree := newSelfCheckedMap[byte, int](t)

	// Sorted input, the worst case for a plain BST.
	for c := byte('A'); c <= byte('X'); c++ {
		tree.Put(c, int(c))
	}
	require.Equal(t, int64(24), tree.Len())
	bound := int64(2 * math.Log2(float64(tree.Len()+1)))
	require.LessOrEqual(t, tree.Height(), bound)
}

func TestOrderedMapRemoveEveryTenth(t *testing.T) {
	tree := newSelfCheckedMap[int, int](t)

	for i := 0; i < 1000; i++ {
		tree.Put(i, i)
	}
	require.True(t, tree.Contains(600))

	for i := 500; i < 1000; i += 10 {
		val, removed := tree.Remove(i)
		require.True(t, removed)
		require.Equal(t, i, val)
	}
	require.False(t, tree.Contains(600))
	require.Equal(t, int64(950), tree.Len())
}

func TestOrderedMapRemoveMinMax(t *testing.T) {
	tree := newSelfCheckedMap[uint64, uint64](t)

	tree.Put(52, 1)
	tree.Put(47, 1)
	tree.Put(3, 1)
	tree.Put(35, 1)
	tree.Put(24, 1)

	key, _, err := tree.RemoveMin()
	require.NoError(t, err)
	require.Equal(t, uint64(3), key)

	key, _, err = tree.RemoveMax()
	require.NoError(t, err)
	require.Equal(t, uint64(52), key)

	key, _, err = tree.RemoveMin()
	require.NoError(t, err)
	require.Equal(t, uint64(24), key)

	key, _, err = tree.RemoveMax()
	require.NoError(t, err)
	require.Equal(t, uint64(47), key)

	key, _, err = tree.RemoveMin()
	require.NoError(t, err)
	require.Equal(t, uint64(35), key)
	require.True(t, tree.IsEmpty())

	_, _, err = tree.RemoveMin()
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestOrderedMapOrderedQueries(t *testing.T) {
	tree := newSelfCheckedMap[int, int](t)

	for _, k := range []int{20, 10, 40, 30, 50} {
		tree.Put(k, k*10)
	}

	minKey, exists := tree.Min()
	require.True(t, exists)
	require.Equal(t, 10, minKey)
	maxKey, exists := tree.Max()
	require.True(t, exists)
	require.Equal(t, 50, maxKey)

	floor, exists := tree.Floor(35)
	require.True(t, exists)
	require.Equal(t, 30, floor)
	floor, exists = tree.Floor(30)
	require.True(t, exists)
	require.Equal(t, 30, floor)
	_, exists = tree.Floor(5)
	require.False(t, exists)

	ceiling, exists := tree.Ceiling(35)
	require.True(t, exists)
	require.Equal(t, 40, ceiling)
	ceiling, exists = tree.Ceiling(50)
	require.True(t, exists)
	require.Equal(t, 50, ceiling)
	_, exists = tree.Ceiling(55)
	require.False(t, exists)

	require.Equal(t, int64(0), tree.Rank(10))
	require.Equal(t, int64(2), tree.Rank(30))
	require.Equal(t, int64(2), tree.Rank(25))
	require.Equal(t, int64(5), tree.Rank(60))

	for _, k := range tree.Keys() {
		got, exists := tree.Select(tree.Rank(k))
		require.True(t, exists)
		require.Equal(t, k, got)
	}
	_, exists = tree.Select(-1)
	require.False(t, exists)
	_, exists = tree.Select(tree.Len())
	require.False(t, exists)
}

func TestOrderedMapKeysAscending(t *testing.T) {
	tree := newSelfCheckedMap[uint64, uint64](t)

	for i := 0; i < 5000; i++ {
		tree.Put(randv2.Uint64()%2000, 1)
	}

	keys := tree.Keys()
	require.Equal(t, int64(len(keys)), tree.Len())
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i])
	}
}

func TestOrderedMapForeachEarlyStop(t *testing.T) {
	tree := newSelfCheckedMap[int, int](t)
	for i := 0; i < 100; i++ {
		tree.Put(i, i)
	}

	visited := int64(0)
	tree.Foreach(func(idx int64, color RBColor, key int, val int) bool {
		visited++
		return idx < 9
	})
	require.Equal(t, int64(10), visited)

	// Restartable: a second walk starts over from the minimum.
	tree.Foreach(func(idx int64, color RBColor, key int, val int) bool {
		require.Equal(t, int(idx), key)
		return true
	})
}

func orderedMapRandomInsertAndRemoveRunCore(t *testing.T, total uint64, violationCheck bool) {
	insertTotal := uint64(float64(total) * 0.8)
	removeTotal := uint64(float64(total) * 0.2)

	idGen, _ := id.MonotonicNonZeroID()
	insertElements := make([]uint64, 0, insertTotal)
	removeElements := make([]uint64, 0, removeTotal)

	ignore := uint32(0)
	for {
		num := idGen.Number()
		if ignore > 0 {
			ignore--
			continue
		}
		ignore = randv2.Uint32() % 100
		if ignore&0x1 == 0 && uint64(len(insertElements)) < insertTotal {
			insertElements = append(insertElements, num)
		} else if ignore&0x1 == 1 && uint64(len(removeElements)) < removeTotal {
			removeElements = append(removeElements, num)
		}
		if uint64(len(insertElements)) == insertTotal && uint64(len(removeElements)) == removeTotal {
			break
		}
	}

	shuffle := func(arr []uint64) {
		count := uint32(len(arr) >> 2)
		for i := uint32(0); i < count; i++ {
			j := randv2.Uint32() % (i + 1)
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	shuffle(insertElements)
	shuffle(removeElements)

	tree := NewOrderedMap[uint64, uint64]()

	for i := uint64(0); i < insertTotal; i++ {
		tree.Put(insertElements[i], i)
		if violationCheck {
			require.NoError(t, Validate[uint64, uint64](tree))
		}
	}
	sort.Slice(insertElements, func(i, j int) bool {
		return insertElements[i] < insertElements[j]
	})
	tree.Foreach(func(idx int64, color RBColor, key uint64, val uint64) bool {
		require.Equal(t, insertElements[idx], key)
		return true
	})

	for i := uint64(0); i < removeTotal; i++ {
		tree.Put(removeElements[i], 1)
		if violationCheck {
			require.NoError(t, Validate[uint64, uint64](tree))
		}
	}

	for i := uint64(0); i < removeTotal; i++ {
		val, removed := tree.Remove(removeElements[i])
		require.True(t, removed)
		_ = val
		if violationCheck {
			require.NoError(t, Validate[uint64, uint64](tree))
		}
	}
	tree.Foreach(func(idx int64, color RBColor, key uint64, val uint64) bool {
		require.Equal(t, insertElements[idx], key)
		return true
	})
	require.Equal(t, int64(insertTotal), tree.Len())
}

func TestOrderedMapRandomInsertAndRemove_RandomMonotonicNumber(t *testing.T) {
	type testcase struct {
		name           string
		total          uint64
		violationCheck bool
	}
	testcases := []testcase{
		{
			name:  "no violation check 100000",
			total: 100000,
		},
		{
			name:           "violation check 2000",
			total:          2000,
			violationCheck: true,
		},
		{
			name:           "violation check 5000",
			total:          5000,
			violationCheck: true,
		},
	}
	t.Parallel()
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			orderedMapRandomInsertAndRemoveRunCore(tt, tc.total, tc.violationCheck)
		})
	}
}

func TestOrderedMapRemoveAbsentIdempotent(t *testing.T) {
	tree := newSelfCheckedMap[int, int](t)
	for i := 0; i < 64; i++ {
		tree.Put(i*2, i)
	}
	before := tree.Keys()

	_, removed := tree.Remove(33)
	require.False(t, removed)
	_, removed = tree.Remove(-1)
	require.False(t, removed)
	require.Equal(t, before, tree.Keys())
	require.Equal(t, int64(64), tree.Len())
}

func TestOrderedMapRelease(t *testing.T) {
	tree := newSelfCheckedMap[uint64, uint64](t)
	for i := uint64(0); i < 10000; i++ {
		tree.Put(i, 1)
	}
	tree.Release()
	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
	require.True(t, tree.IsEmpty())
}

func BenchmarkOrderedMap_PutRandom(b *testing.B) {
	testByBytes := []byte(`abc`)

	b.StopTimer()
	tree := NewOrderedMap[int, []byte]()
	rngArr := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		rngArr = append(rngArr, randv2.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Put(rngArr[i], testByBytes)
	}
}

func BenchmarkOrderedMap_PutSerial(b *testing.B) {
	testByBytes := []byte(`abc`)

	b.StopTimer()
	tree := NewOrderedMap[int, []byte]()

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Put(i, testByBytes)
	}
}
