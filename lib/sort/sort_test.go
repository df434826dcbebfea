package sort

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var sorters = []struct {
	name string
	fn   func([]uint64)
}{
	{name: "insertion", fn: Insertion[uint64]},
	{name: "selection", fn: Selection[uint64]},
	{name: "shell", fn: Shell[uint64]},
	{name: "merge top-down", fn: Merge[uint64]},
	{name: "merge bottom-up", fn: MergeBU[uint64]},
	{name: "quick", fn: Quick[uint64]},
	{name: "quick 3-way", fn: Quick3Way[uint64]},
	{name: "heap", fn: Heap[uint64]},
}

func TestSortersOnStrings(t *testing.T) {
	input := []string{"S", "O", "R", "T", "E", "X", "A", "M", "P", "L", "E"}
	expected := []string{"A", "E", "E", "L", "M", "O", "P", "R", "S", "T", "X"}

	type testcase struct {
		name string
		fn   func([]string)
	}
	testcases := []testcase{
		{name: "insertion", fn: Insertion[string]},
		{name: "selection", fn: Selection[string]},
		{name: "shell", fn: Shell[string]},
		{name: "merge top-down", fn: Merge[string]},
		{name: "merge bottom-up", fn: MergeBU[string]},
		{name: "quick", fn: Quick[string]},
		{name: "quick 3-way", fn: Quick3Way[string]},
		{name: "heap", fn: Heap[string]},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			arr := make([]string, len(input))
			copy(arr, input)
			tc.fn(arr)
			require.Equal(tt, expected, arr)
		})
	}
}

func TestSortersOnRandomInput(t *testing.T) {
	for _, tc := range sorters {
		t.Run(tc.name, func(tt *testing.T) {
			arr := make([]uint64, 2000)
			for i := range arr {
				arr[i] = randv2.Uint64() % 500 // plenty of duplicates
			}
			tc.fn(arr)
			require.True(tt, IsSorted(arr))
		})
	}
}

func TestSortersOnEdgeInputs(t *testing.T) {
	for _, tc := range sorters {
		t.Run(tc.name, func(tt *testing.T) {
			empty := []uint64{}
			tc.fn(empty)
			require.True(tt, IsSorted(empty))

			single := []uint64{42}
			tc.fn(single)
			require.Equal(tt, []uint64{42}, single)

			reversed := make([]uint64, 500)
			for i := range reversed {
				reversed[i] = uint64(len(reversed) - i)
			}
			tc.fn(reversed)
			require.True(tt, IsSorted(reversed))
		})
	}
}

func TestBinarySearch(t *testing.T) {
	arr := []int{10, 20, 30, 40, 50, 60}
	require.Equal(t, 0, BinarySearch(arr, 10))
	require.Equal(t, 3, BinarySearch(arr, 40))
	require.Equal(t, 5, BinarySearch(arr, 60))
	require.Equal(t, -1, BinarySearch(arr, 35))
	require.Equal(t, -1, BinarySearch([]int{}, 1))
}

func BenchmarkQuick_Random(b *testing.B) {
	b.StopTimer()
	arr := make([]uint64, 100000)
	for i := range arr {
		arr[i] = randv2.Uint64()
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		cloned := make([]uint64, len(arr))
		copy(cloned, arr)
		Quick(cloned)
	}
}
