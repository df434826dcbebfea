package sort

import (
	randv2 "math/rand/v2"

	"github.com/xalgo/xalgo/lib/infra"
)

// Comparison sorts over slices of totally ordered keys. All of them
// sort in place; the merge sorts allocate one auxiliary slice.

func less[K infra.OrderedKey](i, j K) bool {
	return infra.OrderedKeyCompare(i, j) < 0
}

// IsSorted reports whether arr is in ascending order.
func IsSorted[K infra.OrderedKey](arr []K) bool {
	for i := 1; i < len(arr); i++ {
		if less(arr[i], arr[i-1]) {
			return false
		}
	}
	return true
}

// Insertion sort: O(n^2) worst case, linear on nearly sorted input.
func Insertion[K infra.OrderedKey](arr []K) {
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && less(arr[j], arr[j-1]); j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}

// Selection sort: O(n^2) always, but only n-1 exchanges.
func Selection[K infra.OrderedKey](arr []K) {
	for i := 0; i < len(arr); i++ {
		_min := i
		for j := i + 1; j < len(arr); j++ {
			if less(arr[j], arr[_min]) {
				_min = j
			}
		}
		arr[i], arr[_min] = arr[_min], arr[i]
	}
}

// Shell sort with Knuth's 3x+1 increments.
func Shell[K infra.OrderedKey](arr []K) {
	n := len(arr)
	h := 1
	for h < n/3 {
		h = 3*h + 1
	}
	for ; h >= 1; h /= 3 {
		for i := h; i < n; i++ {
			for j := i; j >= h && less(arr[j], arr[j-h]); j -= h {
				arr[j], arr[j-h] = arr[j-h], arr[j]
			}
		}
	}
}

// Merge is stable top-down mergesort, O(n log n) with O(n) extra space.
func Merge[K infra.OrderedKey](arr []K) {
	aux := make([]K, len(arr))
	mergeSort(arr, aux, 0, len(arr)-1)
}

func mergeSort[K infra.OrderedKey](arr, aux []K, lo, hi int) {
	if hi <= lo {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(arr, aux, lo, mid)
	mergeSort(arr, aux, mid+1, hi)
	merge(arr, aux, lo, mid, hi)
}

// MergeBU is stable bottom-up mergesort, no recursion.
func MergeBU[K infra.OrderedKey](arr []K) {
	n := len(arr)
	aux := make([]K, n)
	for length := 1; length < n; length <<= 1 {
		for lo := 0; lo < n-length; lo += length << 1 {
			merge(arr, aux, lo, lo+length-1, min(lo+(length<<1)-1, n-1))
		}
	}
}

func merge[K infra.OrderedKey](arr, aux []K, lo, mid, hi int) {
	copy(aux[lo:hi+1], arr[lo:hi+1])
	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		if i > mid {
			arr[k] = aux[j]
			j++
		} else if j > hi {
			arr[k] = aux[i]
			i++
		} else if less(aux[j], aux[i]) {
			arr[k] = aux[j]
			j++
		} else {
			arr[k] = aux[i]
			i++
		}
	}
}

// Quick sorts with 2-way partitioning after a uniform shuffle, which
// makes the quadratic worst case vanishingly unlikely.
func Quick[K infra.OrderedKey](arr []K) {
	shuffle(arr)
	quickSort(arr, 0, len(arr)-1)
}

func quickSort[K infra.OrderedKey](arr []K, lo, hi int) {
	if hi <= lo {
		return
	}
	j := partition(arr, lo, hi)
	quickSort(arr, lo, j-1)
	quickSort(arr, j+1, hi)
}

func partition[K infra.OrderedKey](arr []K, lo, hi int) int {
	v := arr[lo]
	i, j := lo, hi+1
	for {
		for i++; less(arr[i], v); i++ {
			if i == hi {
				break
			}
		}
		for j--; less(v, arr[j]); j-- {
			if j == lo {
				break
			}
		}
		if i >= j {
			break
		}
		arr[i], arr[j] = arr[j], arr[i]
	}
	arr[lo], arr[j] = arr[j], arr[lo]
	return j
}

// Quick3Way partitions into <, ==, > bands, linear on inputs with few
// distinct keys.
func Quick3Way[K infra.OrderedKey](arr []K) {
	shuffle(arr)
	quick3WaySort(arr, 0, len(arr)-1)
}

func quick3WaySort[K infra.OrderedKey](arr []K, lo, hi int) {
	if hi <= lo {
		return
	}
	lt, gt := lo, hi
	v := arr[lo]
	i := lo + 1
	for i <= gt {
		res := infra.OrderedKeyCompare(arr[i], v)
		if res < 0 {
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		} else if res > 0 {
			arr[i], arr[gt] = arr[gt], arr[i]
			gt--
		} else {
			i++
		}
	}
	quick3WaySort(arr, lo, lt-1)
	quick3WaySort(arr, gt+1, hi)
}

// Heap sorts via a 1-based implicit binary heap built in place:
// sink-based construction then repeated swap-and-sink.
func Heap[K infra.OrderedKey](arr []K) {
	n := len(arr)
	for k := n / 2; k >= 1; k-- {
		sink(arr, k, n)
	}
	for n > 1 {
		arr[0], arr[n-1] = arr[n-1], arr[0]
		n--
		sink(arr, 1, n)
	}
}

// sink re-heapifies downward; k and indices are 1-based over arr[0:n].
func sink[K infra.OrderedKey](arr []K, k, n int) {
	for k<<1 <= n {
		j := k << 1
		if j < n && less(arr[j-1], arr[j]) {
			j++
		}
		if !less(arr[k-1], arr[j-1]) {
			break
		}
		arr[k-1], arr[j-1] = arr[j-1], arr[k-1]
		k = j
	}
}

func shuffle[K infra.OrderedKey](arr []K) {
	for i := len(arr) - 1; i > 0; i-- {
		j := int(randv2.Uint64() % uint64(i+1))
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// BinarySearch returns the index of key in the sorted slice arr, or -1.
func BinarySearch[K infra.OrderedKey](arr []K, key K) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		res := infra.OrderedKeyCompare(key, arr[mid])
		if res < 0 {
			hi = mid - 1
		} else if res > 0 {
			lo = mid + 1
		} else {
			return mid
		}
	}
	return -1
}
