package strsort

import "errors"

var ErrKeyOutOfRadix = errors.New("[strsort] key outside radix")

// KeyIndexedCounting stably sorts items whose keys are small integers
// in [0, radix) in linear time: count the frequency of each key,
// cumulate the counts into start offsets, then distribute.
func KeyIndexedCounting[T any](items []T, radix int, key func(item T) int) error {
	count := make([]int64, radix+1)
	for _, item := range items {
		k := key(item)
		if k < 0 || k >= radix {
			return ErrKeyOutOfRadix
		}
		count[k+1]++
	}
	for r := 0; r < radix; r++ {
		count[r+1] += count[r]
	}
	aux := make([]T, len(items))
	for _, item := range items {
		aux[count[key(item)]] = item
		count[key(item)]++
	}
	copy(items, aux)
	return nil
}
