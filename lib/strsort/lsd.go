package strsort

import "errors"

var ErrRaggedStrings = errors.New("[strsort] strings must share one width")

const byteRadix = 256

// LSD sorts fixed-width byte strings by key-indexed counting on each
// character position from rightmost to leftmost. Each pass is stable,
// so after the last one the items are sorted on the whole width.
func LSD(items []string, width int) error {
	for _, item := range items {
		if len(item) != width {
			return ErrRaggedStrings
		}
	}
	aux := make([]string, len(items))
	for d := width - 1; d >= 0; d-- {
		var count [byteRadix + 1]int64
		for _, item := range items {
			count[int(item[d])+1]++
		}
		for r := 0; r < byteRadix; r++ {
			count[r+1] += count[r]
		}
		for _, item := range items {
			aux[count[item[d]]] = item
			count[item[d]]++
		}
		copy(items, aux)
	}
	return nil
}
