package strsort

// msdCutoff is the subarray size below which insertion sort wins over
// another counting pass.
const msdCutoff = 15

// charAt treats the string as terminated by a virtual -1, so shorter
// strings order before their extensions.
func charAt(s string, d int) int {
	if d < len(s) {
		return int(s[d])
	}
	return -1
}

// MSD sorts variable-length byte strings by key-indexed counting on
// the leading character, then recursively on each character class.
func MSD(items []string) {
	aux := make([]string, len(items))
	msdSort(items, aux, 0, len(items)-1, 0)
}

func msdSort(items, aux []string, lo, hi, d int) {
	if hi <= lo+msdCutoff {
		msdInsertion(items, lo, hi, d)
		return
	}
	// count[r+2] buckets: one for the -1 terminator, one for the
	// cumulate shift.
	count := make([]int64, byteRadix+2)
	for i := lo; i <= hi; i++ {
		count[charAt(items[i], d)+2]++
	}
	for r := 0; r < byteRadix+1; r++ {
		count[r+1] += count[r]
	}
	for i := lo; i <= hi; i++ {
		c := charAt(items[i], d) + 1
		aux[count[c]] = items[i]
		count[c]++
	}
	for i := lo; i <= hi; i++ {
		items[i] = aux[i-lo]
	}
	for r := 0; r < byteRadix; r++ {
		msdSort(items, aux, lo+int(count[r]), lo+int(count[r+1])-1, d+1)
	}
}

func msdInsertion(items []string, lo, hi, d int) {
	for i := lo; i <= hi; i++ {
		for j := i; j > lo && items[j][d:] < items[j-1][d:]; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
