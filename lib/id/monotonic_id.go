package id

import (
	"strconv"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const cacheLinePadSize = unsafe.Sizeof(cpu.CacheLinePad{})

// monotonicNonZeroID only increases; if it overflows, it resets to 1.
// The counter occupies a whole cache line to avoid false sharing when
// multiple goroutines draw test keys from the same generator.
type monotonicNonZeroID struct {
	_   [cacheLinePadSize - unsafe.Sizeof(*new(uint64))]byte
	val uint64
	_   [cacheLinePadSize - unsafe.Sizeof(*new(uint64))]byte
}

func (id *monotonicNonZeroID) next() uint64 {
	var v uint64
	if v = atomic.AddUint64(&id.val, 1); v == 0 {
		v = atomic.AddUint64(&id.val, 1)
	}
	return v
}

// Generator yields process-local unique numbers. Zero is never returned.
type Generator interface {
	Number() uint64
	Str() string
}

type delegator struct {
	number func() uint64
	str    func() string
}

func (id *delegator) Number() uint64 { return id.number() }
func (id *delegator) Str() string    { return id.str() }

var _ Generator = (*delegator)(nil)

func MonotonicNonZeroID() (Generator, error) {
	src := &monotonicNonZeroID{val: 0}
	id := &delegator{
		number: src.next,
		str: func() string {
			return strconv.FormatUint(src.next(), 10)
		},
	}
	return id, nil
}
