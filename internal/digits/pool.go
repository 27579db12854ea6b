// This file provides memory pooling for digit vectors to reduce GC pressure.

package digits

import (
	"math/bits"
	"sync"
)

// digitPools pools []Digit slices by size class. Size classes are powers of 4
// starting at 4^2 = 16 digits, which keeps fragmentation low while covering
// everything from single-word scratch values up to ~4M-digit operands.
var digitPools = [...]sync.Pool{
	{New: func() any { return make([]Digit, 16) }},
	{New: func() any { return make([]Digit, 64) }},
	{New: func() any { return make([]Digit, 256) }},
	{New: func() any { return make([]Digit, 1024) }},
	{New: func() any { return make([]Digit, 4096) }},
	{New: func() any { return make([]Digit, 16384) }},
	{New: func() any { return make([]Digit, 65536) }},
	{New: func() any { return make([]Digit, 262144) }},
	{New: func() any { return make([]Digit, 1048576) }},
	{New: func() any { return make([]Digit, 4194304) }},
}

// digitPoolSizes defines the size classes for the digit vector pools.
var digitPoolSizes = [...]int{16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

// digitPoolIndex returns the pool index for a given size, or -1 if the size
// is too large for pooling.
//
// Size classes are 4^(i+2), so the index falls out of bits.Len directly
// instead of a linear search.
func digitPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > digitPoolSizes[len(digitPoolSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 3) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireDigits returns a zeroed digit slice of at least the given size. The
// returned slice has its full class length, so callers see extra zero
// capacity beyond what they asked for. Slices too large for pooling are
// allocated directly.
func acquireDigits(size int) []Digit {
	idx := digitPoolIndex(size)
	if idx < 0 {
		return make([]Digit, size)
	}
	buf := digitPools[idx].Get().([]Digit)
	clear(buf)
	return buf
}

// releaseDigits returns a digit slice to its pool. Slices whose capacity does
// not match a size class were directly allocated and are left to the GC.
// Safe to call with nil.
func releaseDigits(buf []Digit) {
	if buf == nil {
		return
	}
	c := cap(buf)
	idx := digitPoolIndex(c)
	if idx >= 0 && digitPoolSizes[idx] == c {
		digitPools[idx].Put(buf[:c])
	}
}
