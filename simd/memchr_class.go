package simd

import (
	"encoding/binary"
	"math/bits"
)

// rangeMask sets the high bit of every byte of x that lies in [lo, hi].
// Requires hi < 0x7F. Each lane is forced to >= 0x80 before subtracting, so
// no borrow crosses a byte boundary and the mask is exact for every lane.
func rangeMask(x uint64, lo, hi byte) uint64 {
	h := x | hi8
	return (h - uint64(lo)*lo8) &^ (h - uint64(hi+1)*lo8) &^ x & hi8
}

func digitMask(x uint64) uint64 {
	return rangeMask(x, '0', '9')
}

func alnumMask(x uint64) uint64 {
	return rangeMask(x, '0', '9') | rangeMask(x, 'A', 'Z') | rangeMask(x, 'a', 'z')
}

// MemchrDigit returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if no digit is found.
//
// Example:
//
//	pos := simd.MemchrDigit([]byte("hello 123 world"))
//	// pos == 6
func MemchrDigit(haystack []byte) int {
	return scanMask(haystack, digitMask, IsDigit)
}

// MemchrAlnum returns the index of the first ASCII letter or digit
// [A-Za-z0-9] in haystack, or -1 if there is none. The underscore is not
// alphanumeric.
func MemchrAlnum(haystack []byte) int {
	return scanMask(haystack, alnumMask, IsAlnum)
}

func scanMask(haystack []byte, mask func(uint64) uint64, pred func(byte) bool) int {
	idx := 0
	for ; idx+8 <= len(haystack); idx += 8 {
		if m := mask(binary.LittleEndian.Uint64(haystack[idx:])); m != 0 {
			return idx + bits.TrailingZeros64(m)/8
		}
	}
	for ; idx < len(haystack); idx++ {
		if pred(haystack[idx]) {
			return idx
		}
	}
	return -1
}

// MemchrInTable finds the first byte where table[byte] is true.
// Returns position or -1 if not found.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return IsDigit(b) || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
