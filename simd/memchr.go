// Package simd provides word-at-a-time byte scanning kernels for the
// line-level existence tests of the matcher: single byte containment, ASCII
// digit and alphanumeric detection, lookup-table classes and substring search.
//
// All kernels use SWAR (SIMD Within A Register): eight bytes are loaded as a
// little-endian uint64 and tested in parallel with carry-free bit arithmetic.
// On CPUs with wide vector units the byte search kernels unroll to 32 bytes
// per iteration.
package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// wideSWAR selects the 32-byte unrolled loop in Memchr. It is a package
// variable so tests can exercise both loops on any machine.
var wideSWAR = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// zeroMask sets the high bit of the lowest zero byte of x. Bits above the
// lowest match may be spurious, so only the trailing zero count is meaningful.
func zeroMask(x uint64) uint64 {
	return (x - lo8) &^ x & hi8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		return memchrBytewise(haystack, needle, 0)
	}

	mask := uint64(needle) * lo8
	idx := 0

	if wideSWAR {
		for ; idx+32 <= n; idx += 32 {
			z0 := zeroMask(binary.LittleEndian.Uint64(haystack[idx:]) ^ mask)
			z1 := zeroMask(binary.LittleEndian.Uint64(haystack[idx+8:]) ^ mask)
			z2 := zeroMask(binary.LittleEndian.Uint64(haystack[idx+16:]) ^ mask)
			z3 := zeroMask(binary.LittleEndian.Uint64(haystack[idx+24:]) ^ mask)
			if z0|z1|z2|z3 != 0 {
				return idx + firstInBlock(z0, z1, z2, z3)
			}
		}
	}

	for ; idx+8 <= n; idx += 8 {
		if z := zeroMask(binary.LittleEndian.Uint64(haystack[idx:]) ^ mask); z != 0 {
			return idx + bits.TrailingZeros64(z)/8
		}
	}

	return memchrBytewise(haystack, needle, idx)
}

// firstInBlock converts four per-word match masks of a 32-byte block into
// the offset of the first matching byte. At least one mask must be non-zero.
func firstInBlock(z0, z1, z2, z3 uint64) int {
	switch {
	case z0 != 0:
		return bits.TrailingZeros64(z0) / 8
	case z1 != 0:
		return 8 + bits.TrailingZeros64(z1)/8
	case z2 != 0:
		return 16 + bits.TrailingZeros64(z2)/8
	default:
		return 24 + bits.TrailingZeros64(z3)/8
	}
}

func memchrBytewise(haystack []byte, needle byte, from int) int {
	for i := from; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
