package simd

import "bytes"

// rareByte returns the index of the rarest byte in needle. Ties keep the
// later position.
func rareByte(needle []byte) int {
	best := len(needle) - 1
	for i := len(needle) - 2; i >= 0; i-- {
		if ByteRank(needle[i]) < ByteRank(needle[best]) {
			best = i
		}
	}
	return best
}

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack. An empty needle matches at 0.
//
// Candidates are located by running Memchr on the rarest byte of needle and
// then verified in full.
//
// Example:
//
//	pos := simd.Memmem([]byte("hello world"), []byte("world"))
//	// pos == 6
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	switch {
	case needleLen == 0:
		return 0
	case needleLen > len(haystack):
		return -1
	case needleLen == 1:
		return Memchr(haystack, needle[0])
	}

	rareIdx := rareByte(needle)
	rare := needle[rareIdx]

	searchStart := rareIdx
	for searchStart < len(haystack) {
		pos := Memchr(haystack[searchStart:], rare)
		if pos < 0 {
			return -1
		}
		pos += searchStart

		start := pos - rareIdx
		if start+needleLen > len(haystack) {
			return -1
		}
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = pos + 1
	}
	return -1
}
