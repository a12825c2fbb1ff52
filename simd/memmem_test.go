package simd

import (
	"bytes"
	"testing"
)

func TestMemmem(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "abc", "", 0},
		{"empty_both", "", "", 0},
		{"needle_longer", "ab", "abc", -1},
		{"single_byte", "hello", "l", 2},
		{"at_start", "hello world", "hello", 0},
		{"at_end", "hello world", "world", 6},
		{"not_found", "hello world", "xyz", -1},
		{"repeated_prefix", "aaaaaabaaaa", "aab", 4},
		{"rare_byte_first", "zzzqzzzqa", "qa", 7},
		{"overlap_near_end", "abcab", "cabx", -1},
		{"rare_byte_in_middle", "the lazy dog, the lazy fox", "lazy fox", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memmem([]byte(tt.haystack), []byte(tt.needle))
			if got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if std := bytes.Index([]byte(tt.haystack), []byte(tt.needle)); got != std {
				t.Errorf("Memmem(%q, %q) = %d, bytes.Index = %d", tt.haystack, tt.needle, got, std)
			}
		})
	}
}

func TestRareByte(t *testing.T) {
	tests := []struct {
		needle string
		want   int
	}{
		{"eeqe", 2},
		{"qa", 0},
		{"lazy fox", 2},
		{"hello", 0},
		{"aa", 1}, // ties keep the later position
		{"ab\xffc", 2},
	}
	for _, tt := range tests {
		if got := rareByte([]byte(tt.needle)); got != tt.want {
			t.Errorf("rareByte(%q) = %d, want %d", tt.needle, got, tt.want)
		}
	}
}

func TestByteRank(t *testing.T) {
	ordered := []byte{' ', 'e', 'a', 't', 'z', 'Q', 0x80, 0x00}
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if ByteRank(prev) < ByteRank(cur) {
			t.Errorf("ByteRank(%q) = %d < ByteRank(%q) = %d", prev, ByteRank(prev), cur, ByteRank(cur))
		}
	}
}
