// Package sparse provides a sparse set over the byte universe.
//
// A sparse set supports O(1) insertion and membership testing while keeping
// a dense list of members in insertion order. The character class
// parser uses it to collect singleton members without duplicates.
package sparse

// ByteSet is a set of byte values. The zero value is an empty set ready to use.
type ByteSet struct {
	sparse [256]uint16 // value -> index in dense
	dense  [256]byte   // members in insertion order
	size   uint16
}

// Insert adds b to the set. It reports whether b was newly added.
func (s *ByteSet) Insert(b byte) bool {
	if s.Contains(b) {
		return false
	}
	s.dense[s.size] = b
	s.sparse[b] = s.size
	s.size++
	return true
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	idx := s.sparse[b]
	return idx < s.size && s.dense[idx] == b
}

// IsEmpty reports whether the set has no members.
func (s *ByteSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns the members in insertion order.
// The returned slice aliases the set and is valid until the next mutation.
func (s *ByteSet) Values() []byte {
	return s.dense[:s.size]
}
