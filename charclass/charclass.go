// Package charclass parses bracket expression bodies and evaluates them
// against a whole line.
//
// Evaluation is a line-level containment test, not a test of the byte at a
// cursor: a positive class matches when any member occurs anywhere in the
// line, a negated class matches only when no member occurs in it.
package charclass

import (
	"github.com/coregx/minigrep/internal/sparse"
	"github.com/coregx/minigrep/simd"
)

// Range is an inclusive byte range. A range with Lo > Hi contains nothing.
type Range struct {
	Lo, Hi byte
}

// Contains reports whether b lies in the range.
func (r Range) Contains(b byte) bool {
	return r.Lo <= b && b <= r.Hi
}

// Class is a parsed class body: singleton members, ranges and polarity.
type Class struct {
	Negated    bool
	Singletons sparse.ByteSet
	Ranges     []Range
}

// Parse splits body, the text strictly between '[' (or "[^") and ']', into
// members. Whenever a byte is followed by '-' and one more byte the triple
// becomes a range, otherwise the byte is a singleton. A '-' that cannot
// start or close a range is a singleton.
//
// Example:
//
//	c := charclass.Parse("a-z_", false)
//	// c.Ranges == []Range{{'a', 'z'}}, c.Singletons holds '_'
func Parse(body string, negated bool) *Class {
	c := &Class{Negated: negated}
	for i := 0; i < len(body); {
		if i+2 < len(body) && body[i+1] == '-' {
			c.Ranges = append(c.Ranges, Range{Lo: body[i], Hi: body[i+2]})
			i += 3
			continue
		}
		c.Singletons.Insert(body[i])
		i++
	}
	return c
}

// Contains reports whether b is a member of the class, ignoring polarity.
func (c *Class) Contains(b byte) bool {
	if c.Singletons.Contains(b) {
		return true
	}
	for _, r := range c.Ranges {
		if r.Contains(b) {
			return true
		}
	}
	return false
}

// Table returns the 256-entry membership table of the class members,
// ignoring polarity.
func (c *Class) Table() *[256]bool {
	var table [256]bool
	for b := 0; b < len(table); b++ {
		table[b] = c.Contains(byte(b))
	}
	return &table
}

// MatchLine evaluates the class against the whole line. A class without
// members never scans the line.
func (c *Class) MatchLine(line []byte) bool {
	if c.Singletons.IsEmpty() && len(c.Ranges) == 0 {
		return c.Negated
	}
	found := simd.MemchrInTable(line, c.Table()) >= 0
	return found != c.Negated
}

// Evaluate parses body and evaluates it against line in one step. The class
// is built fresh on every call.
//
// Example:
//
//	charclass.Evaluate([]byte("apple"), "xyz", true) // true: 'a' is outside the set
//	charclass.Evaluate([]byte("xyz"), "xyz", true)   // false
func Evaluate(line []byte, body string, negated bool) bool {
	return Parse(body, negated).MatchLine(line)
}

// Split interprets the interior of a bracket expression, the text between
// '[' and ']', returning the body and whether the class is negated.
func Split(interior string) (body string, negated bool) {
	if len(interior) > 0 && interior[0] == '^' {
		return interior[1:], true
	}
	return interior, false
}
