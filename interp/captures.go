package interp

import "strings"

// captures is the group table of one attempt. Group indices follow the
// lexical order of '(' in the pattern, nested groups included, starting at 1.
// Nested groups are matched by a recursive search with its own table, so
// their indices are reserved here but never filled.
type captures struct {
	groups map[int]string
	next   int
}

// add records the text of the group whose interior is group and reserves
// indices for the groups nested inside it.
func (c *captures) add(group, text string) {
	if c.groups == nil {
		c.groups = make(map[int]string)
		c.next = 1
	}
	c.groups[c.next] = text
	c.next += 1 + countGroups(group)
}

// get returns the text captured for group idx.
func (c *captures) get(idx int) (string, bool) {
	text, ok := c.groups[idx]
	return text, ok
}

// countGroups counts the '(' of pattern that open a group, skipping escaped
// bytes and class bodies the way the matcher scans them.
func countGroups(pattern string) int {
	n := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if i+1 < len(pattern) && pattern[i+1] == '[' {
				i = classEnd(pattern, i+1)
			} else {
				i++
			}
		case '[':
			i = classEnd(pattern, i)
		case '(':
			n++
		}
	}
	return n
}

// classEnd returns the index of the first ']' after open, or len(pattern).
func classEnd(pattern string, open int) int {
	end := strings.IndexByte(pattern[open+1:], ']')
	if end < 0 {
		return len(pattern)
	}
	return open + 1 + end
}
