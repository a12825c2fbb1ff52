// Package interp implements the general matcher: an unanchored search that
// interprets the pattern text directly, without compiling it.
//
// For every start offset the pattern is consumed strictly left to right.
// Each construct commits as soon as it succeeds; nothing is retried with a
// different length. Parenthesized groups are matched by a fresh recursive
// search over a slice of the input whose length is predicted from the group
// text, and their text is remembered for backreferences.
package interp

import (
	"strings"

	"github.com/coregx/minigrep/charclass"
	"github.com/coregx/minigrep/simd"
	"github.com/coregx/minigrep/syntax"
)

// outcome of a single start offset.
type outcome int

const (
	// attemptFailed moves the search to the next start offset.
	attemptFailed outcome = iota
	// attemptMatched ends the search with a match.
	attemptMatched
	// searchFailed ends the whole search without a match.
	searchFailed
)

// Match reports whether pattern matches anywhere in line.
//
// Start offsets run from 0 to len(line) inclusive, so a pattern whose every
// element can match empty also matches at the end of the line. An error is
// returned only for an escape sequence the matcher does not support.
//
// Example:
//
//	ok, _ := interp.Match("cat cat", `(cat) \1`)
//	// ok == true
func Match(line, pattern string) (bool, error) {
	m := &matcher{line: line, pattern: pattern}
	for start := 0; start <= len(line); start++ {
		out, err := m.attempt(start)
		if err != nil {
			return false, err
		}
		switch out {
		case attemptMatched:
			return true, nil
		case searchFailed:
			return false, nil
		}
	}
	return false, nil
}

// matcher holds the immutable inputs of one Match call.
type matcher struct {
	line    string
	pattern string
}

// attempt consumes the whole pattern starting at line[start:]. temp is the
// input cursor, j the pattern cursor.
func (m *matcher) attempt(start int) (outcome, error) {
	line, pattern := m.line, m.pattern
	var caps captures
	temp := start

	for j := 0; j < len(pattern); {
		switch pattern[j] {
		case '\\':
			if j+1 >= len(pattern) {
				return attemptFailed, nil
			}
			out, next, consumed, err := m.escape(j+1, temp, &caps)
			if err != nil || out != attemptMatched {
				return out, err
			}
			temp += consumed
			j = next

		case '+':
			if j == 0 {
				return searchFailed, nil
			}
			c := pattern[j-1]
			if temp >= len(line) || line[temp] != c {
				return attemptFailed, nil
			}
			for temp < len(line) && line[temp] == c {
				temp++
			}
			j++

		case '?':
			if j == 0 {
				return searchFailed, nil
			}
			if temp < len(line) && line[temp] == pattern[j-1] {
				temp++
			}
			j++

		case '.':
			if temp >= len(line) {
				return attemptFailed, nil
			}
			temp++
			j++

		case '(':
			closing := matchingParen(pattern, j)
			if closing < 0 {
				return searchFailed, nil
			}
			group := pattern[j+1 : closing]
			n := predictedLen(group)
			if temp+n > len(line) {
				return searchFailed, nil
			}
			slice := line[temp : temp+n]
			ok, err := Match(slice, group)
			if err != nil {
				return searchFailed, err
			}
			if !ok {
				return searchFailed, nil
			}
			caps.add(group, slice)
			temp += n
			j = closing + 1

		case '[':
			end := strings.IndexByte(pattern[j+1:], ']')
			if end < 0 {
				return searchFailed, nil
			}
			end += j + 1
			body, negated := charclass.Split(pattern[j+1 : end])
			if !charclass.Evaluate([]byte(line), body, negated) {
				return attemptFailed, nil
			}
			j = end + 1

		default:
			if temp < len(line) && line[temp] == pattern[j] {
				temp++
				j++
				continue
			}
			if j+1 < len(pattern) && pattern[j+1] == '?' {
				j += 2
				continue
			}
			return attemptFailed, nil
		}
	}
	return attemptMatched, nil
}

// escape handles the escape whose letter is pattern[k]. It returns the
// outcome, the pattern position after the escape and the number of input
// bytes consumed at temp.
func (m *matcher) escape(k, temp int, caps *captures) (out outcome, next, consumed int, err error) {
	line, pattern := m.line, m.pattern
	atEnd := temp >= len(line)

	switch esc := pattern[k]; {
	case esc == 'd':
		if atEnd || !simd.IsDigit(line[temp]) {
			return attemptFailed, 0, 0, nil
		}
		return attemptMatched, k + 1, 1, nil

	case esc == 'w':
		if atEnd || !simd.IsAlnum(line[temp]) {
			return attemptFailed, 0, 0, nil
		}
		return attemptMatched, k + 1, 1, nil

	case esc >= '0' && esc <= '9':
		text, ok := caps.get(int(esc - '0'))
		if !ok {
			return searchFailed, 0, 0, nil
		}
		if !strings.HasPrefix(line[temp:], text) {
			return attemptFailed, 0, 0, nil
		}
		return attemptMatched, k + 1, len(text), nil

	case esc == '[':
		end := strings.IndexByte(pattern[k:], ']')
		if end < 0 {
			return searchFailed, 0, 0, nil
		}
		end += k
		body, negated := charclass.Split(pattern[k+1 : end])
		if !charclass.Evaluate([]byte(line), body, negated) {
			return attemptFailed, 0, 0, nil
		}
		return attemptMatched, end + 1, 0, nil

	case esc == '\\':
		if atEnd || line[temp] != '\\' {
			return attemptFailed, 0, 0, nil
		}
		return attemptMatched, k + 1, 1, nil

	default:
		return searchFailed, 0, 0, syntax.UnsupportedEscape(pattern, k-1)
	}
}

// matchingParen returns the index of the ')' closing the '(' at open, or -1.
func matchingParen(pattern string, open int) int {
	depth := 1
	for k := open + 1; k < len(pattern); k++ {
		switch pattern[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k
			}
		}
	}
	return -1
}

// predictedLen is the number of input bytes a group is assumed to consume:
// the length of the group text not counting backslashes.
func predictedLen(group string) int {
	return len(group) - strings.Count(group, `\`)
}
