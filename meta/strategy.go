// Package meta classifies a pattern by its shape and dispatches each match
// request to the strategy for that shape.
//
// Most shapes are answered by a line-level scan (byte containment, digit or
// alphanumeric existence, class membership, literal prefix or suffix, a set
// of alternative substrings). Everything else goes to the general
// interpretive matcher in package interp.
//
// The shape is computed once, in Compile, in this priority order:
//  1. empty pattern
//  2. single byte
//  3. contains '|' and has a parenthesized group: alternatives of the first group
//  4. starts with '^': literal prefix
//  5. ends with '$': literal suffix
//  6. exactly `\d` or `\w`
//  7. starts with '[' and ends with ']': a whole-pattern class
//  8. anything else: general matcher
package meta

import (
	"strings"

	"github.com/coregx/minigrep/syntax"
)

// Shape is the tagged classification of a pattern.
type Shape int

const (
	// ShapeEmpty never matches.
	ShapeEmpty Shape = iota

	// ShapeSingleChar matches when the line contains the pattern byte.
	ShapeSingleChar

	// ShapeAlternation matches when the line contains any alternative of the
	// first parenthesized group. Text outside that group is ignored.
	ShapeAlternation

	// ShapeAnchorStart compares the text after '^' with the start of the
	// line, byte for byte. No other construct is interpreted.
	ShapeAnchorStart

	// ShapeAnchorEnd compares the text before '$' with the end of the line,
	// byte for byte. No other construct is interpreted.
	ShapeAnchorEnd

	// ShapeDigit matches when the line contains an ASCII digit.
	ShapeDigit

	// ShapeWord matches when the line contains an ASCII letter or digit.
	ShapeWord

	// ShapeClass evaluates the whole pattern as one bracket expression.
	ShapeClass

	// ShapeGeneral runs the interpretive matcher.
	ShapeGeneral
)

// String returns a human-readable representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "Empty"
	case ShapeSingleChar:
		return "SingleChar"
	case ShapeAlternation:
		return "Alternation"
	case ShapeAnchorStart:
		return "AnchorStart"
	case ShapeAnchorEnd:
		return "AnchorEnd"
	case ShapeDigit:
		return "Digit"
	case ShapeWord:
		return "Word"
	case ShapeClass:
		return "Class"
	case ShapeGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// Classify returns the shape of pattern. A two-byte escape other than `\d`
// and `\w` has no strategy and yields an ErrUnhandledPattern error.
// Classify does not validate the pattern.
func Classify(pattern string) (Shape, error) {
	n := len(pattern)
	switch {
	case n == 0:
		return ShapeEmpty, nil
	case n == 1:
		return ShapeSingleChar, nil
	}

	if _, ok := alternationGroup(pattern); ok {
		return ShapeAlternation, nil
	}

	switch {
	case pattern[0] == '^':
		return ShapeAnchorStart, nil
	case pattern[n-1] == '$':
		return ShapeAnchorEnd, nil
	case n == 2 && pattern[0] == '\\':
		switch pattern[1] {
		case 'd':
			return ShapeDigit, nil
		case 'w':
			return ShapeWord, nil
		}
		// Other lone escapes are rejected rather than interpreted, as the
		// grep this dialect comes from does.
		return ShapeEmpty, syntax.UnhandledPattern(pattern)
	case pattern[0] == '[' && pattern[n-1] == ']':
		return ShapeClass, nil
	}
	return ShapeGeneral, nil
}

// alternationGroup returns the interior of the first balanced parenthesized
// group of a pattern containing '|'. A '(' whose group never closes is
// skipped in favor of the next one.
func alternationGroup(pattern string) (string, bool) {
	if strings.IndexByte(pattern, '|') < 0 {
		return "", false
	}
	for open := 0; open < len(pattern); open++ {
		if pattern[open] != '(' {
			continue
		}
		depth := 1
		for k := open + 1; k < len(pattern); k++ {
			switch pattern[k] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				return pattern[open+1 : k], true
			}
		}
	}
	return "", false
}
