package syntax

import "strings"

// Validate scans pattern once from left to right and returns the first
// structural error found, or nil. It checks group balance, that every '['
// has a later ']', that escapes are supported and that '|' never produces an
// empty alternative at the start, at the end or between two '|'.
//
// Class interiors and quantifier placement are not validated.
//
// Example:
//
//	err := syntax.Validate("(abc")
//	errors.Is(err, syntax.ErrUnmatchedParen) // true
func Validate(pattern string) error {
	depth := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '(':
			depth++
			if i+1 == len(pattern) {
				return newError(ErrUnmatchedParen, "(", i)
			}
		case ')':
			if depth == 0 {
				return newError(ErrUnmatchedParen, ")", i)
			}
			depth--
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return newError(ErrUnmatchedBracket, pattern[i:], i)
			}
			i += end + 1
		case '\\':
			if i+1 == len(pattern) {
				return newError(ErrTrailingBackslash, `\`, i)
			}
			if !IsValidEscape(pattern[i+1]) {
				return UnsupportedEscape(pattern, i)
			}
			i++
		case '|':
			if i == 0 || i+1 == len(pattern) || pattern[i-1] == '|' || pattern[i+1] == '|' {
				return newError(ErrMisplacedAlternation, "|", i)
			}
		}
	}
	if depth != 0 {
		return newError(ErrUnmatchedParen, pattern, len(pattern))
	}
	return nil
}

// IsValidEscape reports whether '\' followed by c is accepted by Validate.
func IsValidEscape(c byte) bool {
	switch {
	case c == 'd', c == 'w', c == '[', c == '\\':
		return true
	default:
		return c >= '0' && c <= '9'
	}
}
