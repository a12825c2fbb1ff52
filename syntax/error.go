// Package syntax checks patterns of the minigrep dialect for structural
// errors and defines the error taxonomy shared by the matching packages.
//
// The dialect is byte oriented: literals, '.', '[...]' and '[^...]' classes,
// the anchors '^' and '$', the quantifiers '+' and '?', capturing groups,
// backreferences '\1'..'\9', alternation '|' and the escapes '\d', '\w',
// '\\' and '\['.
package syntax

import "fmt"

// ErrorCode describes why a pattern was rejected. It implements error so
// callers can test for a specific code with errors.Is.
type ErrorCode string

// Error codes
const (
	// ErrUnmatchedParen: a ')' without an open group, a '(' as the last
	// character, or groups still open at the end of the pattern.
	ErrUnmatchedParen ErrorCode = "unmatched parenthesis"

	// ErrUnmatchedBracket: a '[' with no later ']'.
	ErrUnmatchedBracket ErrorCode = "unmatched '['"

	// ErrTrailingBackslash: the pattern ends in a lone '\'.
	ErrTrailingBackslash ErrorCode = "trailing backslash at end of pattern"

	// ErrUnsupportedEscape: '\' followed by a character outside the dialect.
	ErrUnsupportedEscape ErrorCode = "unsupported escape sequence"

	// ErrMisplacedAlternation: a '|' that would produce an empty alternative.
	ErrMisplacedAlternation ErrorCode = "misplaced alternation operator '|'"

	// ErrUnhandledPattern: a pattern shape no matching strategy accepts.
	ErrUnhandledPattern ErrorCode = "unhandled pattern"
)

func (e ErrorCode) Error() string {
	return string(e)
}

func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a rejected pattern: the code, the offending text and the
// byte offset in the pattern where the problem was detected.
type Error struct {
	Code ErrorCode
	Expr string
	Pos  int
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: `%s` at offset %d", e.Code, e.Expr, e.Pos)
}

// Unwrap returns the error code so errors.Is matches on it.
func (e *Error) Unwrap() error {
	return e.Code
}

func newError(code ErrorCode, expr string, pos int) *Error {
	return &Error{Code: code, Expr: expr, Pos: pos}
}

// UnsupportedEscape reports the escape sequence starting at pattern[pos].
func UnsupportedEscape(pattern string, pos int) *Error {
	end := pos + 2
	if end > len(pattern) {
		end = len(pattern)
	}
	return newError(ErrUnsupportedEscape, pattern[pos:end], pos)
}

// UnhandledPattern reports a pattern that no matching strategy accepts.
func UnhandledPattern(pattern string) *Error {
	return newError(ErrUnhandledPattern, pattern, 0)
}
