// Package minigrep provides a small regular-expression matcher for single
// lines of text.
//
// The dialect is deliberately restricted:
//   - literals and '.' (any byte)
//   - classes '[abc]', '[a-z]', '[^...]'
//   - anchors '^' (literal prefix) and '$' (literal suffix)
//   - quantifiers '+' and '?' on the preceding literal byte
//   - capturing groups '(...)' and backreferences '\1'..'\9'
//   - alternation '(a|b|c)'
//   - escapes '\d', '\w', '\\' and '\['
//
// A match request answers yes or no. Match positions and captured text are
// not reported.
//
// Basic usage:
//
//	ok, err := minigrep.MatchPattern("cat cat", `(cat) \1`)
//	if err != nil {
//	    log.Fatal(err) // malformed pattern
//	}
//	fmt.Println(ok) // true
//
// Patterns used many times can be compiled once:
//
//	re := minigrep.MustCompile(`\d`)
//	ok, _ := re.MatchString("order 66")
//
// Errors are *syntax.Error values; use errors.Is with the syntax.Err* codes
// to tell them apart.
//
// Semantics worth knowing:
//   - '[...]', '\d' and '\w' used as the whole pattern, and classes inside a
//     larger pattern, test whether the line contains a member anywhere.
//   - Only the first parenthesized group of a pattern containing '|' is
//     considered, and its alternatives are matched as plain substrings.
//   - Groups consume as many bytes as their text has (backslashes excluded)
//     and are never retried with another length.
package minigrep

import (
	"github.com/coregx/minigrep/meta"
	"github.com/coregx/minigrep/syntax"
)

// Regex is a compiled pattern.
//
// A Regex is immutable and safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := minigrep.MustCompile(`colou?r`)
//	ok, _ := re.MatchString("what color is it")
type Regex struct {
	engine *meta.Engine
}

// Compile validates and classifies a pattern.
//
// Example:
//
//	re, err := minigrep.Compile(`(cat|dog)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{engine: engine}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var digits = minigrep.MustCompile(`\d`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("minigrep: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// MatchPattern reports whether pattern matches anywhere in line. It returns
// an error, and false, if the pattern is malformed.
//
// Example:
//
//	ok, err := minigrep.MatchPattern("sunfish", "fish$") // true, nil
func MatchPattern(line, pattern string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(line)
}

// Validate checks pattern for structural errors without matching anything.
// It does not detect patterns that are only rejected by Compile, such as a
// lone `\\`.
func Validate(pattern string) error {
	return syntax.Validate(pattern)
}

// Match reports whether the byte slice b contains a match of the pattern.
func (r *Regex) Match(b []byte) (bool, error) {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the string s contains a match of the pattern.
//
// Example:
//
//	re := minigrep.MustCompile(`^cat`)
//	ok, _ := re.MatchString("catfish") // true
func (r *Regex) MatchString(s string) (bool, error) {
	return r.Match([]byte(s))
}

// Shape returns the matching strategy selected for the pattern.
func (r *Regex) Shape() meta.Shape {
	return r.engine.Shape()
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.engine.Pattern()
}
