package meta

import (
	"bytes"

	"github.com/coregx/minigrep/charclass"
	"github.com/coregx/minigrep/interp"
	"github.com/coregx/minigrep/simd"
)

// IsMatch reports whether the pattern matches anywhere in haystack. The only
// errors come from the general matcher meeting an escape it does not
// support; an error is never reported as a plain non-match.
//
// Example:
//
//	engine, _ := meta.Compile(`\d`)
//	ok, _ := engine.IsMatch([]byte("abc123")) // true
func (e *Engine) IsMatch(haystack []byte) (bool, error) {
	switch e.shape {
	case ShapeEmpty:
		return false, nil
	case ShapeSingleChar:
		return simd.Memchr(haystack, e.literal[0]) >= 0, nil
	case ShapeAlternation:
		return e.isMatchAlternation(haystack), nil
	case ShapeAnchorStart:
		return bytes.HasPrefix(haystack, []byte(e.literal)), nil
	case ShapeAnchorEnd:
		return bytes.HasSuffix(haystack, []byte(e.literal)), nil
	case ShapeDigit:
		return simd.MemchrDigit(haystack) >= 0, nil
	case ShapeWord:
		return simd.MemchrAlnum(haystack) >= 0, nil
	case ShapeClass:
		return charclass.Evaluate(haystack, e.literal, e.negated), nil
	default:
		return interp.Match(string(haystack), e.pattern)
	}
}

// isMatchAlternation reports whether haystack contains any alternative.
func (e *Engine) isMatchAlternation(haystack []byte) bool {
	if e.anyEmpty {
		return true
	}
	if e.ahoCorasick != nil {
		return e.ahoCorasick.IsMatch(haystack)
	}
	for _, alt := range e.alternatives {
		if simd.Memmem(haystack, alt) >= 0 {
			return true
		}
	}
	return false
}
