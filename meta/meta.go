package meta

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/minigrep/charclass"
	"github.com/coregx/minigrep/syntax"
)

// Engine is a validated, classified pattern together with the data its
// shape strategy needs. An Engine is immutable and safe for concurrent use;
// every IsMatch call allocates its own working state.
type Engine struct {
	pattern string
	shape   Shape

	// literal is the byte for ShapeSingleChar, the prefix or suffix text for
	// the anchor shapes and the class body for ShapeClass.
	literal string
	negated bool

	alternatives [][]byte
	anyEmpty     bool
	ahoCorasick  *ahocorasick.Automaton
}

// Compile validates pattern, classifies it and prepares its strategy.
// An empty pattern compiles to an engine that never matches.
//
// Example:
//
//	engine, err := meta.Compile("(cat|dog)")
//	if err != nil {
//	    return err
//	}
//	ok, _ := engine.IsMatch([]byte("hotdog")) // true
func Compile(pattern string) (*Engine, error) {
	if err := syntax.Validate(pattern); err != nil {
		return nil, err
	}

	shape, err := Classify(pattern)
	if err != nil {
		return nil, err
	}

	e := &Engine{pattern: pattern, shape: shape}
	switch shape {
	case ShapeSingleChar:
		e.literal = pattern
	case ShapeAlternation:
		interior, _ := alternationGroup(pattern)
		e.buildAlternation(interior)
	case ShapeAnchorStart:
		e.literal = pattern[1:]
	case ShapeAnchorEnd:
		e.literal = pattern[:len(pattern)-1]
	case ShapeClass:
		e.literal, e.negated = charclass.Split(pattern[1 : len(pattern)-1])
	}
	return e, nil
}

// buildAlternation splits interior on '|'. Two or more non-empty
// alternatives are searched with an Aho-Corasick automaton; if building it
// fails the alternatives are scanned one by one.
func (e *Engine) buildAlternation(interior string) {
	for _, part := range strings.Split(interior, "|") {
		if part == "" {
			e.anyEmpty = true
		}
		e.alternatives = append(e.alternatives, []byte(part))
	}
	if e.anyEmpty || len(e.alternatives) < 2 {
		return
	}

	builder := ahocorasick.NewBuilder()
	for _, alt := range e.alternatives {
		builder.AddPattern(alt)
	}
	if auto, err := builder.Build(); err == nil {
		e.ahoCorasick = auto
	}
}

// Shape returns the shape selected for the pattern.
func (e *Engine) Shape() Shape {
	return e.shape
}

// Pattern returns the source text of the pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Alternatives returns the alternatives of a ShapeAlternation engine, in
// pattern order. It returns nil for every other shape.
func (e *Engine) Alternatives() []string {
	if e.shape != ShapeAlternation {
		return nil
	}
	out := make([]string, len(e.alternatives))
	for i, alt := range e.alternatives {
		out[i] = string(alt)
	}
	return out
}
