package syntax

import (
	"errors"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	patterns := []string{
		"",
		"a",
		"abc",
		`\d\w\\`,
		`\1`,
		`\0`,
		`\[abc]`,
		"[abc]",
		"[^a-z]",
		"[(]",   // class interior is skipped
		"[|]",   // '|' inside a class is not an alternation
		"[\\q]", // escapes inside a class are not checked
		"(a)(b)",
		"((a)b)",
		"(cat|dog)",
		"a|b",
		"(|a)", // only the pattern ends and '||' are rejected
		"^abc$",
		"a+b?.",
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			if err := Validate(p); err != nil {
				t.Errorf("Validate(%q) = %v, want nil", p, err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		pattern string
		code    ErrorCode
		pos     int
	}{
		{"(", ErrUnmatchedParen, 0},
		{"ab(", ErrUnmatchedParen, 2},
		{"(ab", ErrUnmatchedParen, 3},
		{"((a)", ErrUnmatchedParen, 4},
		{")", ErrUnmatchedParen, 0},
		{"a)b(", ErrUnmatchedParen, 1},
		{"[abc", ErrUnmatchedBracket, 0},
		{"a[", ErrUnmatchedBracket, 1},
		{`\`, ErrTrailingBackslash, 0},
		{`abc\`, ErrTrailingBackslash, 3},
		{`\q`, ErrUnsupportedEscape, 0},
		{`a\s`, ErrUnsupportedEscape, 1},
		{`\]`, ErrUnsupportedEscape, 0},
		{`\(`, ErrUnsupportedEscape, 0},
		{"|a", ErrMisplacedAlternation, 0},
		{"a|", ErrMisplacedAlternation, 1},
		{"a||b", ErrMisplacedAlternation, 1},
		{"(a||b)", ErrMisplacedAlternation, 2},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			err := Validate(tt.pattern)
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want %v", tt.pattern, tt.code)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate(%q) = %v, want code %v", tt.pattern, err, tt.code)
			}

			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("Validate(%q) returned %T, want *Error", tt.pattern, err)
			}
			if serr.Pos != tt.pos {
				t.Errorf("Validate(%q).Pos = %d, want %d", tt.pattern, serr.Pos, tt.pos)
			}
		})
	}
}

// TestValidateFirstErrorWins checks that the scan reports the leftmost problem.
func TestValidateFirstErrorWins(t *testing.T) {
	err := Validate(`\q[abc`)
	if !errors.Is(err, ErrUnsupportedEscape) {
		t.Errorf("got %v, want %v", err, ErrUnsupportedEscape)
	}

	err = Validate(`[abc\q`)
	if !errors.Is(err, ErrUnmatchedBracket) {
		t.Errorf("got %v, want %v", err, ErrUnmatchedBracket)
	}
}

func TestErrorMessageFormat(t *testing.T) {
	err := Validate(`ab\q`)
	want := "unsupported escape sequence: `\\q` at offset 2"
	if err == nil || err.Error() != want {
		t.Errorf("Validate error = %v, want %q", err, want)
	}

	if got := UnhandledPattern(`\\`).Error(); got != "unhandled pattern: `\\\\` at offset 0" {
		t.Errorf("UnhandledPattern message = %q", got)
	}
}

func TestUnsupportedEscapeAtEnd(t *testing.T) {
	e := UnsupportedEscape(`ab\`, 2)
	if e.Expr != `\` {
		t.Errorf("Expr = %q, want %q", e.Expr, `\`)
	}
}
