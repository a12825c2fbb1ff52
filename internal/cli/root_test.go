package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

const patternEnv = EnvPrefix + "_EXTENDED_REGEXP"

func runCmd(t *testing.T, input string, args ...string) (int, string) {
	t.Helper()
	var stderr bytes.Buffer
	code := Run(args, strings.NewReader(input), &stderr)
	return code, stderr.String()
}

func TestRunExitCodes(t *testing.T) {
	t.Setenv(patternEnv, "")

	tests := []struct {
		name  string
		input string
		args  []string
		want  int
	}{
		{"match", "abc123\n", []string{"-E", `\d`}, ExitMatch},
		{"no_match", "abc\n", []string{"-E", `\d`}, ExitNoMatch},
		{"long_flag", "cat cat\n", []string{"--extended-regexp", `(cat) \1`}, ExitMatch},
		{"no_trailing_newline", "sunfish", []string{"-E", "fish$"}, ExitMatch},
		{"crlf_stripped", "sunfish\r\n", []string{"-E", "fish$"}, ExitMatch},
		{"only_first_line", "dog\ncat\n", []string{"-E", "cat"}, ExitNoMatch},
		{"empty_line", "\n", []string{"-E", "a?"}, ExitMatch},
		{"empty_pattern", "abc\n", []string{"-E", ""}, ExitNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stderr := runCmd(t, tt.input, tt.args...)
			require.Equal(t, tt.want, code)
			require.Empty(t, stderr)
		})
	}
}

func TestRunPatternError(t *testing.T) {
	t.Setenv(patternEnv, "")

	code, stderr := runCmd(t, "abc\n", "-E", "(abc")
	require.Equal(t, ExitNoMatch, code)
	require.Equal(t, "Pattern error: unmatched parenthesis: `(abc` at offset 4\n", stderr)

	code, stderr = runCmd(t, "abc\n", "-E", `a\qc`)
	require.Equal(t, ExitNoMatch, code)
	require.True(t, strings.HasPrefix(stderr, "Pattern error: unsupported escape sequence"), stderr)
}

func TestRunUsageErrors(t *testing.T) {
	t.Setenv(patternEnv, "")

	code, stderr := runCmd(t, "abc\n")
	require.Equal(t, ExitNoMatch, code)
	require.Contains(t, stderr, "a pattern is required")
	require.Contains(t, stderr, "Usage:")

	code, stderr = runCmd(t, "abc\n", "-E", "a", "extra")
	require.Equal(t, ExitNoMatch, code)
	require.Contains(t, stderr, "Error:")

	code, stderr = runCmd(t, "abc\n", "-X", "a")
	require.Equal(t, ExitNoMatch, code)
	require.Contains(t, stderr, "unknown shorthand flag")
}

func TestRunPatternFromEnv(t *testing.T) {
	t.Setenv(patternEnv, "^cat")

	code, _ := runCmd(t, "catfish\n")
	require.Equal(t, ExitMatch, code)

	code, _ = runCmd(t, "fishcat\n")
	require.Equal(t, ExitNoMatch, code)

	// The flag wins over the environment.
	code, _ = runCmd(t, "fishcat\n", "-E", "fish")
	require.Equal(t, ExitMatch, code)
}

func TestRunReadError(t *testing.T) {
	t.Setenv(patternEnv, "")

	var stderr bytes.Buffer
	code := Run([]string{"-E", "a"}, iotest.ErrReader(errors.New("boom")), &stderr)
	require.Equal(t, ExitNoMatch, code)
	require.Contains(t, stderr.String(), "reading input line: boom")
}

func TestRunEmptyInput(t *testing.T) {
	t.Setenv(patternEnv, "")

	code, stderr := runCmd(t, "", "-E", "a?")
	require.Equal(t, ExitNoMatch, code)
	require.Equal(t, "Error: failed to read input line\n", stderr)
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\n", ""},
		{"abc", "abc"},
		{"abc\n", "abc"},
		{"abc\r\n", "abc"},
		{"a\rb\n", "a\rb"},
		{"one\ntwo\n", "one"},
	}
	for _, tt := range tests {
		got, err := readLine(strings.NewReader(tt.input))
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := readLine(strings.NewReader(""))
	require.ErrorIs(t, err, errNoInput)
}
