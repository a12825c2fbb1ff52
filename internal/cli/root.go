// Package cli implements the minigrep command: it reads one line from
// standard input and exits 0 if the pattern given with -E matches it.
package cli

import (
	"bufio"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/coregx/minigrep"
)

const (
	// EnvPrefix prefixes the environment variables read in place of flags,
	// e.g. MINIGREP_EXTENDED_REGEXP.
	EnvPrefix = "MINIGREP"

	patternFlag = "extended-regexp"
)

// Exit codes.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
)

var (
	// errNoMatch ends a run whose line did not match. It is never printed.
	errNoMatch = errors.New("no match")

	errNoInput = errors.New("failed to read input line")
)

// reportedError marks an error already written to stderr.
type reportedError struct{ error }

func init() {
	// glog writes to files by default; a one-shot filter has nowhere to keep them.
	check(goflag.Set("logtostderr", "true"))
}

// Execute runs the command with the process arguments and standard streams
// and returns the exit code. It is called by main.main.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stderr)
}

// Run executes the command with args, reading the line from stdin and
// writing diagnostics to stderr, and returns the exit code.
func Run(args []string, stdin io.Reader, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd(stdin, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return ExitMatch
	case errors.Is(err, errNoMatch):
		glog.V(2).Info("no match")
	case errors.As(err, new(reportedError)):
	default:
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return ExitNoMatch
}

// NewRootCmd builds the minigrep command. Its configuration lives in a
// private viper instance bound to the command flags and to the environment.
func NewRootCmd(stdin io.Reader, stderr io.Writer) *cobra.Command {
	conf := viper.New()

	cmd := &cobra.Command{
		Use:   "minigrep -E <pattern>",
		Short: "Match one line of standard input against a pattern",
		Long: `
minigrep reads a single line from standard input and exits with status 0 if
the pattern matches it and 1 otherwise. Malformed patterns are reported on
standard error and also exit with status 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return run(conf, stdin, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetErr(stderr)

	addFlags(cmd.Flags())
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	check(conf.BindPFlags(cmd.Flags()))
	conf.SetEnvPrefix(EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	return cmd
}

func addFlags(flags *flag.FlagSet) {
	flags.StringP(patternFlag, "E", "",
		"Pattern to match the input line against. "+
			EnvPrefix+"_EXTENDED_REGEXP is used when the flag is absent.")
}

func run(conf *viper.Viper, stdin io.Reader, stderr io.Writer) error {
	if !conf.IsSet(patternFlag) {
		return errors.Errorf("a pattern is required: use -E <pattern> or set %s_EXTENDED_REGEXP",
			EnvPrefix)
	}
	pattern := conf.GetString(patternFlag)

	line, err := readLine(stdin)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return reportedError{err}
	}

	re, err := minigrep.Compile(pattern)
	if err != nil {
		return patternError(stderr, pattern, err)
	}
	glog.V(2).Infof("pattern %q uses the %s strategy", pattern, re.Shape())

	ok, err := re.MatchString(line)
	if err != nil {
		return patternError(stderr, pattern, err)
	}
	if !ok {
		return errNoMatch
	}
	glog.V(2).Infof("matched %q", line)
	return nil
}

func patternError(stderr io.Writer, pattern string, err error) error {
	glog.V(1).Infof("pattern %q rejected: %v", pattern, err)
	fmt.Fprintf(stderr, "Pattern error: %v\n", err)
	return reportedError{errors.Wrapf(err, "pattern %q", pattern)}
}

// readLine returns the first line of r without its line terminator. A final
// line without a trailing newline counts; an empty stream is an error.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return "", errNoInput
	case err != nil && err != io.EOF:
		return "", errors.Wrap(err, "reading input line")
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// check aborts on errors that can only come from a programming mistake.
func check(err error) {
	if err != nil {
		glog.Fatalf("%+v", errors.WithStack(err))
	}
}
