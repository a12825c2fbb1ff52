// Command minigrep matches one line of standard input against a pattern.
//
//	echo "cat cat" | minigrep -E '(cat) \1'
//
// It exits with status 0 on a match and 1 on no match or a malformed pattern.
package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/coregx/minigrep/internal/cli"
)

func main() {
	code := cli.Execute()
	glog.Flush()
	os.Exit(code)
}
