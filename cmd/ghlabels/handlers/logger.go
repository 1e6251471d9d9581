package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// logOutput receives log lines. Report output never goes here.
var logOutput io.Writer = os.Stderr

// newLogger builds the CLI logger. Verbose enables V(1) detail.
func newLogger(verbose bool) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}

	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(logOutput, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(logOutput, args)
	}, funcr.Options{Verbosity: verbosity})
}
