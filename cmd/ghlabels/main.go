// Package main is the entry point for the ghlabels CLI.
//
// ghlabels keeps GitHub labels in line with a declarative YAML template.
// It targets one repository, every repository of an owner, or several
// owners at once, and creates, updates and deletes labels concurrently.
//
// Commands: apply, validate, version, completion.
//
// For detailed usage information, run:
//
//	ghlabels --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/ghlabels/cmd/ghlabels/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
