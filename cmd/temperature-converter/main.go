// Package main is the entry point for temperature-converter, the fahrenheit/celsius converter.
//
// All functionality lives in the internal/cli package. Build-time
// variables (version, commit, date) are injected via ldflags and default
// to "dev", "none", and "unknown" during development.
package main

import (
	"github.com/shinji-kodama/beginner-cli/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package so cobra can
	// answer --version without main knowing about cobra.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Build the root command and run it. Execute prints errors and
	// chooses the exit code.
	cli.Execute(cli.NewTempCommand())
}
