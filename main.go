package main

import (
	"os"

	"github.com/grayvines/mkpkg/internal/cli"
	"github.com/grayvines/mkpkg/internal/output"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		output.Error(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
