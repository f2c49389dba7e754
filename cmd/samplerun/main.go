// Package main is the entry point for the samplerun binary.
package main

import (
	"os"

	"github.com/plexsphere/samplerun/cmd/samplerun/cmd"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	os.Exit(cmd.Execute())
}
