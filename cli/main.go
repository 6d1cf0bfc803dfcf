package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/trebuchet-org/upgrade-audit/internal/cli"
	"github.com/trebuchet-org/upgrade-audit/internal/config"
)

// Set by -ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Audit failures have already been rendered
		if !errors.Is(err, cli.ErrAuditFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
