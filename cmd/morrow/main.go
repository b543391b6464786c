package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pablasso/morrow/internal/cli"
	"github.com/pablasso/morrow/internal/tui"
	"github.com/pablasso/morrow/internal/version"
)

func main() {
	// If no args, launch the interactive shell; otherwise route to the CLI
	if len(os.Args) == 1 {
		runShell()
		return
	}

	// Top-level flags (--version, --help) are answered here; everything
	// else is a subcommand for the CLI
	if strings.HasPrefix(os.Args[1], "-") {
		result, err := parseArgs(os.Args[1:])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if result.ShowHelp {
			fmt.Print(result.HelpText)
			return
		}
		if result.ShowVersion {
			fmt.Printf("morrow %s (%s, built %s)\n", version.Version, version.CommitSHA, version.BuildDate)
			return
		}
		runShell()
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShell() {
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
