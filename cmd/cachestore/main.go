// Package main is the entry point for the cachestore CLI.
//
// The CLI seeds an in-memory store from a YAML file and runs ordered
// queries against it.
//
// Usage:
//
//	cachestore get -c seed.yaml key123          # Print one entry
//	cachestore list -c seed.yaml --offset 10    # Page through entries
//	cachestore range -c seed.yaml a z           # Inclusive key range
//	cachestore tree -c seed.yaml                # Print every entry
//	cachestore validate -c seed.yaml            # Validate the seed file
//	cachestore version                          # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cachestore",
		Short: "Query an ordered in-memory cache store",
		Long: `cachestore loads entries from a YAML seed file into an ordered
in-memory store and answers point, page and range queries.

Example seed file:
  entries:
    - key: key123
      value: Value456
    - key: limits.max
      value: 42`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "path to seed file")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every store operation to stderr")

	root.AddCommand(
		newGetCmd(),
		newListCmd(),
		newRangeCmd(),
		newTreeCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cachestore %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}
