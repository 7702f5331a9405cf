// Package main provides the csvpeek CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/csvpeek/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
