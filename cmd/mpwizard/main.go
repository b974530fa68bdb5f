// Package main provides the mpwizard CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/mpwizard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
