// Package main provides the CLI for the onomast name generator.
package main

import (
	"os"

	"github.com/onomast-labs/onomast/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
