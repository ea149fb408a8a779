// Package main provides the planimport CLI.
package main

import (
	"os"

	"github.com/planimport/planimport/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
