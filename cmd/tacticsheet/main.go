// Package main is the entry point for the tacticsheet CLI.
package main

import (
	"os"

	"github.com/tactics-lab/tacticsheet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
