// Package main is the entry point for the parkcrawl CLI.
package main

import (
	"os"

	"github.com/parkcrawl/parkcrawl/cmd/parkcrawl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
