// Package main is the entry point for the Brewkit CLI application.
// It manages the coffee-shop CMS content on a RaDB backend.
package main

import (
	"brewkit/cli/cmd"
)

// main is the entry point for the Brewkit CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
