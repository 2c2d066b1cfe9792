// Package main provides the quantad command line.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
