// Package main provides the gofetch command-line tool, which prints system
// information beside an ASCII logo of the detected operating system.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
