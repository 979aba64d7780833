package main

import (
	"os"
)

// main builds the command tree and runs it. Any command error exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
