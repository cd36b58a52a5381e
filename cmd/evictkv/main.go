// Package main provides the evictkv CLI, an interactive shell over an
// in-memory store with least-recently-used eviction.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
