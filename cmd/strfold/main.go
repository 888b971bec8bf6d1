// Package main implements the strfold CLI folding input lines into a delimited string.
package main

import (
	"os"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
