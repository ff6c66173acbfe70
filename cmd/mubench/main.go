// mubench drives the misuse benchmark corpus through the data reader stages.
//
// Usage:
//
//	mubench run   [--data=<dir>] [--only=<substr>...] [--skip=<substr>...] [--db=<path>] [--no-record]
//	mubench list  [--data=<dir>] [--only=<substr>...] [--skip=<substr>...] [-v]
//	mubench runs  [--db=<path>]
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
