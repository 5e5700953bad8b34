// SPDX-License-Identifier: MIT
//
// coachgraph loads a coaching graph fixture and rolls a version out over it.
//
// Usage:
//
//	coachgraph total   --graph=<file> --start=<id> --version=<v> [--out=<file>]
//	coachgraph limited --graph=<file> --version=<v> --count=<n> [--out=<file>]
//	coachgraph tree    --graph=<file>
//	coachgraph users   --graph=<file>
//
// Global flags: --log-level, --log-format=text|json, --metrics, --markdown.
package main

import (
	"fmt"
	"os"
)

// buildVersion is set at build time via -ldflags.
var buildVersion = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
