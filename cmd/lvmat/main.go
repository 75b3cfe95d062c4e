// SPDX-License-Identifier: MIT

// Command lvmat computes determinants and elimination forms of matrices read
// from YAML files.
//
// Usage:
//
//	lvmat det FILE
//	lvmat tri FILE
//	lvmat diag FILE
//	lvmat identity N
//	lvmat show FILE [--heatmap OUT]
//
// FILE holds `rows: [[...], ...]`; "-" reads standard input.
package main

import (
	"os"

	"github.com/katalvlaran/lvmat/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
