// SPDX-License-Identifier: MIT

// Command phat computes persistence pairs of boundary matrices.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/phat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
