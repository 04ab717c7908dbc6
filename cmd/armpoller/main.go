// Command armpoller drives a single ARM-style request to completion,
// standing in for the "command metadata loader and CLI argument parser"
// spec.md places outside the core's scope (SPEC_FULL.md §2.8). It uses
// pkg/lro only for option and response types; every polling decision
// happens behind pkg/azapi's façade.
package main

import (
	"fmt"
	"os"

	"github.com/azure-tools/armpoller/cmd/armpoller/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
