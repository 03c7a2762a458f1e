// Command burrsolve is the thin CLI wrapper around the disassembler
// core: it loads a puzzle+assembly YAML file and, when asked, searches
// for a sequence of slides that takes the pieces apart.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: burrsolve [-d] [-p] [-r] [-s] [-q] [-n] <puzzle-file>")
		return 2
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, "error:", err)
	if errors.Is(err, errNoFile) {
		return 1
	}
	return 1
}
