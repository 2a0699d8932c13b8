// Command carboncalc estimates monthly emissions and carbon credits.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/carboncalc/internal/cli"
	"github.com/rshade/carboncalc/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return extractExitCode(err)
}

// extractExitCode maps a command error to the process exit code.
func extractExitCode(err error) int {
	return cli.ExitCode(err)
}
