// Package main is the entry point for the geprotocol application.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/mri-tools/geprotocol/internal/buildmeta"
	"github.com/mri-tools/geprotocol/pkg/cli/cmd"
	"github.com/mri-tools/geprotocol/pkg/notify"
)

func main() {
	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)

	if exitCode != cmd.ExitOK {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			panicMessage := fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack())
			notify.WriteMessage(notify.Message{
				Type:    notify.ErrorType,
				Content: panicMessage,
				Writer:  errWriter,
			})

			exitCode = cmd.ExitFailure
		}
	}()

	exitCode = runner(args)

	return exitCode
}

func runWithArgs(args []string) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version)
	rootCmd.SetArgs(args)

	return cmd.Run(rootCmd)
}
