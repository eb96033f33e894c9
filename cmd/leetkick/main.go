// Package main is the entry point for the leetkick CLI.
package main

import (
	"errors"
	"os"

	"github.com/leetkick/leetkick/internal/cmd"
	"github.com/leetkick/leetkick/internal/cmdutil"
	oerrors "github.com/leetkick/leetkick/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Only print if the command layer hasn't already printed it
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			cmdutil.PrintError(os.Stderr, err)
		}
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
