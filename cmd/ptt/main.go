// Package main is the entry point for ptt.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChrisDavison/ptt/internal/cmd"
	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		var exitErr *perrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		code := perrors.ExitCodeFromError(err)
		output.Debug("exiting", "code", code, "reason", perrors.ExitCodeName(code))
		os.Exit(code)
	}
}
