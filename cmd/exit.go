/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/RespectNoodles/HelpBox/internal/console"
	"github.com/RespectNoodles/HelpBox/pkg/exitcode"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/spf13/cobra"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// It carries the forwarded status of an external tool and is not printed.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Execute runs the root command and returns the process exit code.
// An interrupt ends the run with status 0.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, rootCmd, os.Args[1:])
}

func run(ctx context.Context, root *cobra.Command, args []string) int {
	state = nil
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return exitCode(ctx, err, root)
}

func exitCode(ctx context.Context, err error, root *cobra.Command) int {
	if err == nil {
		return exitcode.Success
	}
	if ctx.Err() != nil {
		logger.Debug("interrupted", logger.Err(err))
		return exitcode.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			printError(root, exitErr.Err)
		}
		logger.Debug("forwarding tool exit status", logger.Int("exit_code", exitErr.Code))
		return exitErr.Code
	}

	printError(root, err)
	return exitcode.Failure
}

// printError uses the run's printer, or a fresh one honoring --no-color when
// the failure came before the app was loaded.
func printError(root *cobra.Command, err error) {
	if state != nil {
		state.printer.Error("%v", err)
		return
	}
	noColor, _ := root.PersistentFlags().GetBool("no-color")
	console.New(root.ErrOrStderr(), root.ErrOrStderr(), !noColor).Error("%v", err)
}
