// Package main provides the flexui command for working with window
// declaration files.
//
// Usage:
//
//	flexui layout FILE [--width N] [--height N] [--json]
//	flexui check [path...]
//	flexui version
//
// Examples:
//
//	flexui layout settings.yaml           Print every widget's rectangle
//	flexui layout --width 400 app.toml    Solve at a different window width
//	flexui check ./...                    Validate all declarations recursively
//	flexui -v --config ui.toml check .    Verbose, with an explicit config file
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-flexui/internal/debug"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command tree with args. The debug log is closed however
// the command ends, including when it fails.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	defer func() { _ = debug.Close() }()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
