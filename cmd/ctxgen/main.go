// Command ctxgen fills out a context template and renders it as a document to
// paste into an AI assistant prompt.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/goliatone/go-ctxgen/pkg/export"
	"github.com/goliatone/go-ctxgen/pkg/renderers/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return runApp(newApp(stdout, stderr), args)
}

func runApp(a *app, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, export.ErrEmptyOutput):
		return 0
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		a.notify().Info("Aborted.")
		return 1
	default:
		a.notify().Error(err.Error())
		return 1
	}
}
