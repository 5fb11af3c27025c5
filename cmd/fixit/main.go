// Package main is the entry point for the fixit challenge verifier.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/cmd/fixit/commands"
	"go.trai.ch/fixit/internal/app"
	"go.trai.ch/fixit/internal/core/domain"
	_ "go.trai.ch/fixit/internal/wiring"
)

func main() {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	if l, ok := components.Logger.(interface{ SetOutput(w io.Writer) }); ok {
		l.SetOutput(stderr)
	}
	defer func() {
		if closeErr := components.App.Close(); closeErr != nil {
			components.Logger.Error(closeErr)
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrIncorrectFix) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
