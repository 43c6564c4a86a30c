// main.go bootstraps mazewalk: it builds the root Cobra command and executes it with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/maze"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	err := rootCmd.ExecuteContext(ctx)
	handleError(os.Stderr, err)
	if err != nil {
		os.Exit(1)
	}
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	switch {
	case errors.Is(err, maze.ErrNoStart):
		message = fmt.Sprintf("%s\nHint: mark exactly one start cell with '%c'.", err, gridgraph.Start)
	case errors.Is(err, gridgraph.ErrEmptyGrid):
		message = fmt.Sprintf("%s\nHint: the maze file is empty; pass a file or pipe the maze on stdin.", err)
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}
