// Command algoviz runs the sorting, pathfinding and traversal engines in a
// terminal, printing every step as it happens.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	// Minimal logger until the root command parses --log-level.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes one command line against the given streams.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
