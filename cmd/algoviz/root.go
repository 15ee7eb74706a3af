package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/internal/ctxlog"
)

const version = "0.1.0"

// app holds the streams and persistent flags shared by every subcommand.
type app struct {
	in          io.Reader
	out, errOut io.Writer

	delay       time.Duration
	quiet       bool
	interactive bool
	logLevel    string
	logFormat   string

	logger *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "algoviz",
		Short: "Step through classic algorithms in the terminal",
		Long: `algoviz runs sorting, grid pathfinding and graph traversal algorithms
one observable step at a time.

Every step is printed as it happens. --delay paces the run and
--interactive reads p (pause), r (resume), + and - (pace) and c
(cancel) from stdin.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(a.logLevel, a.logFormat, a.errOut)
			if err != nil {
				return err
			}
			if a.delay < 0 {
				return fmt.Errorf("--delay must not be negative, got %s", a.delay)
			}
			a.logger = logger
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.DurationVar(&a.delay, "delay", 0, "pause between steps, e.g. 50ms")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "print only the final result")
	pf.BoolVarP(&a.interactive, "interactive", "i", false, "read p/r/+/-/c commands from stdin while running")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newListCmd(a),
		newSortCmd(a),
		newPathCmd(a),
		newGraphCmd(a),
		newRunCmd(a),
		newCompareCmd(a),
	)

	return root
}

// newLogger builds the stderr logger from the --log-level and --log-format flags.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", levelStr)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(formatStr) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", formatStr)
	}
}
