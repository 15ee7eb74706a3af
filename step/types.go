// Package step defines the shared step protocol every engine honors:
// algorithm descriptors, the cancellation checkpoint, and the run
// controller that drives a single algorithm run interactively.
package step

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors for run control.
var (
	// ErrRunActive is returned by Controller.Start while a previous run has
	// not yet been observed finished.
	ErrRunActive = errors.New("step: a run is already active")

	// ErrNilRunFunc is returned when Controller.Start receives a nil RunFunc.
	ErrNilRunFunc = errors.New("step: run function is nil")

	// ErrNoActiveRun is returned by Controller.Wait when nothing was started.
	ErrNoActiveRun = errors.New("step: no active run")
)

// Descriptor is the static metadata every algorithm exposes to collaborators.
type Descriptor struct {
	// Name is the human-readable algorithm name, e.g. "Merge Sort".
	Name string

	// TimeComplexity and SpaceComplexity are free-form big-O strings.
	TimeComplexity  string
	SpaceComplexity string

	// Description explains in one or two sentences how the algorithm works.
	Description string

	// Optimal reports whether a pathfinding algorithm guarantees the shortest path.
	Optimal bool

	// ProducesOrdering reports whether a traversal result is a meaningful ordering.
	ProducesOrdering bool
}

// String returns the descriptor name.
func (d Descriptor) String() string { return d.Name }

// State is the lifecycle state of a Run.
type State int

const (
	// Running: the run is executing or about to.
	Running State = iota
	// Paused: the run is blocked at a checkpoint until resumed.
	Paused
	// Finished: the algorithm returned without error.
	Finished
	// Cancelled: the run stopped because its context was cancelled.
	Cancelled
	// Failed: the algorithm returned a non-cancellation error.
	Failed
)

// String returns a lower-case name for s.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Done reports whether s is terminal.
func (s State) Done() bool { return s >= Finished }

// Checkpointer is the cooperative check point consulted after every step
// notification. *Run implements it.
type Checkpointer interface {
	Checkpoint() error
}

// RunFunc is the body of a run. It receives the run-scoped context and the
// Run itself so it can gate its notifier through Run.Checkpoint.
type RunFunc func(ctx context.Context, run *Run) error

// Option configures a Controller.
type Option func(*Options)

// Options holds Controller parameters.
type Options struct {
	// Delay is the pacing pause applied after every checkpoint. Zero disables pacing.
	Delay time.Duration

	// Logger receives run lifecycle records. Nil means the logger carried in
	// the Start context (see internal/ctxlog), falling back to slog.Default().
	Logger *slog.Logger

	// StartPaused makes new runs block at their first checkpoint.
	StartPaused bool
}

// DefaultOptions returns Options with no pacing, no explicit logger and
// runs that start immediately.
func DefaultOptions() Options {
	return Options{}
}

// WithDelay sets the pacing delay between steps. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.Delay = d
	}
}

// WithLogger sets the logger used for run lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStartPaused makes every new run wait for Resume before its first step completes.
func WithStartPaused() Option {
	return func(o *Options) {
		o.StartPaused = true
	}
}

// Check is the cancellation checkpoint engines call right after each
// notification. It returns ctx.Err() once ctx is done.
func Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
