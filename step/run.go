package step

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Run is one algorithm execution driven by a Controller.
//
// Pause/resume is a two-party handshake over a single sync.Cond scoped to
// the run: Checkpoint blocks inside cond.Wait while paused, Resume clears
// the flag and broadcasts. Cancellation is carried by the run context and
// also wakes a paused checkpoint.
type Run struct {
	// ID uniquely identifies the run in logs.
	ID uuid.UUID

	// Name is the algorithm name supplied to Controller.Start.
	Name string

	ctx    context.Context
	cancel context.CancelFunc
	delay  *atomic.Int64 // nanoseconds, shared with the owning Controller
	logger *slog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	paused bool
	state  State
	err    error

	steps   atomic.Int64
	started time.Time
	elapsed time.Duration
	done    chan struct{}
}

func newRun(parent context.Context, name string, delay *atomic.Int64, logger *slog.Logger, paused bool) *Run {
	ctx, cancel := context.WithCancel(parent)
	r := &Run{
		ID:      uuid.New(),
		Name:    name,
		ctx:     ctx,
		cancel:  cancel,
		delay:   delay,
		logger:  logger,
		paused:  paused,
		state:   Running,
		started: time.Now(),
		done:    make(chan struct{}),
	}
	r.cond = sync.NewCond(&r.mu)

	return r
}

// execute runs fn on the calling goroutine and records its outcome.
func (r *Run) execute(fn RunFunc) {
	// wake any checkpoint blocked in cond.Wait once the context ends,
	// whether by Cancel or by the parent context
	stop := context.AfterFunc(r.ctx, func() {
		r.mu.Lock()
		r.cond.Broadcast()
		r.mu.Unlock()
	})
	defer close(r.done)
	defer stop()
	defer r.cancel()

	r.logger.Info("run started", "run_id", r.ID, "algorithm", r.Name)

	err := fn(r.ctx, r)

	r.mu.Lock()
	r.elapsed = time.Since(r.started)
	r.err = err
	switch {
	case err == nil:
		r.state = Finished
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		r.state = Cancelled
	default:
		r.state = Failed
	}
	r.paused = false
	state, elapsed := r.state, r.elapsed
	r.mu.Unlock()

	attrs := []any{"run_id", r.ID, "algorithm", r.Name, "steps", r.Steps(), "elapsed", elapsed}
	switch state {
	case Finished:
		r.logger.Info("run finished", attrs...)
	case Cancelled:
		r.logger.Info("run cancelled", attrs...)
	default:
		r.logger.Warn("run failed", append(attrs, "error", err)...)
	}
}

// Checkpoint is the cooperative check point engines reach after every step
// notification. It counts the step, blocks while the run is paused, applies
// the pacing delay and reports cancellation.
func (r *Run) Checkpoint() error {
	r.steps.Add(1)

	r.mu.Lock()
	for r.paused && r.ctx.Err() == nil {
		r.cond.Wait()
	}
	r.mu.Unlock()

	if err := r.ctx.Err(); err != nil {
		return err
	}

	d := time.Duration(r.delay.Load())
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pause asks the run to block at its next checkpoint. No-op once finished.
func (r *Run) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Done() || r.paused {
		return
	}
	r.paused = true
	r.logger.Debug("run paused", "run_id", r.ID, "steps", r.steps.Load())
}

// Resume releases a paused run. Repeated calls collapse into one.
func (r *Run) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.paused {
		return
	}
	r.paused = false
	r.cond.Broadcast()
	r.logger.Debug("run resumed", "run_id", r.ID, "steps", r.steps.Load())
}

// Cancel signals cancellation. The run stops at its next checkpoint.
func (r *Run) Cancel() { r.cancel() }

// Done is closed once the run function has returned.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the run finishes or ctx is done, returning the run error
// in the former case and ctx.Err() in the latter.
func (r *Run) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current lifecycle state.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Running && r.paused {
		return Paused
	}
	return r.state
}

// Err returns the error the run function returned, or nil while running.
func (r *Run) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Steps returns the number of checkpoints reached so far.
func (r *Run) Steps() int64 { return r.steps.Load() }

// Elapsed returns the wall-clock duration of the run, measured up to now
// while it is still executing.
func (r *Run) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Done() {
		return r.elapsed
	}
	return time.Since(r.started)
}
