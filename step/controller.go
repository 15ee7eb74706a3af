package step

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/algoviz/internal/ctxlog"
)

// Controller enforces at most one active run per data-model instance and
// forwards pause/resume/cancel signals to it. Create one Controller per
// array, grid or graph that collaborators animate.
type Controller struct {
	opts  Options
	delay atomic.Int64

	mu     sync.Mutex
	active *Run
}

// NewController returns a Controller configured by opts.
func NewController(opts ...Option) *Controller {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller{opts: o}
	c.delay.Store(int64(o.Delay))

	return c
}

// Start launches fn on a dedicated goroutine and returns its Run handle.
// It fails with ErrRunActive unless the previous run has finished; callers
// replacing a run must Cancel it and Wait for it first.
func (c *Controller) Start(ctx context.Context, name string, fn RunFunc) (*Run, error) {
	if fn == nil {
		return nil, ErrNilRunFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		select {
		case <-c.active.done:
		default:
			return nil, fmt.Errorf("%w: %s (%s)", ErrRunActive, c.active.Name, c.active.ID)
		}
	}

	logger := c.opts.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	run := newRun(ctx, name, &c.delay, logger, c.opts.StartPaused)
	c.active = run
	go run.execute(fn)

	return run, nil
}

// Active returns the most recently started run, or nil.
func (c *Controller) Active() *Run {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Pause pauses the active run, if any.
func (c *Controller) Pause() {
	if r := c.Active(); r != nil {
		r.Pause()
	}
}

// Resume resumes the active run, if any.
func (c *Controller) Resume() {
	if r := c.Active(); r != nil {
		r.Resume()
	}
}

// Cancel cancels the active run, if any.
func (c *Controller) Cancel() {
	if r := c.Active(); r != nil {
		r.Cancel()
	}
}

// Wait blocks until the active run finishes. It returns ErrNoActiveRun if
// nothing was ever started.
func (c *Controller) Wait(ctx context.Context) error {
	r := c.Active()
	if r == nil {
		return ErrNoActiveRun
	}
	return r.Wait(ctx)
}

// Stop cancels the active run and waits until it is observed finished, so
// that a subsequent Start cannot fail with ErrRunActive.
func (c *Controller) Stop(ctx context.Context) error {
	r := c.Active()
	if r == nil {
		return nil
	}
	r.Cancel()
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetDelay changes the pacing delay; it takes effect at the next checkpoint
// of the active run as well as for future runs.
func (c *Controller) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.delay.Store(int64(d))
}

// Delay returns the current pacing delay.
func (c *Controller) Delay() time.Duration {
	return time.Duration(c.delay.Load())
}
