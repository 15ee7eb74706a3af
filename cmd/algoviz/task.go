package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/pathfinding"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/traversal"
)

// task is one algorithm bound to its own copy of the input.
type task struct {
	name string
	desc step.Descriptor

	// exec runs the engine under run. Steps go to w unless w is nil; the
	// returned summary describes the result.
	exec func(ctx context.Context, run *step.Run, w io.Writer) (string, error)
}

func sortTask(kind sorting.Kind, values []int) (task, error) {
	s, err := sorting.New(kind)
	if err != nil {
		return task{}, err
	}
	return task{
		name: kind.String(),
		desc: s.Descriptor(),
		exec: func(ctx context.Context, run *step.Run, w io.Writer) (string, error) {
			elems := sorting.NewElements(values)
			if err := s.Sort(ctx, elems, sorting.Gated(run, sortPrinter(w, run))); err != nil {
				return "", err
			}
			return fmt.Sprintf("sorted: %v", sorting.Values(elems)), nil
		},
	}, nil
}

func pathTask(kind pathfinding.Kind, g *gridgraph.Grid) (task, error) {
	p, err := pathfinding.New(kind)
	if err != nil {
		return task{}, err
	}
	return task{
		name: kind.String(),
		desc: p.Descriptor(),
		exec: func(ctx context.Context, run *step.Run, w io.Writer) (string, error) {
			path, err := p.FindPath(ctx, g, pathfinding.Gated(run, pathPrinter(w, run)))
			if err != nil {
				return "", err
			}
			if len(path) == 0 {
				return fmt.Sprintf("no path (%d open regions)\n%s", len(g.Regions()), g.String()), nil
			}
			return fmt.Sprintf("path length: %d\n%s", len(path), g.String()), nil
		},
	}, nil
}

func traversalTask(kind traversal.Kind, g *core.Graph, start string) (task, error) {
	t, err := traversal.New(kind)
	if err != nil {
		return task{}, err
	}
	return task{
		name: kind.String(),
		desc: t.Descriptor(),
		exec: func(ctx context.Context, run *step.Run, w io.Writer) (string, error) {
			order, err := t.Traverse(ctx, g, start, traversal.Gated(run, traversalPrinter(w, run)))
			if err != nil {
				return "", err
			}
			return "order: " + nodeIDs(order), nil
		},
	}, nil
}

// execute runs t on a fresh controller and reports the outcome. A run
// cancelled from the keyboard is not an error.
func (a *app) execute(ctx context.Context, t task) error {
	ctrl := step.NewController(step.WithDelay(a.delay), step.WithLogger(a.logger))

	var w io.Writer
	if !a.quiet {
		w = a.out
		fmt.Fprintf(w, "%s (time %s, space %s)\n", t.desc.Name, t.desc.TimeComplexity, t.desc.SpaceComplexity)
	}

	var summary string
	run, err := ctrl.Start(ctx, t.name, func(ctx context.Context, run *step.Run) error {
		var err error
		summary, err = t.exec(ctx, run, w)
		return err
	})
	if err != nil {
		return err
	}
	if a.interactive {
		go a.readCommands(ctrl)
	}

	<-run.Done()
	switch run.State() {
	case step.Finished:
		fmt.Fprintln(a.out, summary)
		fmt.Fprintf(a.out, "%d steps in %s\n", run.Steps(), run.Elapsed().Round(time.Microsecond))
		return nil
	case step.Cancelled:
		fmt.Fprintf(a.out, "cancelled after %d steps\n", run.Steps())
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	default:
		return fmt.Errorf("%s: %w", t.name, run.Err())
	}
}

// minDelay is the step the "slower" command starts from when unpaced.
const minDelay = 10 * time.Millisecond

// readCommands drives ctrl from stdin until EOF: p pauses, r resumes,
// + and - halve or double the delay, c or q cancels.
func (a *app) readCommands(ctrl *step.Controller) {
	sc := bufio.NewScanner(a.in)
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "":
		case "p", "pause":
			ctrl.Pause()
		case "r", "resume":
			ctrl.Resume()
		case "+", "faster":
			ctrl.SetDelay(ctrl.Delay() / 2)
			a.logger.Info("delay changed", "delay", ctrl.Delay())
		case "-", "slower":
			ctrl.SetDelay(max(ctrl.Delay()*2, minDelay))
			a.logger.Info("delay changed", "delay", ctrl.Delay())
		case "c", "cancel", "q", "quit":
			ctrl.Cancel()
			return
		default:
			a.logger.Warn("unknown command, use p, r, +, - or c", "input", sc.Text())
		}
	}
}
