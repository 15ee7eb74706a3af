package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/step"
)

// outcome is one row of the compare table.
type outcome struct {
	name    string
	state   step.State
	steps   int64
	elapsed time.Duration
	summary string
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		file  string
		algos []string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm of a scenario's engine side by side",
		Long: `compare runs all algorithms of the scenario's engine concurrently, each
on its own copy of the input and under its own controller, then prints
one summary row per algorithm. Steps are not printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := config.Load(file)
			if err != nil {
				return err
			}
			if len(algos) == 0 {
				algos = algorithmNames(sc.Engine)
			}
			if !cmd.Flags().Changed("delay") {
				a.delay = sc.Delay()
			}
			tasks, err := buildTasks(sc, algos)
			if err != nil {
				return err
			}
			results, err := a.compare(cmd.Context(), tasks)
			if err != nil {
				return err
			}
			return printOutcomes(a, results)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario file")
	cmd.Flags().StringSliceVarP(&algos, "algos", "a", nil, "algorithms to compare (default: all of the engine)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// compare runs every task on its own controller. The first failing run
// cancels the rest.
func (a *app) compare(ctx context.Context, tasks []task) ([]outcome, error) {
	results := make([]outcome, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			ctrl := step.NewController(step.WithDelay(a.delay), step.WithLogger(a.logger))
			var summary string
			run, err := ctrl.Start(gctx, t.name, func(ctx context.Context, run *step.Run) error {
				var err error
				summary, err = t.exec(ctx, run, nil)
				return err
			})
			if err != nil {
				return err
			}
			err = run.Wait(context.Background())
			results[i] = outcome{
				name:    t.name,
				state:   run.State(),
				steps:   run.Steps(),
				elapsed: run.Elapsed(),
				summary: summary,
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%s: %w", t.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func printOutcomes(a *app, results []outcome) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSTATE\tSTEPS\tELAPSED\tRESULT")
	for _, r := range results {
		// multi-line summaries (grids) keep only their first line
		summary, _, _ := strings.Cut(r.summary, "\n")
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.name, r.state, r.steps, r.elapsed.Round(time.Microsecond), summary)
	}
	return tw.Flush()
}
