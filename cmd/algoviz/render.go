package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/pathfinding"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/traversal"
)

// Step printers return nil for a nil writer so Gated only checkpoints.

func sortPrinter(w io.Writer, run *step.Run) sorting.StepFunc {
	if w == nil {
		return nil
	}
	return func(elems []sorting.Element, msg string) error {
		_, err := fmt.Fprintf(w, "%5d  %s\n       %s\n", run.Steps()+1, msg, renderElements(elems))
		return err
	}
}

func pathPrinter(w io.Writer, run *step.Run) pathfinding.StepFunc {
	if w == nil {
		return nil
	}
	return func(_ *gridgraph.Grid, msg string, _ *gridgraph.Cell) error {
		_, err := fmt.Fprintf(w, "%5d  %s\n", run.Steps()+1, msg)
		return err
	}
}

func traversalPrinter(w io.Writer, run *step.Run) traversal.StepFunc {
	if w == nil {
		return nil
	}
	return func(_ *core.Graph, msg string, _ *core.Node, visited []*core.Node) error {
		_, err := fmt.Fprintf(w, "%5d  %-60s %s\n", run.Steps()+1, msg, nodeIDs(visited))
		return err
	}
}

// roleMarks brackets a value by its display role.
var roleMarks = map[sorting.Role][2]string{
	sorting.RoleCompared: {"(", ")"},
	sorting.RoleSwapped:  {"<", ">"},
	sorting.RolePivot:    {"[", "]"},
	sorting.RoleSorted:   {"", "*"},
	sorting.RoleActive:   {"~", ""},
}

// renderElements prints values space-separated, marked by role.
func renderElements(elems []sorting.Element) string {
	var b strings.Builder
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		m := roleMarks[e.Role]
		b.WriteString(m[0])
		b.WriteString(strconv.Itoa(e.Value))
		b.WriteString(m[1])
	}
	return b.String()
}

func nodeIDs(nodes []*core.Node) string {
	if len(nodes) == 0 {
		return "(empty)"
	}
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return strings.Join(ids, " ")
}
