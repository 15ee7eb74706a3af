// Package sorting implements four instrumented in-place sorts over a slice
// of Elements: Bubble, Quick (Lomuto), Merge (top-down, stable) and Heap.
//
// Every algorithm emits a step after each comparison, swap or range
// re-highlight, and always finishes with a "completed" step, so an empty
// input yields exactly one step. After each step the engine checks its
// context and returns ctx.Err() once cancelled; the slice is then left
// partially sorted but is still a permutation of the input.
//
// Complexity:
//
//	Bubble O(n²) time, O(1) space.
//	Quick  O(n log n) average, O(n²) worst; O(log n) space.
//	Merge  O(n log n) time; O(n) space for the run buffers.
//	Heap   O(n log n) time, O(1) space.
//
// Errors:
//
//   - ErrUnknownKind    when New or ParseKind receives an unknown algorithm.
//   - context.Canceled  if ctx is done.
//   - any error returned by the StepFunc.
package sorting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/step"
)

// ErrUnknownKind indicates an unknown sorting algorithm name or Kind.
var ErrUnknownKind = errors.New("sorting: unknown algorithm")

// Role is the display role of an element at a given step.
type Role int

const (
	RoleNormal Role = iota
	RoleCompared
	RoleSwapped
	RolePivot
	RoleSorted
	// RoleActive marks members of the range currently being worked on.
	RoleActive
)

// String returns a lower-case name for r.
func (r Role) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleCompared:
		return "compared"
	case RoleSwapped:
		return "swapped"
	case RolePivot:
		return "pivot"
	case RoleSorted:
		return "sorted"
	case RoleActive:
		return "active"
	default:
		return "unknown"
	}
}

// Element is one array entry with its display role.
type Element struct {
	Value int
	Role  Role
}

// NewElements wraps values as Elements with RoleNormal.
func NewElements(values []int) []Element {
	out := make([]Element, len(values))
	for i, v := range values {
		out[i] = Element{Value: v}
	}
	return out
}

// Values extracts the element values in order.
func Values(elems []Element) []int {
	out := make([]int, len(elems))
	for i, e := range elems {
		out[i] = e.Value
	}
	return out
}

// Snapshot returns an independent copy of elems, safe to hand to another goroutine.
func Snapshot(elems []Element) []Element {
	out := make([]Element, len(elems))
	copy(out, elems)
	return out
}

// StepFunc receives the live slice and a message after every step.
// A non-nil return aborts the sort with that error.
type StepFunc func(elems []Element, msg string) error

// Gated wraps fn so that every notification is followed by cp.Checkpoint.
// A nil fn only checkpoints.
func Gated(cp step.Checkpointer, fn StepFunc) StepFunc {
	return func(elems []Element, msg string) error {
		if fn != nil {
			if err := fn(elems, msg); err != nil {
				return err
			}
		}
		return cp.Checkpoint()
	}
}

// Sorter is one sorting algorithm.
type Sorter interface {
	// Descriptor returns static metadata.
	Descriptor() step.Descriptor
	// Sort orders elems in place, non-decreasing by Value.
	Sort(ctx context.Context, elems []Element, onStep StepFunc) error
}

// Kind selects a sorting algorithm.
type Kind int

const (
	Bubble Kind = iota
	Quick
	Merge
	Heap
)

var kindNames = [...]string{
	Bubble: "bubble",
	Quick:  "quick",
	Merge:  "merge",
	Heap:   "heap",
}

// String returns the short name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// All returns every Kind in menu order.
func All() []Kind { return []Kind{Bubble, Quick, Merge, Heap} }

// ParseKind resolves a short name such as "merge" (case-insensitive; a
// trailing "sort" is accepted).
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(strings.TrimSuffix(n, "sort"), "-")
	n = strings.TrimSpace(n)
	for i, kn := range kindNames {
		if n == kn {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// New returns the Sorter for k.
func New(k Kind) (Sorter, error) {
	switch k {
	case Bubble:
		return BubbleSort{}, nil
	case Quick:
		return QuickSort{}, nil
	case Merge:
		return MergeSort{}, nil
	case Heap:
		return HeapSort{}, nil
	default:
		return nil, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
}

// walker carries the per-run state shared by every algorithm.
type walker struct {
	ctx    context.Context
	elems  []Element
	onStep StepFunc
}

func newWalker(ctx context.Context, elems []Element, onStep StepFunc) *walker {
	if ctx == nil {
		ctx = context.Background()
	}
	for i := range elems {
		elems[i].Role = RoleNormal
	}
	return &walker{ctx: ctx, elems: elems, onStep: onStep}
}

// emit notifies the caller and then consults ctx.
func (w *walker) emit(format string, args ...any) error {
	if w.onStep != nil {
		if err := w.onStep(w.elems, fmt.Sprintf(format, args...)); err != nil {
			return err
		}
	}
	return step.Check(w.ctx)
}

func (w *walker) swap(i, j int) {
	w.elems[i], w.elems[j] = w.elems[j], w.elems[i]
}

// paint sets role r on [lo, hi], skipping elements whose role is in keep.
func (w *walker) paint(lo, hi int, r Role, keep ...Role) {
	for i := lo; i <= hi && i < len(w.elems); i++ {
		if hasRole(w.elems[i].Role, keep) {
			continue
		}
		w.elems[i].Role = r
	}
}

// complete marks everything sorted and emits the final step.
func (w *walker) complete(name string) error {
	w.paint(0, len(w.elems)-1, RoleSorted)
	return w.emit("%s completed!", name)
}

func hasRole(r Role, set []Role) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}
