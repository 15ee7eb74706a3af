package sorting

import (
	"context"

	"github.com/katalvlaran/algoviz/step"
)

// QuickSort uses the Lomuto partition with the last element of the active
// range as pivot. Not stable.
type QuickSort struct{}

// Descriptor returns static metadata.
func (QuickSort) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:            "Quick Sort",
		TimeComplexity:  "O(n log n) average, O(n²) worst case",
		SpaceComplexity: "O(log n)",
		Description:     "Quick Sort picks a pivot element and partitions the array around it, then recursively sorts the sub-arrays.",
	}
}

// Sort orders elems in place.
func (QuickSort) Sort(ctx context.Context, elems []Element, onStep StepFunc) error {
	w := newWalker(ctx, elems, onStep)
	if err := w.quick(0, len(elems)-1); err != nil {
		return err
	}
	return w.complete("Quick Sort")
}

func (w *walker) quick(low, high int) error {
	if low >= high {
		return nil
	}
	// 1. highlight the range, keeping already placed pivots
	w.paint(low, high, RoleActive, RoleSorted)
	if err := w.emit("Sorting range [%d, %d]", low, high); err != nil {
		return err
	}

	// 2. partition; the pivot lands in its final slot
	p, err := w.partition(low, high)
	if err != nil {
		return err
	}
	w.paint(low, high, RoleNormal, RoleSorted)
	w.elems[p].Role = RoleSorted
	if err = w.emit("Pivot element %d placed at position %d", w.elems[p].Value, p); err != nil {
		return err
	}

	// 3. recurse on both sides
	if err = w.quick(low, p-1); err != nil {
		return err
	}
	return w.quick(p+1, high)
}

// partition runs Lomuto over [low, high] and returns the pivot index.
func (w *walker) partition(low, high int) (int, error) {
	e := w.elems
	pivot := e[high].Value
	e[high].Role = RolePivot
	if err := w.emit("Choosing pivot: %d", pivot); err != nil {
		return 0, err
	}

	i := low - 1
	for j := low; j < high; j++ {
		e[j].Role = RoleCompared
		if err := w.emit("Comparing %d with pivot %d", e[j].Value, pivot); err != nil {
			return 0, err
		}
		if e[j].Value <= pivot {
			i++
			if i != j {
				e[i].Role, e[j].Role = RoleSwapped, RoleSwapped
				if err := w.emit("Swapping %d with %d", e[i].Value, e[j].Value); err != nil {
					return 0, err
				}
				w.swap(i, j)
				e[i].Role = RoleActive
			}
		}
		e[j].Role = RoleActive
	}

	e[i+1].Role = RoleSwapped
	if err := w.emit("Placing pivot in correct position"); err != nil {
		return 0, err
	}
	w.swap(i+1, high)

	return i + 1, nil
}
