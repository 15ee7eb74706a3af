package sorting

import (
	"context"

	"github.com/katalvlaran/algoviz/step"
)

// BubbleSort compares adjacent pairs, shrinking each pass by one and
// stopping early after a pass without swaps.
type BubbleSort struct{}

// Descriptor returns static metadata.
func (BubbleSort) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:            "Bubble Sort",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Description:     "Bubble Sort repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.",
	}
}

// Sort orders elems in place.
func (BubbleSort) Sort(ctx context.Context, elems []Element, onStep StepFunc) error {
	w := newWalker(ctx, elems, onStep)
	n := len(elems)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			// 1. highlight the pair, leaving settled elements alone
			w.paint(0, n-1, RoleNormal, RoleSorted)
			elems[j].Role, elems[j+1].Role = RoleCompared, RoleCompared
			if err := w.emit("Comparing elements at positions %d and %d", j, j+1); err != nil {
				return err
			}
			// 2. swap out-of-order pairs
			if elems[j].Value > elems[j+1].Value {
				w.swap(j, j+1)
				swapped = true
				elems[j].Role, elems[j+1].Role = RoleSwapped, RoleSwapped
				if err := w.emit("Swapped elements at positions %d and %d", j, j+1); err != nil {
					return err
				}
			}
		}
		// 3. the largest remaining element has bubbled to the end
		w.paint(0, n-1, RoleNormal, RoleSorted)
		elems[n-i-1].Role = RoleSorted
		if err := w.emit("Element at position %d is now in its final position", n-i-1); err != nil {
			return err
		}
		if !swapped {
			break
		}
	}

	return w.complete("Bubble Sort")
}
