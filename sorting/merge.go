package sorting

import (
	"context"

	"github.com/katalvlaran/algoviz/step"
)

// MergeSort divides at left+(right-left)/2 and merges taking from the left
// run on ties, which keeps it stable. Only the two runs being merged are
// buffered.
type MergeSort struct{}

// Descriptor returns static metadata.
func (MergeSort) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:            "Merge Sort",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(n)",
		Description:     "Merge Sort divides the array into halves, recursively sorts them, and then merges the sorted halves.",
	}
}

// Sort orders elems in place.
func (MergeSort) Sort(ctx context.Context, elems []Element, onStep StepFunc) error {
	w := newWalker(ctx, elems, onStep)
	if err := w.mergeSort(0, len(elems)-1); err != nil {
		return err
	}
	return w.complete("Merge Sort")
}

func (w *walker) mergeSort(left, right int) error {
	if left >= right {
		return nil
	}
	middle := left + (right-left)/2
	w.paint(left, right, RoleActive)
	if err := w.emit("Dividing range [%d, %d] at position %d", left, right, middle); err != nil {
		return err
	}
	if err := w.mergeSort(left, middle); err != nil {
		return err
	}
	if err := w.mergeSort(middle+1, right); err != nil {
		return err
	}
	return w.merge(left, middle, right)
}

func (w *walker) merge(left, middle, right int) (err error) {
	e := w.elems
	// 1. buffer both runs
	lrun := make([]int, middle-left+1)
	rrun := make([]int, right-middle)
	for i := range lrun {
		lrun[i] = e[left+i].Value
	}
	for j := range rrun {
		rrun[j] = e[middle+1+j].Value
	}
	w.paint(left, middle, RoleCompared)
	w.paint(middle+1, right, RolePivot)
	if err = w.emit("Merging ranges [%d, %d] and [%d, %d]", left, middle, middle+1, right); err != nil {
		return err
	}

	// 2. write back, preferring the left run on ties
	i, j, k := 0, 0, left
	defer func() {
		// an aborted merge still leaves a permutation of the input
		if err != nil {
			for _, v := range append(lrun[i:], rrun[j:]...) {
				e[k].Value = v
				k++
			}
		}
	}()
	for i < len(lrun) && j < len(rrun) {
		if lrun[i] <= rrun[j] {
			e[k].Value, e[k].Role = lrun[i], RoleSwapped
			err = w.emit("Placing %d from left array at position %d", lrun[i], k)
			i++
		} else {
			e[k].Value, e[k].Role = rrun[j], RoleSwapped
			err = w.emit("Placing %d from right array at position %d", rrun[j], k)
			j++
		}
		k++
		if err != nil {
			return err
		}
	}

	// 3. drain whichever run remains
	for ; i < len(lrun); i, k = i+1, k+1 {
		e[k].Value, e[k].Role = lrun[i], RoleSwapped
		if err = w.emit("Placing remaining %d from left array at position %d", lrun[i], k); err != nil {
			return err
		}
	}
	for ; j < len(rrun); j, k = j+1, k+1 {
		e[k].Value, e[k].Role = rrun[j], RoleSwapped
		if err = w.emit("Placing remaining %d from right array at position %d", rrun[j], k); err != nil {
			return err
		}
	}

	w.paint(left, right, RoleActive)
	return w.emit("Merged range [%d, %d]", left, right)
}
