package sorting

import (
	"context"

	"github.com/katalvlaran/algoviz/step"
)

// HeapSort builds a max-heap by sifting down from the last internal node,
// then repeatedly swaps the root with the last unsorted element.
type HeapSort struct{}

// Descriptor returns static metadata.
func (HeapSort) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:            "Heap Sort",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(1)",
		Description:     "Heap Sort builds a max heap from the array, then repeatedly extracts the maximum element and places it at the end.",
	}
}

// Sort orders elems in place.
func (HeapSort) Sort(ctx context.Context, elems []Element, onStep StepFunc) error {
	w := newWalker(ctx, elems, onStep)
	n := len(elems)

	if n > 1 {
		// 1. build the max-heap
		if err := w.emit("Building max heap..."); err != nil {
			return err
		}
		for i := n/2 - 1; i >= 0; i-- {
			if err := w.siftDown(n, i); err != nil {
				return err
			}
		}
		w.paint(0, n-1, RoleActive)
		if err := w.emit("Max heap built successfully"); err != nil {
			return err
		}

		// 2. move the max to the end and shrink the heap
		for i := n - 1; i > 0; i-- {
			elems[0].Role, elems[i].Role = RoleCompared, RoleCompared
			if err := w.emit("Moving max element %d to position %d", elems[0].Value, i); err != nil {
				return err
			}
			w.swap(0, i)
			elems[0].Role = RoleNormal
			elems[i].Role = RoleSorted
			if err := w.emit("Element %d is now in its final position", elems[i].Value); err != nil {
				return err
			}
			if err := w.siftDown(i, 0); err != nil {
				return err
			}
		}
	}

	return w.complete("Heap Sort")
}

// siftDown restores the max-heap property for the subtree at root within
// the first size elements.
func (w *walker) siftDown(size, root int) error {
	e := w.elems
	for {
		largest := root
		left, right := 2*root+1, 2*root+2

		e[root].Role = RoleActive
		if err := w.emit("Heapifying subtree rooted at index %d", root); err != nil {
			return err
		}
		if left < size {
			e[left].Role = RoleCompared
			if err := w.emit("Comparing with left child at index %d", left); err != nil {
				return err
			}
			if e[left].Value > e[largest].Value {
				largest = left
			}
		}
		if right < size {
			e[right].Role = RoleCompared
			if err := w.emit("Comparing with right child at index %d", right); err != nil {
				return err
			}
			if e[right].Value > e[largest].Value {
				largest = right
			}
		}

		if largest == root {
			w.paint(0, size-1, RoleNormal, RoleSorted)
			return nil
		}
		e[root].Role, e[largest].Role = RoleSwapped, RoleSwapped
		if err := w.emit("Swapping %d with %d", e[root].Value, e[largest].Value); err != nil {
			return err
		}
		w.swap(root, largest)
		root = largest
	}
}
