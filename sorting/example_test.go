package sorting_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/sorting"
)

// ExampleMergeSort prints the trace of a merge sort on three values.
func ExampleMergeSort() {
	elems := sorting.NewElements([]int{3, 1, 2})
	_ = sorting.MergeSort{}.Sort(context.Background(), elems, func(e []sorting.Element, msg string) error {
		fmt.Println(msg, "=>", sorting.Values(e))
		return nil
	})

	// Output:
	// Dividing range [0, 2] at position 1 => [3 1 2]
	// Dividing range [0, 1] at position 0 => [3 1 2]
	// Merging ranges [0, 0] and [1, 1] => [3 1 2]
	// Placing 1 from right array at position 0 => [1 1 2]
	// Placing remaining 3 from left array at position 1 => [1 3 2]
	// Merged range [0, 1] => [1 3 2]
	// Merging ranges [0, 1] and [2, 2] => [1 3 2]
	// Placing 1 from left array at position 0 => [1 3 2]
	// Placing 2 from right array at position 1 => [1 2 2]
	// Placing remaining 3 from left array at position 2 => [1 2 3]
	// Merged range [0, 2] => [1 2 3]
	// Merge Sort completed! => [1 2 3]
}

// ExampleNew selects an algorithm by name.
func ExampleNew() {
	k, _ := sorting.ParseKind("heap")
	s, _ := sorting.New(k)
	elems := sorting.NewElements([]int{5, 2, 8, 1, 9})
	_ = s.Sort(context.Background(), elems, nil)

	d := s.Descriptor()
	fmt.Println(d.Name, d.TimeComplexity, sorting.Values(elems))

	// Output:
	// Heap Sort O(n log n) [1 2 5 8 9]
}
