package specification

import (
	"iter"
	"slices"
)

// Filter applies spec to items, yielding the sub-sequence of items that
// satisfy it, in the original relative order.
//
// Filtering is lazy: items is pulled one element at a time and nothing is
// materialized. When the consumer stops early, the specification is not
// evaluated against unconsumed items. The result is restartable only if
// items itself is restartable; a single-pass sequence stays single-pass.
func Filter[T any](items iter.Seq[T], spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range items {
			if !spec.IsSatisfiedBy(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Filter2 is Filter for sequences that can fail while being pulled. Pairs
// carrying a non-nil error are yielded unchanged without evaluating spec;
// nothing is recovered or retried.
func Filter2[T any](items iter.Seq2[T, error], spec Specification[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for t, err := range items {
			if err != nil {
				if !yield(t, err) {
					return
				}
				continue
			}
			if !spec.IsSatisfiedBy(t) {
				continue
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}

// FilterSlice applies spec to a slice, returning the matching items as a
// new slice.
func FilterSlice[T any](items []T, spec Specification[T]) []T {
	return slices.Collect(Filter(slices.Values(items), spec))
}
