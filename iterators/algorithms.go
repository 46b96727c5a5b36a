package iterators

import "github.com/hasbyte1/go-collection-views/funcs"

// This file contains the iterator-level algorithms shared by container
// implementations. They all consume the iterator they are given; callers that
// need the elements afterwards must obtain a fresh iterator.

// Collect drains it into a new slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// Size counts the remaining elements of it.
func Size[T any](it Iterator[T]) int {
	n := 0
	for it.HasNext() {
		it.Next()
		n++
	}
	return n
}

// Any reports whether at least one remaining element satisfies pred.
func Any[T any](it Iterator[T], pred funcs.Predicate[T]) bool {
	for it.HasNext() {
		if pred(it.Next()) {
			return true
		}
	}
	return false
}

// All reports whether every remaining element satisfies pred.
func All[T any](it Iterator[T], pred funcs.Predicate[T]) bool {
	for it.HasNext() {
		if !pred(it.Next()) {
			return false
		}
	}
	return true
}

// Contains reports whether any remaining element equals value under eq.
func Contains[T any](it Iterator[T], value T, eq funcs.Equal[T]) bool {
	return Any(it, func(v T) bool { return eq(v, value) })
}

// ElementsEqual reports whether a and b yield pairwise-equal elements and are
// exhausted together.
func ElementsEqual[T any](a, b Iterator[T], eq funcs.Equal[T]) bool {
	for a.HasNext() {
		if !b.HasNext() {
			return false
		}
		if !eq(a.Next(), b.Next()) {
			return false
		}
	}
	return !b.HasNext()
}

// RemoveIf removes every remaining element that satisfies pred, using the
// iterator's own Remove. It reports whether anything was removed. Elements
// removed before an unsupported-removal error stay removed; RemoveIf is
// atomic per scan, not rollback-capable.
func RemoveIf[T any](it Iterator[T], pred funcs.Predicate[T]) (bool, error) {
	changed := false
	for it.HasNext() {
		if pred(it.Next()) {
			if err := it.Remove(); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}
