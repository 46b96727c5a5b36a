package collections

import (
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// Filter returns a live view of the elements of unfiltered that satisfy pred.
// Changes to one side are visible on the other: the view's mutating methods
// write through to the source, and mutations of the source immediately change
// what the view observes.
//
// Filtering an already-filtered view does not stack wrappers. The result is a
// single view over the original source whose predicate is the conjunction of
// both predicates, so Clear, RemoveAll and RetainAll keep working at any
// composition depth.
//
// The view's Iterator does not support Remove. Add and AddAll reject elements
// that fail pred with ErrPredicateMismatch, leaving the source untouched.
// Size and IsEmpty scan the source on every call; when a live view is not
// needed, snapshot with ToSlice instead.
func Filter[T any](unfiltered Container[T], pred funcs.Predicate[T]) Container[T] {
	if unfiltered == nil {
		panic("collections: nil source container")
	}
	if pred == nil {
		panic("collections: nil predicate")
	}
	if f, ok := unfiltered.(*filteredContainer[T]); ok {
		// Flatten instead of nesting so bulk removal still sees the
		// original source.
		return &filteredContainer[T]{
			unfiltered: f.unfiltered,
			pred:       funcs.And(f.pred, pred),
		}
	}
	return &filteredContainer[T]{unfiltered: unfiltered, pred: pred}
}

type filteredContainer[T any] struct {
	unfiltered Container[T]
	pred       funcs.Predicate[T]
}

func (f *filteredContainer[T]) Add(value T) error {
	if !f.pred(value) {
		return ErrPredicateMismatch
	}
	return f.unfiltered.Add(value)
}

// AddAll validates every candidate before touching the source: either the
// whole batch is forwarded in one bulk call, or nothing is added.
func (f *filteredContainer[T]) AddAll(values []T) error {
	for _, v := range values {
		if !f.pred(v) {
			return ErrPredicateMismatch
		}
	}
	return f.unfiltered.AddAll(values)
}

func (f *filteredContainer[T]) Clear() error {
	_, err := iterators.RemoveIf(f.unfiltered.Iterator(), f.pred)
	return err
}

func (f *filteredContainer[T]) Contains(value T, eq funcs.Equal[T]) bool {
	return SafeContains(f.unfiltered, value, eq) && f.pred(value)
}

func (f *filteredContainer[T]) ContainsAll(values []T, eq funcs.Equal[T]) bool {
	return ContainsAll[T](f, values, eq)
}

func (f *filteredContainer[T]) IsEmpty() bool {
	return !iterators.Any(f.unfiltered.Iterator(), f.pred)
}

func (f *filteredContainer[T]) Iterator() iterators.Iterator[T] {
	return iterators.Filter(f.unfiltered.Iterator(), f.pred)
}

func (f *filteredContainer[T]) Remove(value T, eq funcs.Equal[T]) (bool, error) {
	if !f.Contains(value, eq) {
		return false, nil
	}
	return f.unfiltered.Remove(value, eq)
}

func (f *filteredContainer[T]) RemoveAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(f.unfiltered.Iterator(),
		funcs.And(f.pred, funcs.In(eq, values...)))
}

func (f *filteredContainer[T]) RetainAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(f.unfiltered.Iterator(),
		funcs.And(f.pred, funcs.Not(funcs.In(eq, values...))))
}

func (f *filteredContainer[T]) Size() int {
	return iterators.Size(f.Iterator())
}

// ToSlice drains the filtering iterator once, so the predicate runs a single
// time per source element rather than once per later access.
func (f *filteredContainer[T]) ToSlice() []T {
	return iterators.Collect(f.Iterator())
}

func (f *filteredContainer[T]) String() string {
	return Format[T](f)
}
