package collections

import (
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// Transform returns a live view that applies fn to each element of from.
// Changes to the source are visible through the view, and removals through
// the view (Remove, RemoveAll, RetainAll, iterator Remove) write through to
// the source.
//
// Because fn is not invertible, Add and AddAll return
// ErrUnsupportedOperation. The view always exposes exactly as many elements
// as the source: fn can only map elements, never drop or add them.
//
// Contains and the removal operations work by iterating the source and
// transforming each element before comparing — generic behavior only, with
// whatever cost fn has per element.
func Transform[F, T any](from Container[F], fn funcs.Transform[F, T]) Container[T] {
	if from == nil {
		panic("collections: nil source container")
	}
	if fn == nil {
		panic("collections: nil transform")
	}
	return &transformedContainer[F, T]{from: from, fn: fn}
}

type transformedContainer[F, T any] struct {
	from Container[F]
	fn   funcs.Transform[F, T]
}

func (t *transformedContainer[F, T]) Add(T) error {
	return ErrUnsupportedOperation
}

func (t *transformedContainer[F, T]) AddAll([]T) error {
	return ErrUnsupportedOperation
}

func (t *transformedContainer[F, T]) Clear() error {
	return t.from.Clear()
}

func (t *transformedContainer[F, T]) Contains(value T, eq funcs.Equal[T]) bool {
	return iterators.Contains(t.Iterator(), value, eq)
}

func (t *transformedContainer[F, T]) ContainsAll(values []T, eq funcs.Equal[T]) bool {
	return ContainsAll[T](t, values, eq)
}

func (t *transformedContainer[F, T]) IsEmpty() bool {
	return t.from.IsEmpty()
}

func (t *transformedContainer[F, T]) Iterator() iterators.Iterator[T] {
	return iterators.Map(t.from.Iterator(), t.fn)
}

func (t *transformedContainer[F, T]) Remove(value T, eq funcs.Equal[T]) (bool, error) {
	it := t.Iterator()
	for it.HasNext() {
		if eq(it.Next(), value) {
			if err := it.Remove(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (t *transformedContainer[F, T]) RemoveAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(t.Iterator(), funcs.In(eq, values...))
}

func (t *transformedContainer[F, T]) RetainAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(t.Iterator(), funcs.Not(funcs.In(eq, values...)))
}

func (t *transformedContainer[F, T]) Size() int {
	return t.from.Size()
}

func (t *transformedContainer[F, T]) ToSlice() []T {
	return iterators.Collect(t.Iterator())
}

func (t *transformedContainer[F, T]) String() string {
	return Format[T](t)
}
