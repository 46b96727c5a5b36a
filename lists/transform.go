package lists

import (
	"github.com/hasbyte1/go-collection-views/collections"
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// Transform returns a live view of from with fn applied to each element. The
// view exposes exactly as many elements as the source at all times; fn is
// invoked lazily, on every access, so it should be fast.
//
// The mapping is one-directional, so Set, Insert, Add and AddAll return
// collections.ErrUnsupportedOperation. Removal passes through: RemoveAt(i)
// removes index i from the source and returns the transformed value of the
// removed element, and Clear clears the source.
func Transform[F, T any](from List[F], fn funcs.Transform[F, T]) List[T] {
	if from == nil {
		panic("lists: nil source list")
	}
	if fn == nil {
		panic("lists: nil transform")
	}
	return &transformedList[F, T]{from: from, fn: fn}
}

type transformedList[F, T any] struct {
	from List[F]
	fn   funcs.Transform[F, T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Container operations
// ─────────────────────────────────────────────────────────────────────────────

func (t *transformedList[F, T]) Add(T) error {
	return collections.ErrUnsupportedOperation
}

func (t *transformedList[F, T]) AddAll([]T) error {
	return collections.ErrUnsupportedOperation
}

func (t *transformedList[F, T]) Clear() error {
	return t.from.Clear()
}

func (t *transformedList[F, T]) Contains(value T, eq funcs.Equal[T]) bool {
	return iterators.Contains(t.Iterator(), value, eq)
}

func (t *transformedList[F, T]) ContainsAll(values []T, eq funcs.Equal[T]) bool {
	return collections.ContainsAll[T](t, values, eq)
}

func (t *transformedList[F, T]) IsEmpty() bool {
	return t.from.IsEmpty()
}

func (t *transformedList[F, T]) Iterator() iterators.Iterator[T] {
	return iterators.Map(t.from.Iterator(), t.fn)
}

func (t *transformedList[F, T]) Remove(value T, eq funcs.Equal[T]) (bool, error) {
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

func (t *transformedList[F, T]) RemoveAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(t.Iterator(), funcs.In(eq, values...))
}

func (t *transformedList[F, T]) RetainAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(t.Iterator(), funcs.Not(funcs.In(eq, values...)))
}

func (t *transformedList[F, T]) Size() int {
	return t.from.Size()
}

func (t *transformedList[F, T]) ToSlice() []T {
	return iterators.Collect(t.Iterator())
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional operations
// ─────────────────────────────────────────────────────────────────────────────

func (t *transformedList[F, T]) Get(index int) (T, error) {
	v, err := t.from.Get(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.fn(v), nil
}

func (t *transformedList[F, T]) Set(int, T) error {
	return collections.ErrUnsupportedOperation
}

func (t *transformedList[F, T]) Insert(int, T) error {
	return collections.ErrUnsupportedOperation
}

func (t *transformedList[F, T]) RemoveAt(index int) (T, error) {
	v, err := t.from.RemoveAt(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.fn(v), nil
}

func (t *transformedList[F, T]) IndexOf(value T, eq funcs.Equal[T]) int {
	return IndexOf[T](t, value, eq)
}

func (t *transformedList[F, T]) SubList(from, to int) (List[T], error) {
	sl, err := t.from.SubList(from, to)
	if err != nil {
		return nil, err
	}
	return Transform(sl, t.fn), nil
}

func (t *transformedList[F, T]) String() string {
	return collections.Format[T](t)
}
