package lists

import (
	"github.com/hasbyte1/go-collection-views/collections"
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// ArrayList is a slice-backed List. The zero value is an empty, usable list.
//
// ArrayList is not safe for concurrent use, and neither are any views taken
// over it.
type ArrayList[T any] struct {
	data []T
}

// New creates an ArrayList holding the given values. The backing slice is
// freshly allocated (sized by the capacity heuristic, so a handful of
// follow-up Adds don't reallocate) and the input values are copied.
func New[T any](values ...T) *ArrayList[T] {
	hint, _ := collections.Capacity(len(values))
	data := make([]T, 0, hint)
	return &ArrayList[T]{data: append(data, values...)}
}

// Wrap creates an ArrayList that aliases the caller's slice. The caller keeps
// ownership of the storage; mutations through the list are visible in the
// slice and vice versa, up to the first growth reallocation.
func Wrap[T any](values []T) *ArrayList[T] {
	return &ArrayList[T]{data: values}
}

// ─────────────────────────────────────────────────────────────────────────────
// Container operations
// ─────────────────────────────────────────────────────────────────────────────

func (l *ArrayList[T]) Add(value T) error {
	l.data = append(l.data, value)
	return nil
}

func (l *ArrayList[T]) AddAll(values []T) error {
	l.data = append(l.data, values...)
	return nil
}

func (l *ArrayList[T]) Clear() error {
	// release element references before truncating
	clear(l.data)
	l.data = l.data[:0]
	return nil
}

func (l *ArrayList[T]) Contains(value T, eq funcs.Equal[T]) bool {
	return l.IndexOf(value, eq) >= 0
}

func (l *ArrayList[T]) ContainsAll(values []T, eq funcs.Equal[T]) bool {
	return collections.ContainsAll[T](l, values, eq)
}

func (l *ArrayList[T]) IsEmpty() bool {
	return len(l.data) == 0
}

func (l *ArrayList[T]) Iterator() iterators.Iterator[T] {
	return &arrayListIterator[T]{list: l, last: -1}
}

func (l *ArrayList[T]) Remove(value T, eq funcs.Equal[T]) (bool, error) {
	i := l.IndexOf(value, eq)
	if i < 0 {
		return false, nil
	}
	_, err := l.RemoveAt(i)
	return err == nil, err
}

func (l *ArrayList[T]) RemoveAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(l.Iterator(), funcs.In(eq, values...))
}

func (l *ArrayList[T]) RetainAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(l.Iterator(), funcs.Not(funcs.In(eq, values...)))
}

func (l *ArrayList[T]) Size() int {
	return len(l.data)
}

func (l *ArrayList[T]) ToSlice() []T {
	out := make([]T, len(l.data))
	copy(out, l.data)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional operations
// ─────────────────────────────────────────────────────────────────────────────

func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.data) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.data[index], nil
}

func (l *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(l.data) {
		return ErrIndexOutOfRange
	}
	l.data[index] = value
	return nil
}

func (l *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(l.data) {
		return ErrIndexOutOfRange
	}
	var zero T
	l.data = append(l.data, zero)
	copy(l.data[index+1:], l.data[index:])
	l.data[index] = value
	return nil
}

func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(l.data) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	removed := l.data[index]
	copy(l.data[index:], l.data[index+1:])
	// clear the vacated tail slot so the element can be collected
	clear(l.data[len(l.data)-1:])
	l.data = l.data[:len(l.data)-1]
	return removed, nil
}

func (l *ArrayList[T]) IndexOf(value T, eq funcs.Equal[T]) int {
	for i, v := range l.data {
		if eq(v, value) {
			return i
		}
	}
	return -1
}

func (l *ArrayList[T]) SubList(from, to int) (List[T], error) {
	if from < 0 || to > len(l.data) || from > to {
		return nil, ErrIndexOutOfRange
	}
	return &subList[T]{parent: l, offset: from, length: to - from}, nil
}

// String implements fmt.Stringer via the shared cycle-safe renderer.
func (l *ArrayList[T]) String() string {
	return collections.Format[T](l)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterator
// ─────────────────────────────────────────────────────────────────────────────

// arrayListIterator supports in-place removal. Structural modification of the
// list other than through Remove leaves the cursor position undefined.
type arrayListIterator[T any] struct {
	list *ArrayList[T]
	pos  int
	last int
}

func (it *arrayListIterator[T]) HasNext() bool {
	return it.pos < len(it.list.data)
}

func (it *arrayListIterator[T]) Next() T {
	if it.pos >= len(it.list.data) {
		panic(iterators.ErrNoSuchElement)
	}
	v := it.list.data[it.pos]
	it.last = it.pos
	it.pos++
	return v
}

func (it *arrayListIterator[T]) Remove() error {
	if it.last < 0 {
		return iterators.ErrRemoveBeforeNext
	}
	if _, err := it.list.RemoveAt(it.last); err != nil {
		return err
	}
	it.pos = it.last
	it.last = -1
	return nil
}
