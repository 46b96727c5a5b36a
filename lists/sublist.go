package lists

import (
	"github.com/hasbyte1/go-collection-views/collections"
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// subList is a live view of a half-open index range of a parent list. It
// stores only the parent reference, an offset and a length; every access
// translates the index and delegates. Structural changes made through the
// view adjust its length; structural changes made directly on the parent are
// not tracked and may shift or invalidate the range (reads then surface the
// parent's own ErrIndexOutOfRange).
type subList[T any] struct {
	parent List[T]
	offset int
	length int
}

// ─────────────────────────────────────────────────────────────────────────────
// Container operations
// ─────────────────────────────────────────────────────────────────────────────

func (s *subList[T]) Add(value T) error {
	if err := s.parent.Insert(s.offset+s.length, value); err != nil {
		return err
	}
	s.length++
	return nil
}

func (s *subList[T]) AddAll(values []T) error {
	for _, v := range values {
		if err := s.Add(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *subList[T]) Clear() error {
	for s.length > 0 {
		if _, err := s.parent.RemoveAt(s.offset); err != nil {
			return err
		}
		s.length--
	}
	return nil
}

func (s *subList[T]) Contains(value T, eq funcs.Equal[T]) bool {
	return s.IndexOf(value, eq) >= 0
}

func (s *subList[T]) ContainsAll(values []T, eq funcs.Equal[T]) bool {
	return collections.ContainsAll[T](s, values, eq)
}

func (s *subList[T]) IsEmpty() bool {
	return s.length == 0
}

func (s *subList[T]) Iterator() iterators.Iterator[T] {
	return &subListIterator[T]{view: s, last: -1}
}

func (s *subList[T]) Remove(value T, eq funcs.Equal[T]) (bool, error) {
	i := s.IndexOf(value, eq)
	if i < 0 {
		return false, nil
	}
	_, err := s.RemoveAt(i)
	return err == nil, err
}

func (s *subList[T]) RemoveAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(s.Iterator(), funcs.In(eq, values...))
}

func (s *subList[T]) RetainAll(values []T, eq funcs.Equal[T]) (bool, error) {
	return iterators.RemoveIf(s.Iterator(), funcs.Not(funcs.In(eq, values...)))
}

func (s *subList[T]) Size() int {
	return s.length
}

func (s *subList[T]) ToSlice() []T {
	return iterators.Collect(s.Iterator())
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional operations
// ─────────────────────────────────────────────────────────────────────────────

func (s *subList[T]) Get(index int) (T, error) {
	if index < 0 || index >= s.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return s.parent.Get(s.offset + index)
}

func (s *subList[T]) Set(index int, value T) error {
	if index < 0 || index >= s.length {
		return ErrIndexOutOfRange
	}
	return s.parent.Set(s.offset+index, value)
}

func (s *subList[T]) Insert(index int, value T) error {
	if index < 0 || index > s.length {
		return ErrIndexOutOfRange
	}
	if err := s.parent.Insert(s.offset+index, value); err != nil {
		return err
	}
	s.length++
	return nil
}

func (s *subList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= s.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	v, err := s.parent.RemoveAt(s.offset + index)
	if err == nil {
		s.length--
	}
	return v, err
}

func (s *subList[T]) IndexOf(value T, eq funcs.Equal[T]) int {
	return IndexOf[T](s, value, eq)
}

func (s *subList[T]) SubList(from, to int) (List[T], error) {
	if from < 0 || to > s.length || from > to {
		return nil, ErrIndexOutOfRange
	}
	return &subList[T]{parent: s.parent, offset: s.offset + from, length: to - from}, nil
}

func (s *subList[T]) String() string {
	return collections.Format[T](s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterator
// ─────────────────────────────────────────────────────────────────────────────

type subListIterator[T any] struct {
	view *subList[T]
	pos  int
	last int
}

func (it *subListIterator[T]) HasNext() bool {
	return it.pos < it.view.length
}

func (it *subListIterator[T]) Next() T {
	v, err := it.view.Get(it.pos)
	if err != nil {
		panic(iterators.ErrNoSuchElement)
	}
	it.last = it.pos
	it.pos++
	return v
}

func (it *subListIterator[T]) Remove() error {
	if it.last < 0 {
		return iterators.ErrRemoveBeforeNext
	}
	if _, err := it.view.RemoveAt(it.last); err != nil {
		return err
	}
	it.pos = it.last
	it.last = -1
	return nil
}
