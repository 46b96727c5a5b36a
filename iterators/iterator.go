package iterators

import "errors"

// Sentinel errors returned by iterator operations.
var (
	// ErrRemoveUnsupported is returned by Remove on iterators that cannot
	// remove elements from their source.
	ErrRemoveUnsupported = errors.New("iterators: remove is not supported by this iterator")

	// ErrNoSuchElement is the panic value used by Next when the iterator is
	// exhausted. Calling Next without a preceding true HasNext is a
	// programmer error.
	ErrNoSuchElement = errors.New("iterators: next called on exhausted iterator")

	// ErrRemoveBeforeNext is returned by Remove when no element has been
	// returned yet, or when Remove is called twice for the same element.
	ErrRemoveBeforeNext = errors.New("iterators: remove called before next")
)

// Iterator is a single-pass cursor over a sequence of elements.
type Iterator[T any] interface {
	// HasNext reports whether another element is available.
	HasNext() bool

	// Next returns the next element and advances the cursor.
	// It panics with ErrNoSuchElement when the iterator is exhausted.
	Next() T

	// Remove removes the element most recently returned by Next from the
	// underlying source. At most one removal per Next call.
	// Iterators over read-only sources return ErrRemoveUnsupported.
	Remove() error
}

// Of returns an iterator over the given values. Remove is unsupported.
func Of[T any](values ...T) Iterator[T] {
	return &sliceIterator[T]{values: values}
}

type sliceIterator[T any] struct {
	values []T
	pos    int
}

func (s *sliceIterator[T]) HasNext() bool {
	return s.pos < len(s.values)
}

func (s *sliceIterator[T]) Next() T {
	if s.pos >= len(s.values) {
		panic(ErrNoSuchElement)
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

func (s *sliceIterator[T]) Remove() error {
	return ErrRemoveUnsupported
}
