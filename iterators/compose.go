package iterators

import "github.com/hasbyte1/go-collection-views/funcs"

// Filter returns a lazy view of it containing only the elements that satisfy
// pred. The returned iterator stages the next satisfying element ahead of
// time: one is looked up on construction and another after each Next, so
// HasNext never has to guess. Remove is unsupported on the returned iterator.
func Filter[T any](it Iterator[T], pred funcs.Predicate[T]) Iterator[T] {
	if it == nil {
		panic("iterators: nil source iterator")
	}
	if pred == nil {
		panic("iterators: nil predicate")
	}
	f := &filterIterator[T]{it: it, pred: pred}
	f.stage()
	return f
}

type filterIterator[T any] struct {
	it     Iterator[T]
	pred   funcs.Predicate[T]
	staged T
	ok     bool
}

// stage advances the source until an element satisfying the predicate is
// found or the source is exhausted.
func (f *filterIterator[T]) stage() {
	f.ok = false
	for f.it.HasNext() {
		v := f.it.Next()
		if f.pred(v) {
			f.staged = v
			f.ok = true
			return
		}
	}
	var zero T
	f.staged = zero
}

func (f *filterIterator[T]) HasNext() bool {
	return f.ok
}

func (f *filterIterator[T]) Next() T {
	if !f.ok {
		panic(ErrNoSuchElement)
	}
	v := f.staged
	f.stage()
	return v
}

func (f *filterIterator[T]) Remove() error {
	return ErrRemoveUnsupported
}

// Map returns a lazy view of it with fn applied to each element. HasNext and
// Remove forward directly to the source iterator, so removing through the
// mapped iterator removes the original, untransformed element.
func Map[F, T any](it Iterator[F], fn funcs.Transform[F, T]) Iterator[T] {
	if it == nil {
		panic("iterators: nil source iterator")
	}
	if fn == nil {
		panic("iterators: nil transform")
	}
	return &mapIterator[F, T]{it: it, fn: fn}
}

type mapIterator[F, T any] struct {
	it Iterator[F]
	fn funcs.Transform[F, T]
}

func (m *mapIterator[F, T]) HasNext() bool {
	return m.it.HasNext()
}

func (m *mapIterator[F, T]) Next() T {
	return m.fn(m.it.Next())
}

func (m *mapIterator[F, T]) Remove() error {
	return m.it.Remove()
}
