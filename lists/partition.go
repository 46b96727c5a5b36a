package lists

import (
	"github.com/hasbyte1/go-collection-views/collections"
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// Partition returns a read-only view of list as consecutive segments of the
// given size; the final segment may be smaller but is never empty. It returns
// ErrInvalidChunkSize when size <= 0.
//
// The outer view is recomputed from the live list on every access: the
// segment count is ceil(list.Size()/size), and each Get produces a fresh
// sub-range view [i*size, min((i+1)*size, list.Size())) of the original list
// — a slice of the source, not a copy. Mutating the source before a segment
// is read changes the segment's observed content, and changing the source's
// length can change the segment's length or validity.
//
//	chunks, _ := lists.Partition(lists.New("a", "b", "c", "d", "e"), 3)
//	chunks.Size()   // 2
//	chunks.Get(0)   // live view of [a b c]
//	chunks.Get(2)   // ErrIndexOutOfRange
//
// All mutating operations on the outer view return
// collections.ErrUnsupportedOperation; mutate the source, or write through an
// individual segment, instead.
func Partition[T any](list List[T], size int) (List[List[T]], error) {
	if list == nil {
		panic("lists: nil source list")
	}
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return &partitionList[T]{list: list, size: size}, nil
}

// divideCeil is size-partition arithmetic: ceil(a/b) without intermediate
// overflow, for a >= 0 and b > 0.
func divideCeil(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

type partitionList[T any] struct {
	list List[T]
	size int
}

// ─────────────────────────────────────────────────────────────────────────────
// Read side
// ─────────────────────────────────────────────────────────────────────────────

func (p *partitionList[T]) Get(index int) (List[T], error) {
	if index < 0 || index >= p.Size() {
		return nil, ErrIndexOutOfRange
	}
	start := index * p.size
	end := min(start+p.size, p.list.Size())
	return p.list.SubList(start, end)
}

func (p *partitionList[T]) Size() int {
	return divideCeil(p.list.Size(), p.size)
}

func (p *partitionList[T]) IsEmpty() bool {
	return p.list.IsEmpty()
}

func (p *partitionList[T]) Contains(value List[T], eq funcs.Equal[List[T]]) bool {
	return iterators.Contains(p.Iterator(), value, eq)
}

func (p *partitionList[T]) ContainsAll(values []List[T], eq funcs.Equal[List[T]]) bool {
	return collections.ContainsAll[List[T]](p, values, eq)
}

func (p *partitionList[T]) IndexOf(value List[T], eq funcs.Equal[List[T]]) int {
	return IndexOf[List[T]](p, value, eq)
}

func (p *partitionList[T]) Iterator() iterators.Iterator[List[T]] {
	return &partitionIterator[T]{view: p}
}

func (p *partitionList[T]) ToSlice() []List[T] {
	return iterators.Collect(p.Iterator())
}

func (p *partitionList[T]) String() string {
	return collections.Format[List[T]](p)
}

// ─────────────────────────────────────────────────────────────────────────────
// Write side: the outer view is read-only
// ─────────────────────────────────────────────────────────────────────────────

func (p *partitionList[T]) Add(List[T]) error {
	return collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) AddAll([]List[T]) error {
	return collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) Clear() error {
	return collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) Remove(List[T], funcs.Equal[List[T]]) (bool, error) {
	return false, collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) RemoveAll([]List[T], funcs.Equal[List[T]]) (bool, error) {
	return false, collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) RetainAll([]List[T], funcs.Equal[List[T]]) (bool, error) {
	return false, collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) Set(int, List[T]) error {
	return collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) Insert(int, List[T]) error {
	return collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) RemoveAt(int) (List[T], error) {
	return nil, collections.ErrUnsupportedOperation
}

func (p *partitionList[T]) SubList(int, int) (List[List[T]], error) {
	return nil, collections.ErrUnsupportedOperation
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterator
// ─────────────────────────────────────────────────────────────────────────────

type partitionIterator[T any] struct {
	view *partitionList[T]
	pos  int
}

func (it *partitionIterator[T]) HasNext() bool {
	return it.pos < it.view.Size()
}

func (it *partitionIterator[T]) Next() List[T] {
	seg, err := it.view.Get(it.pos)
	if err != nil {
		panic(iterators.ErrNoSuchElement)
	}
	it.pos++
	return seg
}

func (it *partitionIterator[T]) Remove() error {
	return iterators.ErrRemoveUnsupported
}
