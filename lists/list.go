package lists

import (
	"github.com/hasbyte1/go-collection-views/collections"
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// List is a positional container. It extends the generic Container surface
// with indexed access; views that forbid an operation return
// collections.ErrUnsupportedOperation from it.
type List[T any] interface {
	collections.Container[T]

	// Get returns the element at index, or ErrIndexOutOfRange.
	Get(index int) (T, error)

	// Set replaces the element at index, or returns ErrIndexOutOfRange.
	Set(index int, value T) error

	// Insert places value at index, shifting later elements right.
	// index may equal Size() to append.
	Insert(index int, value T) error

	// RemoveAt removes and returns the element at index.
	RemoveAt(index int) (T, error)

	// IndexOf returns the index of the first element equal to value under
	// eq, or -1.
	IndexOf(value T, eq funcs.Equal[T]) int

	// SubList returns a live view of the half-open range [from, to).
	// The view borrows the receiver: writes through the view modify the
	// receiver, and the view's contents track later mutations of the
	// overlapping range.
	SubList(from, to int) (List[T], error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence algorithms
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports order-sensitive structural equality: a and b are equal when
// they have the same length and pairwise-equal elements under eq, in
// traversal order. A list is always equal to itself.
func Equal[T any](a, b List[T], eq funcs.Equal[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Size() == b.Size() &&
		iterators.ElementsEqual(a.Iterator(), b.Iterator(), eq)
}

// HashCode computes an order-sensitive hash of l: seed 1, then
// h = 31*h + hash(e) for each element in order, on uint32 wraparound
// arithmetic so the result is reproducible anywhere the same modulus holds.
// For element types with an absent value, hash should map it to 0.
func HashCode[T any](l List[T], hash funcs.Hash[T]) uint32 {
	h := uint32(1)
	it := l.Iterator()
	for it.HasNext() {
		h = 31*h + hash(it.Next())
	}
	return h
}

// IndexOf scans l for the first element equal to value under eq. It is the
// generic implementation views delegate to.
func IndexOf[T any](l List[T], value T, eq funcs.Equal[T]) int {
	i := 0
	it := l.Iterator()
	for it.HasNext() {
		if eq(it.Next(), value) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf scans l for the last element equal to value under eq.
func LastIndexOf[T any](l List[T], value T, eq funcs.Equal[T]) int {
	last := -1
	i := 0
	it := l.Iterator()
	for it.HasNext() {
		if eq(it.Next(), value) {
			last = i
		}
		i++
	}
	return last
}
