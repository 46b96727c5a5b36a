package collections

import (
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

// Container is the capability set shared by every container and view in this
// module. Implementations that cannot honor a structural mutation (read-only
// views, one-directional transforms) return ErrUnsupportedOperation rather
// than omitting the method, so that views remain substitutable for their
// sources.
//
// Containment-style operations take a [funcs.Equal] because element types are
// unconstrained; see the package documentation.
type Container[T any] interface {
	// Add appends value. Filtered views reject predicate-failing values with
	// ErrPredicateMismatch; read-only and transformed views return
	// ErrUnsupportedOperation.
	Add(value T) error

	// AddAll appends every value, or none: implementations validate the whole
	// batch before mutating, and forward it to the source in one bulk call.
	AddAll(values []T) error

	// Clear removes every element visible through this container.
	Clear() error

	// Contains reports whether value is present under eq.
	Contains(value T, eq funcs.Equal[T]) bool

	// ContainsAll reports whether every given value is present under eq.
	ContainsAll(values []T, eq funcs.Equal[T]) bool

	// IsEmpty reports whether no element is visible. On filtered views this
	// scans the source.
	IsEmpty() bool

	// Iterator returns a single-pass cursor over the visible elements.
	Iterator() iterators.Iterator[T]

	// Remove removes a single element equal to value under eq, reporting
	// whether one was removed.
	Remove(value T, eq funcs.Equal[T]) (bool, error)

	// RemoveAll removes every visible element equal, under eq, to one of the
	// given values, reporting whether anything changed.
	RemoveAll(values []T, eq funcs.Equal[T]) (bool, error)

	// RetainAll removes every visible element NOT equal, under eq, to one of
	// the given values, reporting whether anything changed.
	RetainAll(values []T, eq funcs.Equal[T]) (bool, error)

	// Size returns the number of visible elements. On filtered views this is
	// recounted by scanning the source on every call.
	Size() int

	// ToSlice snapshots the visible elements into a fresh slice.
	ToSlice() []T
}
