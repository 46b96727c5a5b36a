package collections

import "errors"

// Sentinel errors returned by Container and view operations.
var (
	// ErrPredicateMismatch is returned by Add and AddAll on a filtered view
	// when a candidate element does not satisfy the view's predicate. The
	// source container is left unmodified.
	ErrPredicateMismatch = errors.New("collections: element rejected by view predicate")

	// ErrUnsupportedOperation is returned by structural mutations that a view
	// kind forbids, such as Add on a transformed view.
	ErrUnsupportedOperation = errors.New("collections: operation not supported by this view")

	// ErrNegativeCapacity is returned by Capacity when the expected element
	// count is negative.
	ErrNegativeCapacity = errors.New("collections: negative expected size")
)
