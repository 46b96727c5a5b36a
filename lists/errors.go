package lists

import "errors"

// Sentinel errors returned by List operations.
var (
	// ErrIndexOutOfRange is returned when an index is outside the list's (or
	// view's) current bounds.
	ErrIndexOutOfRange = errors.New("lists: index out of range")

	// ErrInvalidChunkSize is returned by Partition when size <= 0.
	ErrInvalidChunkSize = errors.New("lists: chunk size must be greater than 0")
)
