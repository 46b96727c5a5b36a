// Package collections provides the generic Container interface, live filtered
// and transformed views over any Container, and the container-agnostic
// algorithms (bulk containment, cycle-safe rendering, capacity sizing, safe
// delegation) shared by every container implementation in this module.
//
// # Live views
//
// Filter and Transform return views, not copies. A view stores a reference to
// the source container plus a predicate or transform; every observation walks
// the live source at call time, so mutations on either side are immediately
// visible on the other:
//
//	evens := collections.Filter[int](list, func(n int) bool { return n%2 == 0 })
//	evens.Add(6)        // appends 6 to list
//	evens.Add(3)        // ErrPredicateMismatch; list untouched
//	evens.Size()        // recounted against list on every call, O(n)
//
// Because views hold no storage of their own, size and emptiness on a
// filtered view require a full scan. When a live view is not needed, drain it
// once with ToSlice and use the copy.
//
// # Equality
//
// Containers hold elements of any type, so every containment-style operation
// takes a [funcs.Equal] callback in place of ==. The predicate given to
// Filter must be consistent with the Equal used for containment on the same
// container; this is a caller obligation.
//
// # Concurrency
//
// Views are not safe for concurrent use, even when the source container is.
// Nothing here locks, blocks, or retries; every operation is a synchronous
// computation bounded by the size of the source.
package collections
