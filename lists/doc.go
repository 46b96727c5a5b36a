// Package lists provides the positional List interface, a slice-backed
// ArrayList implementation, and the live list views: sub-range slices,
// element-transforming lists, and fixed-size partitions.
//
// # Lists
//
// List extends [collections.Container] with indexed access. ArrayList is the
// canonical mutable implementation:
//
//	l := lists.New(1, 2, 3, 4, 5)
//	l.Get(2)          // 3
//	l.RemoveAt(0)     // 1; list is now [2 3 4 5]
//
// # Views
//
// Transform and Partition return live views over a caller-owned list; nothing
// is copied, and later mutation of the source changes what the views observe:
//
//	lens := lists.Transform[string, int](words, func(s string) int { return len(s) })
//	chunks, _ := lists.Partition(l, 3) // [[2 3 4] [5]], recomputed per access
//
// Removing index i through a transformed list removes index i from the source
// and returns the transformed value of the removed element. Partitions are
// read-only on the outside; the inner segments are live sub-range views of
// the source, so writing through a segment writes the source.
//
// # Sequence algorithms
//
// Equal and HashCode implement order-sensitive structural equality and
// hashing for any List, usable by sibling implementations:
//
//	lists.Equal(a, b, funcs.Eq[int]())   // same length, pairwise equal
//	lists.HashCode(l, hashInt)           // seed 1, h = 31*h + hash(e), uint32
package lists
