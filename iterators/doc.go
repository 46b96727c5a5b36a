// Package iterators defines the traversal primitive shared by every container
// in this module, plus the lazy filtering and mapping adapters that the live
// views are built on.
//
// # The Iterator interface
//
// Iterator follows the explicit cursor style (HasNext/Next) rather than
// iter.Seq, because views need in-place element removal during traversal —
// something a push-style sequence cannot express:
//
//	it := list.Iterator()
//	for it.HasNext() {
//	    fmt.Println(it.Next())
//	}
//
// Remove is an optional operation: iterators that cannot remove (filtering
// adapters, read-only views) return [ErrRemoveUnsupported].
//
// # Adapters
//
// Filter and Map wrap an existing iterator lazily; elements are pulled from
// the source one at a time, on demand:
//
//	evens := iterators.Filter(list.Iterator(), func(n int) bool { return n%2 == 0 })
//	lens := iterators.Map(words.Iterator(), func(s string) int { return len(s) })
//
// Adapters are single-pass and non-restartable. If the source container is
// structurally modified behind an adapter's back, the adapter neither detects
// nor hides it — whatever the source iterator does in that case passes through
// unchanged.
package iterators
