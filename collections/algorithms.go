package collections

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-collection-views/funcs"
)

// This file contains the container-agnostic algorithm helpers shared with
// sibling container implementations. They operate purely through the
// Container interface.

// ContainsAll reports whether c contains, under eq, every one of the given
// values. Each value is looked up through c's own Contains.
func ContainsAll[T any](c Container[T], values []T, eq funcs.Equal[T]) bool {
	for _, v := range values {
		if !c.Contains(v, eq) {
			return false
		}
	}
	return true
}

// Format renders c as a bracketed, comma-separated listing of its elements:
// "[a, b, c]". An element that is reference-identical to c itself is rendered
// as "(this Container)" instead of being recursed into, so a self-containing
// container still terminates:
//
//	l := lists.New[any](1, 2)
//	l.Add(l)
//	collections.Format[any](l) // "[1, 2, (this Container)]"
//
// Identity is reference comparison, never value equality: a distinct but
// equal container is rendered normally.
func Format[T any](c Container[T]) string {
	var sb strings.Builder
	if n := c.Size(); n > 0 && n < 1<<27 {
		sb.Grow(n * 8)
	}
	sb.WriteByte('[')
	first := true
	it := c.Iterator()
	for it.HasNext() {
		v := it.Next()
		if !first {
			sb.WriteString(", ")
		}
		first = false
		if sameRef(v, c) {
			sb.WriteString("(this Container)")
		} else {
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// sameRef reports whether elem and container are the same referenced object.
// Only pointer-shaped values can be identical; == is never used because the
// element's dynamic type may not be comparable.
func sameRef(elem, container any) bool {
	ve := reflect.ValueOf(elem)
	vc := reflect.ValueOf(container)
	if !ve.IsValid() || !vc.IsValid() {
		return false
	}
	if ve.Kind() != reflect.Pointer || vc.Kind() != reflect.Pointer {
		return false
	}
	return ve.Pointer() == vc.Pointer()
}

// Capacity returns a buffer-size hint for bulk copy construction with the
// given expected element count: min(5 + expected + expected/10, math.MaxInt).
// The slight oversizing absorbs a few Adds beyond the expected count without
// reallocating; the result saturates instead of overflowing. A negative
// expected count yields ErrNegativeCapacity.
func Capacity(expected int) (int, error) {
	if expected < 0 {
		return 0, ErrNegativeCapacity
	}
	c := expected + expected/10
	if c < expected || c > math.MaxInt-5 {
		return math.MaxInt, nil
	}
	return c + 5, nil
}
