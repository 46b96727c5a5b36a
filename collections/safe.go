package collections

import (
	"runtime"
	"strings"

	"github.com/hasbyte1/go-collection-views/funcs"
)

// SafeContains delegates to c.Contains, converting type-incompatibility and
// nil-incompatibility panics raised inside the delegated call (a failed type
// assertion in eq, a nil dereference, comparing an uncomparable dynamic type)
// into a plain false. Any other panic propagates unchanged.
//
// This is the single sanctioned suppression point in the module. It exists so
// that views over heterogeneous containers can answer "is this foreign value
// here?" with "no" instead of failing:
//
//	ints := lists.New[any](1, 2, 3)
//	collections.SafeContains[any](ints, "nope", intEq) // false, no panic
func SafeContains[T any](c Container[T], value T, eq funcs.Equal[T]) (contained bool) {
	if c == nil {
		panic("collections: nil container")
	}
	defer func() {
		if r := recover(); r != nil {
			if !incompatibilityPanic(r) {
				panic(r)
			}
			contained = false
		}
	}()
	return c.Contains(value, eq)
}

// SafeRemove delegates to c.Remove under the same suppression rule as
// SafeContains: an incompatibility panic inside the delegated call yields
// (false, nil). Errors returned by the container, and every other panic kind,
// propagate unchanged.
func SafeRemove[T any](c Container[T], value T, eq funcs.Equal[T]) (removed bool, err error) {
	if c == nil {
		panic("collections: nil container")
	}
	defer func() {
		if r := recover(); r != nil {
			if !incompatibilityPanic(r) {
				panic(r)
			}
			removed, err = false, nil
		}
	}()
	return c.Remove(value, eq)
}

// incompatibilityPanic reports whether r is the runtime's reaction to an
// operand whose type or nilness is incompatible with the container's element
// contract. Everything else is somebody's bug and must not be swallowed.
func incompatibilityPanic(r any) bool {
	if _, ok := r.(*runtime.TypeAssertionError); ok {
		return true
	}
	re, ok := r.(runtime.Error)
	if !ok {
		return false
	}
	msg := re.Error()
	return strings.Contains(msg, "nil pointer dereference") ||
		strings.Contains(msg, "invalid memory address") ||
		strings.Contains(msg, "comparing uncomparable type") ||
		strings.Contains(msg, "hash of unhashable type")
}
