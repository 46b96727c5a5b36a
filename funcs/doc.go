// Package funcs defines the first-class function values consumed by the view
// and iterator packages: predicates, element transforms, and the equality and
// hashing callbacks that containers cannot express natively over generic
// element types.
//
// # Capability types
//
// All four types are plain function values with a single entry point. They are
// expected to be pure (no hidden state mutation) and safely invokable any
// number of times — live views re-evaluate them on every observation:
//
//	even := funcs.Predicate[int](func(n int) bool { return n%2 == 0 })
//	length := funcs.Transform[string, int](func(s string) int { return len(s) })
//
// # Combinators
//
// The view engine composes predicates internally (filtering a filtered view
// flattens into a single conjunction), so the basic boolean combinators live
// here:
//
//	both := funcs.And(even, positive)
//	neither := funcs.Not(funcs.Or(even, positive))
//	member := funcs.In(funcs.Eq[int](), 1, 2, 3)
//
// # Equality
//
// Go generics over `any` cannot use ==, so every containment-style operation
// takes an Equal[T]. For comparable element types, Eq returns the native
// comparison:
//
//	list.Contains(42, funcs.Eq[int]())
//
// A predicate passed to a filtered view must be consistent with the Equal used
// for containment on the same container; that is a caller obligation, not
// something this package can enforce.
package funcs
