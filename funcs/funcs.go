package funcs

// Predicate reports whether a single element satisfies some condition.
type Predicate[T any] func(T) bool

// Transform maps an element of type F to an element of type T.
// Transforms are one-directional: no inverse is ever assumed.
type Transform[F, T any] func(F) T

// Equal reports whether two elements are semantically equal.
type Equal[T any] func(a, b T) bool

// Hash returns a 32-bit hash of an element. Implementations should return
// equal hashes for elements that compare equal under the paired Equal.
type Hash[T any] func(T) uint32

// ─────────────────────────────────────────────────────────────────────────────
// Predicate combinators
// ─────────────────────────────────────────────────────────────────────────────

// And returns a predicate that is true when every given predicate is true.
// With no arguments it is always true.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that is true when at least one given predicate is
// true. With no arguments it is always false.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not returns the negation of pred.
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(v T) bool { return !pred(v) }
}

// In returns a predicate that is true when the element equals, under eq, any
// of the given values.
func In[T any](eq Equal[T], values ...T) Predicate[T] {
	return func(v T) bool {
		for _, candidate := range values {
			if eq(v, candidate) {
				return true
			}
		}
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality helpers
// ─────────────────────────────────────────────────────────────────────────────

// Eq returns the native == comparison as an Equal[T].
func Eq[T comparable]() Equal[T] {
	return func(a, b T) bool { return a == b }
}
