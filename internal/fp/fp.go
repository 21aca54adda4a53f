// Package fp collects a handful of tiny functional-programming helpers used
// throughout the engine: composing pure functions and carrying an ordered
// pair of values without inventing a one-off struct at every call site.
package fp

// Const returns a function that always produces a, ignoring its argument.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g: apply g first, then f to its result.
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Pair is a plain ordered pair, for places where a tuple return is clearer
// than a one-off named struct.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P constructs a Pair.
func P[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Left: a, Right: b}
}
