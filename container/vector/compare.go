package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements in
// the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Less reports whether a orders before b lexicographically.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessOrEqual reports whether b does not order before a.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether b orders before a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// LessFunc reports whether a orders before b lexicographically, using less
// to order elements. A proper prefix orders before the longer vector.
func LessFunc[T any](a, b *Vector[T], less func(T, T) bool) bool {
	as, bs := a.Slice(), b.Slice()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if less(as[i], bs[i]) {
			return true
		}

		if less(bs[i], as[i]) {
			return false
		}
	}

	return len(as) < len(bs)
}

// Compare returns -1, 0 or +1 as a orders before, equal to, or after b,
// following cmp.Compare for the elements. Unlike Less, a NaN orders before
// every other float.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}
