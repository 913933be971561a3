// Package option provides a generic optional value and the combinators for working with it.
//
// An Option is either Some, holding a value, or None. The zero value of Option[T] is None.
// Options are immutable values: copy them freely, compare them with == when T is comparable.
package option

import "fmt"

// Option represents a value of type T that may be absent.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func IsSome[T any](o Option[T]) bool {
	return o.some
}

// IsNone reports whether o is empty.
func IsNone[T any](o Option[T]) bool {
	return !o.some
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the held value and true, or the zero value and false for None.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.some
}

// Match calls onSome with the held value, or onNone when o is empty,
// and returns the result of whichever branch ran.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Equal reports whether a and b are the same variant holding equal values.
// It is equivalent to a == b.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

// EqualFunc is like Equal but compares held values with eq,
// for element types that are not comparable.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.some != b.some {
		return false
	}
	if !a.some {
		return true
	}
	return eq(a.value, b.value)
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
