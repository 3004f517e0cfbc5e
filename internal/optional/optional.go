// Package optional contains safer code to handle optional values.
//
// Unlike a nil pointer, an empty [Value] is distinct from every value
// of the wrapped type, including nil pointers and zero values.
package optional

import "github.com/ooni/wrappers/internal/runtimex"

// Value is an optional value. The zero value is empty.
type Value[T any] struct {
	value   T
	present bool
}

// None constructs an empty value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some constructs a non-empty value. The value is non-empty even when
// the argument is nil or the zero value of T.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, present: true}
}

// IsNone returns whether this [Value] is empty.
func (v Value[T]) IsNone() bool {
	return !v.present
}

// IsSome returns whether this [Value] holds a value.
func (v Value[T]) IsSome() bool {
	return !v.IsNone()
}

// Unwrap returns the underlying value or panics. In case of
// panic, the value passed to panic is an error.
func (v Value[T]) Unwrap() T {
	runtimex.Assert(!v.IsNone(), "is none")
	return v.value
}

// UnwrapOr returns the fallback if the [Value] is empty.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.IsNone() {
		return fallback
	}
	return v.Unwrap()
}
