package outcome

import (
	"fmt"

	"github.com/ooni/wrappers/internal/optional"
	"github.com/ooni/wrappers/internal/runtimex"
)

// Success is the successful variant of [Outcome].
type Success[T, E any] struct {
	value optional.Value[T]
}

var _ Outcome[int, error] = Success[int, error]{}

// Succeeded returns a successful [Outcome] carrying value.
func Succeeded[T, E any](value T) Outcome[T, E] {
	return Success[T, E]{optional.Some(value)}
}

// SucceededEmpty returns a successful [Outcome] without payload.
func SucceededEmpty[T, E any]() Outcome[T, E] {
	return Success[T, E]{optional.None[T]()}
}

// Unpack implements Outcome.
func (s Success[T, E]) Unpack() T {
	if s.value.IsNone() {
		runtimex.PanicOnError(ErrEmptyPayload, "called Unpack on a Succeeded outcome without payload")
	}
	return s.value.Unwrap()
}

// UnpackOr implements Outcome. A missing payload yields fallback.
func (s Success[T, E]) UnpackOr(fallback T) T {
	return s.value.UnwrapOr(fallback)
}

// Unmask implements Outcome. It always panics.
func (s Success[T, E]) Unmask() E {
	runtimex.PanicOnError(ErrWrongVariant, "called Unmask on a Succeeded outcome")
	panic("unreachable")
}

// IsSuccess implements Outcome.
func (s Success[T, E]) IsSuccess() bool {
	return true
}

// IsFailure implements Outcome.
func (s Success[T, E]) IsFailure() bool {
	return false
}

// HasPayload implements Outcome.
func (s Success[T, E]) HasPayload() bool {
	return s.value.IsSome()
}

// String implements fmt.Stringer.
func (s Success[T, E]) String() string {
	if s.value.IsNone() {
		return "Succeeded()"
	}
	return fmt.Sprintf("Succeeded(%v)", s.value.Unwrap())
}

// MarshalJSON implements json.Marshaler.
func (s Success[T, E]) MarshalJSON() ([]byte, error) {
	return marshalVariant(true, s.value)
}

func (Success[T, E]) isOutcome() {}
