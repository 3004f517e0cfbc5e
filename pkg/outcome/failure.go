package outcome

import (
	"fmt"

	"github.com/ooni/wrappers/internal/optional"
	"github.com/ooni/wrappers/internal/runtimex"
)

// Failure is the failed variant of [Outcome].
type Failure[T, E any] struct {
	value optional.Value[E]
}

var _ Outcome[int, error] = Failure[int, error]{}

// Failed returns a failed [Outcome] carrying err.
func Failed[T, E any](err E) Outcome[T, E] {
	return Failure[T, E]{optional.Some(err)}
}

// FailedEmpty returns a failed [Outcome] without payload.
func FailedEmpty[T, E any]() Outcome[T, E] {
	return Failure[T, E]{optional.None[E]()}
}

// Unpack implements Outcome. It always panics.
func (f Failure[T, E]) Unpack() T {
	runtimex.PanicOnError(ErrWrongVariant, "called Unpack on a Failed outcome")
	panic("unreachable")
}

// UnpackOr implements Outcome. It always returns fallback.
func (f Failure[T, E]) UnpackOr(fallback T) T {
	return fallback
}

// Unmask implements Outcome.
func (f Failure[T, E]) Unmask() E {
	if f.value.IsNone() {
		runtimex.PanicOnError(ErrEmptyPayload, "called Unmask on a Failed outcome without payload")
	}
	return f.value.Unwrap()
}

// IsSuccess implements Outcome.
func (f Failure[T, E]) IsSuccess() bool {
	return false
}

// IsFailure implements Outcome.
func (f Failure[T, E]) IsFailure() bool {
	return true
}

// HasPayload implements Outcome.
func (f Failure[T, E]) HasPayload() bool {
	return f.value.IsSome()
}

// String implements fmt.Stringer.
func (f Failure[T, E]) String() string {
	if f.value.IsNone() {
		return "Failed()"
	}
	return fmt.Sprintf("Failed(%v)", f.value.Unwrap())
}

// MarshalJSON implements json.Marshaler.
func (f Failure[T, E]) MarshalJSON() ([]byte, error) {
	return marshalVariant(false, f.value)
}

func (Failure[T, E]) isOutcome() {}
