// Package outcome contains a value that is either a success or a failure.
//
// An [Outcome] is one of two variants: [Success] and [Failure]. Each
// variant may carry a payload (the success value or the failure value)
// or may carry nothing at all. "Succeeded without payload" is distinct
// from "succeeded with a nil or zero payload".
//
// The extraction methods fail loudly. Calling [Outcome.Unpack] on a
// failure or [Outcome.Unmask] on a success is a programming error and
// panics. Check [Outcome.IsSuccess] or [Outcome.IsFailure] first, or use
// [Outcome.UnpackOr] when a fallback is good enough.
package outcome

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var (
	// ErrWrongVariant is wrapped by the panic value of [Outcome.Unpack]
	// on a [Failure] and of [Outcome.Unmask] on a [Success].
	ErrWrongVariant = errors.New("outcome: wrong variant")

	// ErrEmptyPayload is wrapped by the panic value of an extraction
	// method invoked on the right variant when it carries no payload.
	ErrEmptyPayload = errors.New("outcome: empty payload")

	// ErrMissingTag is returned by [Unmarshal] when the input lacks
	// the "success" field.
	ErrMissingTag = errors.New("outcome: missing success field")
)

// Outcome is either a [Success] carrying an optional T or a [Failure]
// carrying an optional E. There are no other implementations.
type Outcome[T, E any] interface {
	// Unpack returns the success payload. It panics with an error wrapping
	// [ErrWrongVariant] on a [Failure] and with an error wrapping
	// [ErrEmptyPayload] on a [Success] without payload.
	Unpack() T

	// UnpackOr is like Unpack but returns fallback instead of panicking.
	UnpackOr(fallback T) T

	// Unmask returns the failure payload. It panics with an error wrapping
	// [ErrWrongVariant] on a [Success] and with an error wrapping
	// [ErrEmptyPayload] on a [Failure] without payload.
	Unmask() E

	// IsSuccess returns true for a [Success] and false for a [Failure].
	IsSuccess() bool

	// IsFailure returns true for a [Failure] and false for a [Success].
	IsFailure() bool

	// HasPayload returns whether the variant carries a payload.
	HasPayload() bool

	fmt.Stringer
	json.Marshaler

	isOutcome()
}
