// Package envelope contains a value that is either present or absent.
//
// An [Envelope] is either [Something], which always holds a value, or
// [Nothing], which holds none. Calling [Envelope.Unpack] on [Nothing]
// is a programming error and panics; check [Envelope.IsSomething]
// first or use [Envelope.UnpackOr].
package envelope

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/ooni/wrappers/internal/runtimex"
	"github.com/pkg/errors"
)

// ErrEmptyAbsent is wrapped by the panic value of [Envelope.Unpack]
// on [Nothing].
var ErrEmptyAbsent = errors.New("envelope: absent value")

// Envelope is either [Something] or [Nothing]. There are no other
// implementations.
type Envelope[T any] interface {
	// Unpack returns the value. It panics with an error wrapping
	// [ErrEmptyAbsent] on [Nothing].
	Unpack() T

	// UnpackOr is like Unpack but returns fallback instead of panicking.
	UnpackOr(fallback T) T

	// IsSomething returns true for [Something] and false for [Nothing].
	IsSomething() bool

	// IsNothing returns true for [Nothing] and false for [Something].
	IsNothing() bool

	fmt.Stringer
	json.Marshaler

	isEnvelope()
}

// Something is the present variant of [Envelope].
type Something[T any] struct {
	value T
}

var _ Envelope[int] = Something[int]{}

// Present returns an [Envelope] holding value. The value may be nil
// or the zero value of T; it is present nonetheless.
func Present[T any](value T) Envelope[T] {
	return Something[T]{value}
}

// Unpack implements Envelope.
func (s Something[T]) Unpack() T {
	return s.value
}

// UnpackOr implements Envelope.
func (s Something[T]) UnpackOr(fallback T) T {
	return s.value
}

// IsSomething implements Envelope.
func (s Something[T]) IsSomething() bool {
	return true
}

// IsNothing implements Envelope.
func (s Something[T]) IsNothing() bool {
	return false
}

// String implements fmt.Stringer.
func (s Something[T]) String() string {
	return fmt.Sprintf("Present(%v)", s.value)
}

// MarshalJSON encodes the held value.
func (s Something[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

func (Something[T]) isEnvelope() {}

// Nothing is the absent variant of [Envelope].
type Nothing[T any] struct{}

var _ Envelope[int] = Nothing[int]{}

// Absent returns an empty [Envelope].
func Absent[T any]() Envelope[T] {
	return Nothing[T]{}
}

// Unpack implements Envelope.
func (Nothing[T]) Unpack() T {
	runtimex.PanicOnError(ErrEmptyAbsent, "called Unpack on an Absent envelope")
	panic("unreachable")
}

// UnpackOr implements Envelope.
func (Nothing[T]) UnpackOr(fallback T) T {
	return fallback
}

// IsSomething implements Envelope.
func (Nothing[T]) IsSomething() bool {
	return false
}

// IsNothing implements Envelope.
func (Nothing[T]) IsNothing() bool {
	return true
}

// String implements fmt.Stringer.
func (Nothing[T]) String() string {
	return "Absent()"
}

// MarshalJSON encodes Nothing as null.
func (Nothing[T]) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (Nothing[T]) isEnvelope() {}

// FromPointer returns [Absent] for a nil pointer and [Present] of the
// pointed-to value otherwise.
func FromPointer[T any](p *T) Envelope[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromLookup adapts the comma-ok idiom of map lookups and type assertions.
func FromLookup[T any](value T, ok bool) Envelope[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(value)
}

// Unmarshal decodes an [Envelope] from JSON. A null input yields [Absent].
// Hence, [Present] of a nil pointer does not survive a round trip.
func Unmarshal[T any](data []byte) (Envelope[T], error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return Absent[T](), nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.Wrap(err, "envelope: cannot decode")
	}
	return Present(value), nil
}
