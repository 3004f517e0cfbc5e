package outcome

// FromPair converts the (value, error) pair returned by most Go
// functions into an [Outcome]. A non-nil err yields a [Failure].
func FromPair[T any](value T, err error) Outcome[T, error] {
	if err != nil {
		return Failed[T, error](err)
	}
	return Succeeded[T, error](value)
}

// Pair is the inverse of [FromPair]. A [Failure] without payload, or
// whose payload is a nil error, maps to [ErrEmptyPayload]. A [Success]
// without payload maps to the zero value of T and a nil error.
func Pair[T any](o Outcome[T, error]) (T, error) {
	var zero T
	if o.IsFailure() {
		if o.HasPayload() {
			if err := o.Unmask(); err != nil {
				return zero, err
			}
		}
		return zero, ErrEmptyPayload
	}
	return o.UnpackOr(zero), nil
}
