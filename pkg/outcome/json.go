package outcome

import (
	"github.com/goccy/go-json"
	"github.com/ooni/wrappers/internal/optional"
	"github.com/pkg/errors"
)

// wireOutcome is the JSON representation of an [Outcome]. A payload
// key is omitted when the variant carries no payload. A payload that
// implements error is encoded as the string returned by its Error method.
type wireOutcome struct {
	Success *bool           `json:"success"`
	Value   json.RawMessage `json:"value,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

func marshalVariant[P any](success bool, payload optional.Value[P]) ([]byte, error) {
	wire := wireOutcome{Success: &success}
	if payload.IsSome() {
		data, err := marshalPayload(payload.Unwrap())
		if err != nil {
			return nil, err
		}
		if success {
			wire.Value = data
		} else {
			wire.Error = data
		}
	}
	return json.Marshal(wire)
}

func marshalPayload(v any) ([]byte, error) {
	if err, ok := v.(error); ok {
		return json.Marshal(err.Error())
	}
	return json.Marshal(v)
}

// unmarshalPayload decodes data into v. When v points to an error, the
// payload must be a string, which becomes an error with the same message,
// or null, which leaves a nil error.
func unmarshalPayload[P any](data []byte, v *P) error {
	ep, ok := any(v).(*error)
	if !ok {
		return json.Unmarshal(data, v)
	}
	var message *string
	if err := json.Unmarshal(data, &message); err != nil {
		return err
	}
	if message != nil {
		*ep = errors.New(*message)
	}
	return nil
}

// Unmarshal decodes an [Outcome] previously encoded with json.Marshal.
//
// Error payloads travel as strings. Decoding them requires E to be string
// or error; in the latter case the original error is not recovered, only
// its message is.
func Unmarshal[T, E any](data []byte) (Outcome[T, E], error) {
	var wire wireOutcome
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(err, "outcome: cannot decode")
	}
	if wire.Success == nil {
		return nil, ErrMissingTag
	}
	if *wire.Success {
		if len(wire.Value) <= 0 {
			return SucceededEmpty[T, E](), nil
		}
		var value T
		if err := unmarshalPayload(wire.Value, &value); err != nil {
			return nil, errors.Wrap(err, "outcome: cannot decode value")
		}
		return Succeeded[T, E](value), nil
	}
	if len(wire.Error) <= 0 {
		return FailedEmpty[T, E](), nil
	}
	var failure E
	if err := unmarshalPayload(wire.Error, &failure); err != nil {
		return nil, errors.Wrap(err, "outcome: cannot decode error")
	}
	return Failed[T, E](failure), nil
}
