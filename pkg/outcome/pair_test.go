package outcome

import (
	"errors"
	"io"
	"strconv"
	"testing"
)

func TestFromPair(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		o := FromPair(strconv.Atoi("42"))
		if !o.IsSuccess() || o.Unpack() != 42 {
			t.Fatal("unexpected outcome", o)
		}
	})

	t.Run("on failure", func(t *testing.T) {
		o := FromPair(strconv.Atoi("antani"))
		if !o.IsFailure() {
			t.Fatal("expected failure")
		}
		if !errors.Is(o.Unmask(), strconv.ErrSyntax) {
			t.Fatal("unexpected error", o.Unmask())
		}
	})
}

func TestPair(t *testing.T) {
	t.Run("for a Succeeded outcome", func(t *testing.T) {
		value, err := Pair(Succeeded[int, error](42))
		if err != nil || value != 42 {
			t.Fatal("unexpected result", value, err)
		}
	})

	t.Run("for a Succeeded outcome without payload", func(t *testing.T) {
		value, err := Pair(SucceededEmpty[int, error]())
		if err != nil || value != 0 {
			t.Fatal("unexpected result", value, err)
		}
	})

	t.Run("for a Failed outcome", func(t *testing.T) {
		value, err := Pair(Failed[int](io.EOF))
		if !errors.Is(err, io.EOF) || value != 0 {
			t.Fatal("unexpected result", value, err)
		}
	})

	t.Run("for a Failed outcome without payload", func(t *testing.T) {
		_, err := Pair(FailedEmpty[int, error]())
		if !errors.Is(err, ErrEmptyPayload) {
			t.Fatal("unexpected err", err)
		}
	})

	t.Run("for a Failed outcome with a nil error", func(t *testing.T) {
		_, err := Pair(Failed[int, error](nil))
		if !errors.Is(err, ErrEmptyPayload) {
			t.Fatal("unexpected err", err)
		}
	})
}
