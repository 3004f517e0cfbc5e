package envelope

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	t.Run("for an Absent envelope", func(t *testing.T) {
		got, err := json.Marshal(Absent[int]())
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]byte(`null`), got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("for a Present envelope", func(t *testing.T) {
		got, err := json.Marshal(Present(12345))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]byte(`12345`), got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("as a struct field", func(t *testing.T) {
		type config struct {
			UID Envelope[int]
		}
		got, err := json.Marshal(&config{UID: Present(12345)})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]byte(`{"UID":12345}`), got); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestUnmarshal(t *testing.T) {
	t.Run("with null JSON input", func(t *testing.T) {
		e, err := Unmarshal[int64]([]byte(" null\n"))
		if err != nil {
			t.Fatal(err)
		}
		if !e.IsNothing() {
			t.Fatal("expected nothing")
		}
	})

	t.Run("with valid JSON input", func(t *testing.T) {
		e, err := Unmarshal[int64]([]byte(`12345`))
		if err != nil {
			t.Fatal(err)
		}
		if !e.IsSomething() || e.Unpack() != 12345 {
			t.Fatal("unexpected envelope", e)
		}
	})

	t.Run("with valid JSON input for a pointer type", func(t *testing.T) {
		e, err := Unmarshal[*int64]([]byte(`12345`))
		if err != nil {
			t.Fatal(err)
		}
		if p := e.Unpack(); p == nil || *p != 12345 {
			t.Fatal("unexpected envelope", e)
		}
	})

	t.Run("with incompatible JSON input", func(t *testing.T) {
		e, err := Unmarshal[int64]([]byte(`[]`))
		if err == nil || !strings.HasPrefix(err.Error(), "envelope: cannot decode: ") {
			t.Fatal("unexpected err", err)
		}
		if e != nil {
			t.Fatal("expected nil envelope")
		}
	})

	t.Run("round trips a Present envelope", func(t *testing.T) {
		type config struct {
			Name string
			Age  int
		}
		input := Present(config{Name: "sbs", Age: 40})
		data, err := json.Marshal(input)
		if err != nil {
			t.Fatal(err)
		}
		output, err := Unmarshal[config](data)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(input.Unpack(), output.Unpack()); diff != "" {
			t.Fatal(diff)
		}
	})
}
