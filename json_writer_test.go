package wallet

import (
	"encoding/json"
	"math"
	"testing"
)

func TestObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w objectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps key order", func(t *testing.T) {
		var w objectWriter
		w.Append("z", 1).Append("a", "hello").Append("m", []int{1, 2})
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"z":1,"a":"hello","m":[1,2]}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("raw values", func(t *testing.T) {
		var w objectWriter
		w.AppendRaw("a", json.RawMessage(`{"b":2}`))
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"a":{"b":2}}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		var w objectWriter
		w.Append("bad", math.NaN()).Append("ok", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error for a NaN value")
		}
	})
}
