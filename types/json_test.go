package types_test

import (
	"encoding/json"
	"testing"

	"github.com/blockberries/chronoberry/types"
)

type stampedRecord struct {
	Name string        `json:"name"`
	At   types.Instant `json:"at"`
}

func TestInstant_MarshalJSON(t *testing.T) {
	// The wire form is always the canonical UTC rendering, however
	// the instant was obtained.
	rec := stampedRecord{Name: "deploy", At: types.FromUnix(1522584000)}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"name":"deploy","at":"2018-04-01T12:00:00Z"}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestInstant_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want types.Instant
	}{
		{`{"at":"2018-04-01T12:00:00Z"}`, types.FromUnix(1522584000)},
		{`{"at":"2018-04-01T08:00:00.000-04:00"}`, types.FromUnix(1522584000)},
		{`{"at":"1970-01-01T00:00:00.000000001Z"}`, types.Instant{Nanos: 1}},
	}
	for _, c := range cases {
		var rec stampedRecord
		if err := json.Unmarshal([]byte(c.in), &rec); err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", c.in, err)
			continue
		}
		if rec.At != c.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", c.in, rec.At, c.want)
		}
	}
}

func TestInstant_UnmarshalJSON_Null(t *testing.T) {
	rec := stampedRecord{At: types.FromUnix(42)}
	if err := json.Unmarshal([]byte(`{"at":null}`), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if rec.At != types.FromUnix(42) {
		t.Fatalf("null should leave the receiver untouched, got %+v", rec.At)
	}
}

func TestInstant_UnmarshalJSON_Errors(t *testing.T) {
	var rec stampedRecord

	// The ParseError taxonomy survives the json wrapping.
	err := json.Unmarshal([]byte(`{"at":"not-a-date"}`), &rec)
	perr, ok := types.IsParseError(err)
	if !ok {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if perr.Kind != types.ParseMalformed {
		t.Fatalf("kind = %v, want malformed", perr.Kind)
	}

	err = json.Unmarshal([]byte(`{"at":"2021-13-01T00:00:00Z"}`), &rec)
	perr, ok = types.IsParseError(err)
	if !ok {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if perr.Kind != types.ParseOutOfRange {
		t.Fatalf("kind = %v, want out of range", perr.Kind)
	}
}

// Serialize then deserialize reproduces the original instant exactly —
// the adapter's entire correctness contract.
func TestInstant_JSONRoundTrip(t *testing.T) {
	instants := []types.Instant{
		{},
		{Seconds: 1718454645, Nanos: 123456789},
		types.MinInstant,
		types.MaxInstant,
	}
	for _, i := range instants {
		data, err := json.Marshal(i)
		if err != nil {
			t.Errorf("Marshal(%+v) failed: %v", i, err)
			continue
		}
		var got types.Instant
		if err := json.Unmarshal(data, &got); err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", data, err)
			continue
		}
		if got != i {
			t.Errorf("JSON round-trip via %s: got %+v, want %+v", data, got, i)
		}
	}
}

func TestInstant_TextMarshaler(t *testing.T) {
	i := types.NewInstant(1718454645, 123456789)
	text, err := i.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "2024-06-15T12:30:45.123456789Z" {
		t.Fatalf("unexpected text form: %s", text)
	}
	var got types.Instant
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if got != i {
		t.Fatalf("text round-trip: got %+v, want %+v", got, i)
	}
	if i.String() != string(text) {
		t.Fatalf("String should match the text form, got %q", i.String())
	}
}
