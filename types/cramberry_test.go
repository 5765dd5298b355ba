package types_test

import (
	"testing"

	"github.com/blockberries/chronoberry/types"

	"github.com/blockberries/cramberry/pkg/cramberry"
)

// roundTrip marshals v, unmarshals into a new T, and returns it.
func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	data, err := cramberry.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out T
	if err := cramberry.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	return out
}

func TestInstant_RoundTrip(t *testing.T) {
	// Bit-for-bit reproduction across the interesting instants:
	// epoch, nonzero fraction, and both range boundaries.
	instants := []types.Instant{
		{},
		{Seconds: 1718454645, Nanos: 123456789},
		types.MinInstant,
		types.MaxInstant,
	}
	for _, i := range instants {
		got := roundTrip(t, i)
		if got != i {
			t.Fatalf("Instant round-trip failed: got %+v, want %+v", got, i)
		}
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	durations := []types.Duration{
		{},
		{Seconds: 86400},
		{Seconds: -1, Nanos: -500_000_000},
		{Seconds: 315569519999, Nanos: 999999999}, // full-range delta
	}
	for _, d := range durations {
		got := roundTrip(t, d)
		if got != d {
			t.Fatalf("Duration round-trip failed: got %+v, want %+v", got, d)
		}
	}
}

func TestZoneOffset_RoundTrip(t *testing.T) {
	v := types.ZoneOffset{Seconds: -5 * 3600, Abbrev: "EST"}
	got := roundTrip(t, v)
	if got != v {
		t.Fatalf("ZoneOffset round-trip failed: got %+v, want %+v", got, v)
	}
}

func TestZoned_RoundTrip(t *testing.T) {
	i := types.NewInstant(1718454645, 123456789)
	v := types.ZonedAt(i, types.ZoneOffset{Seconds: 2 * 3600, Abbrev: "CEST"})
	got := roundTrip(t, v)
	if got != v {
		t.Fatalf("Zoned round-trip failed: got %+v, want %+v", got, v)
	}
	if back := got.Instant(); back != i {
		t.Fatalf("Zoned.Instant after round-trip: got %+v, want %+v", back, i)
	}
}

// TestDeterminism verifies that the same instant always produces the
// same bytes (cramberry's core guarantee).
func TestDeterminism(t *testing.T) {
	v := types.Instant{Seconds: 1000, Nanos: 500}
	data1, err := cramberry.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	data2, err := cramberry.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if len(data1) != len(data2) {
		t.Fatalf("non-deterministic: len %d vs %d", len(data1), len(data2))
	}
	for i := range data1 {
		if data1[i] != data2[i] {
			t.Fatalf("non-deterministic at byte %d: 0x%02x vs 0x%02x", i, data1[i], data2[i])
		}
	}
}
