package eventlog_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/blockberries/chronoberry/example/eventlog"
	chronotest "github.com/blockberries/chronoberry/testing"
	"github.com/blockberries/chronoberry/types"
)

func TestAppend_StampsEntries(t *testing.T) {
	src := &chronotest.MockSource{FixedInstant: types.FromUnix(1718454645)}
	log := eventlog.New(src)
	ctx := context.Background()

	first, err := log.Append(ctx, "service started")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if first.Seq != 1 || first.At != types.FromUnix(1718454645) {
		t.Fatalf("unexpected entry: %+v", first)
	}

	src.Advance(types.NewDuration(60, 0))
	second, err := log.Append(ctx, "first request")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !second.At.After(first.At) {
		t.Fatalf("entries out of order: %+v then %+v", first.At, second.At)
	}
	if log.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", log.Len())
	}
}

func TestSince(t *testing.T) {
	src := &chronotest.MockSource{FixedInstant: types.FromUnix(1000)}
	log := eventlog.New(src)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := log.Append(ctx, "tick"); err != nil {
			t.Fatalf("Append: %v", err)
		}
		src.Advance(types.NewDuration(10, 0))
	}

	// Entries at 1000, 1010, 1020, 1030, 1040; cutoff is inclusive.
	got := log.Since(types.FromUnix(1020))
	if len(got) != 3 {
		t.Fatalf("expected 3 entries since 1020, got %d", len(got))
	}
	if got[0].At != types.FromUnix(1020) {
		t.Fatalf("first entry should be the cutoff itself, got %+v", got[0].At)
	}
}

func TestAge(t *testing.T) {
	src := &chronotest.MockSource{FixedInstant: types.FromUnix(1000)}
	log := eventlog.New(src)
	ctx := context.Background()

	e, err := log.Append(ctx, "checkpoint")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	src.Advance(types.NewDuration(90, 500_000_000))

	age, err := log.Age(ctx, e.Seq)
	if err != nil {
		t.Fatalf("Age: %v", err)
	}
	if age != types.NewDuration(90, 500_000_000) {
		t.Fatalf("age = %+v", age)
	}

	if _, err := log.Age(ctx, 99); err == nil {
		t.Fatal("expected an error for a missing seq")
	}
}

func TestSnapshotRestore(t *testing.T) {
	src := &chronotest.MockSource{FixedInstant: types.NewInstant(1718454645, 123456789)}
	log := eventlog.New(src)
	ctx := context.Background()

	if _, err := log.Append(ctx, "one"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	src.Advance(types.NewDuration(1, 0))
	if _, err := log.Append(ctx, "two"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := log.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored, err := eventlog.Restore(src, data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("expected 2 entries after restore, got %d", restored.Len())
	}

	// Stamps survive bit for bit, nanos included.
	orig := log.Since(types.MinInstant)
	back := restored.Since(types.MinInstant)
	for i := range orig {
		if orig[i] != back[i] {
			t.Fatalf("entry %d changed across snapshot: %+v != %+v", i, orig[i], back[i])
		}
	}
}

func TestEntry_JSON(t *testing.T) {
	src := &chronotest.MockSource{FixedInstant: types.FromUnix(1522584000)}
	log := eventlog.New(src)

	e, err := log.Append(context.Background(), "deploy")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"at":"2018-04-01T12:00:00Z"`) {
		t.Fatalf("stamp should serialize as canonical RFC 3339, got %s", data)
	}

	var back eventlog.Entry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != e {
		t.Fatalf("JSON round-trip changed the entry: %+v != %+v", back, e)
	}
}
