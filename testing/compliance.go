package chronotest

import (
	"context"
	"sync"
	"testing"

	"github.com/blockberries/chronoberry"
	"github.com/blockberries/chronoberry/types"
)

// RunComplianceSuite runs a standard compliance test suite against a
// time source to verify the Source contract.
//
// The factory function should return a fresh source instance for each
// test; the suite closes every source it creates.
func RunComplianceSuite(t *testing.T, factory func() chronoberry.Source) {
	t.Helper()
	ctx := context.Background()

	t.Run("now_is_normalized", func(t *testing.T) {
		src := factory()
		defer src.Close()

		now, err := src.Now(ctx)
		if err != nil {
			t.Fatalf("Now failed: %v", err)
		}
		if now.Nanos < 0 || now.Nanos >= 1_000_000_000 {
			t.Errorf("Now returned unnormalized nanos: %d", now.Nanos)
		}
		if now.Before(types.MinInstant) || now.After(types.MaxInstant) {
			t.Errorf("Now outside representable range: %+v", now)
		}
	})

	t.Run("utc_resolves_to_zero", func(t *testing.T) {
		src := factory()
		defer src.Close()

		off, err := src.Zone(ctx, "UTC", types.Instant{})
		if err != nil {
			t.Fatalf("Zone(UTC) failed: %v", err)
		}
		if off.Seconds != 0 {
			t.Errorf("UTC offset should be 0, got %d", off.Seconds)
		}
	})

	t.Run("resolution_deterministic", func(t *testing.T) {
		src := factory()
		defer src.Close()

		at := types.FromUnix(1718454645)
		first, err := src.Zone(ctx, "UTC", at)
		if err != nil {
			t.Fatalf("Zone failed: %v", err)
		}
		second, err := src.Zone(ctx, "UTC", at)
		if err != nil {
			t.Fatalf("Zone failed on repeat: %v", err)
		}
		if first != second {
			t.Errorf("non-deterministic resolution: %+v != %+v", first, second)
		}
	})

	t.Run("unknown_zone_fails_typed", func(t *testing.T) {
		src := factory()
		defer src.Close()

		_, err := src.Zone(ctx, "Nowhere/Imaginary", types.Instant{})
		if err == nil {
			t.Fatal("expected an error for an unknown zone")
		}
		zerr, ok := chronoberry.IsZoneError(err)
		if !ok {
			t.Fatalf("expected a ZoneError, got %T: %v", err, err)
		}
		if zerr.Zone != "Nowhere/Imaginary" {
			t.Errorf("ZoneError should carry the identifier, got %q", zerr.Zone)
		}
	})

	t.Run("utc_projection_matches_decomposition", func(t *testing.T) {
		src := factory()
		defer src.Close()

		i := types.NewInstant(1718454645, 123456789)
		z, err := chronoberry.Project(ctx, src, i, "UTC")
		if err != nil {
			t.Fatalf("Project failed: %v", err)
		}
		want := types.ZonedAt(i, types.ZoneOffset{Abbrev: z.Abbrev})
		if z != want {
			t.Errorf("projection mismatch: got %+v, want %+v", z, want)
		}
		if back := z.Instant(); back != i {
			t.Errorf("projection not reversible: got %+v, want %+v", back, i)
		}
	})

	t.Run("concurrent_resolution", func(t *testing.T) {
		src := factory()
		defer src.Close()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := src.Zone(ctx, "UTC", types.FromUnix(1000)); err != nil {
					t.Errorf("concurrent Zone failed: %v", err)
				}
				if _, err := src.Now(ctx); err != nil {
					t.Errorf("concurrent Now failed: %v", err)
				}
			}()
		}
		wg.Wait()
	})
}
