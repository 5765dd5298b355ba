// Package chronotest provides test utilities for code built on
// chronoberry, including a configurable mock time source and a
// compliance test suite for Source implementations.
package chronotest

import (
	"context"
	"sync/atomic"

	"github.com/blockberries/chronoberry"
	"github.com/blockberries/chronoberry/types"
)

// Compile-time interface check.
var _ chronoberry.Source = (*MockSource)(nil)

// MockSource is a configurable mock time source. All methods are
// configurable via function fields; unconfigured methods fall back to
// FixedInstant and the Zones table. The zero value returns the Unix
// epoch from Now and knows only the UTC zone.
type MockSource struct {
	// FixedInstant is returned by Now when NowFn is nil.
	FixedInstant types.Instant

	// Zones maps zone names to offsets for the default Zone
	// implementation. "UTC" is always known. Lookups of any other
	// absent name fail with a ZoneError.
	Zones map[string]types.ZoneOffset

	// Configurable handlers. If nil, defaults are used.
	NowFn  func(context.Context) (types.Instant, error)
	ZoneFn func(context.Context, string, types.Instant) (types.ZoneOffset, error)

	// Call counters (atomic for concurrent access).
	NowCalls  atomic.Int64
	ZoneCalls atomic.Int64
}

func (m *MockSource) Now(ctx context.Context) (types.Instant, error) {
	m.NowCalls.Add(1)
	if m.NowFn != nil {
		return m.NowFn(ctx)
	}
	return m.FixedInstant, nil
}

func (m *MockSource) Zone(ctx context.Context, name string, at types.Instant) (types.ZoneOffset, error) {
	m.ZoneCalls.Add(1)
	if m.ZoneFn != nil {
		return m.ZoneFn(ctx, name, at)
	}
	if name == "UTC" {
		return types.ZoneOffset{Abbrev: "UTC"}, nil
	}
	if off, ok := m.Zones[name]; ok {
		return off, nil
	}
	return types.ZoneOffset{}, chronoberry.NewZoneError(name)
}

func (m *MockSource) Close() error { return nil }

// Advance shifts the fixed instant forward by d, for tests that walk
// a mock clock through time.
func (m *MockSource) Advance(d types.Duration) {
	m.FixedInstant = m.FixedInstant.Add(d)
}
