// Package local provides the in-process time source: the system
// clock for "now" and the process's IANA time zone database for zone
// resolution.
//
// For programs that do not need a remote time authority, this adapter
// is the whole story — no serialization, no transport.
package local

import (
	"context"
	"time"

	"github.com/blockberries/chronoberry"
	"github.com/blockberries/chronoberry/types"
)

// Compile-time interface check.
var _ chronoberry.Source = (*Source)(nil)

// Source reads the system clock and resolves zones through
// time.LoadLocation. It is stateless and safe for concurrent use.
type Source struct{}

// New creates an in-process time source.
func New() *Source {
	return &Source{}
}

// Now returns the current instant. It never fails.
func (s *Source) Now(_ context.Context) (types.Instant, error) {
	return types.FromTime(time.Now()), nil
}

// Zone resolves name at the given instant. IANA identifiers go
// through the zone database; names of the form "+HH:MM", "-HH:MM",
// or "UTC±HH:MM" resolve as fixed offsets without a database lookup.
func (s *Source) Zone(_ context.Context, name string, at types.Instant) (types.ZoneOffset, error) {
	if off, ok := fixedOffset(name); ok {
		return off, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return types.ZoneOffset{}, chronoberry.NewZoneError(name)
	}
	// Evaluate the zone at the instant itself so DST transitions
	// land on the right side.
	abbrev, offset := at.ToTime().In(loc).Zone()
	return types.ZoneOffset{Seconds: int32(offset), Abbrev: abbrev}, nil
}

// Close implements chronoberry.Source. It is a no-op.
func (s *Source) Close() error { return nil }

// fixedOffset recognizes fixed-offset zone names.
func fixedOffset(name string) (types.ZoneOffset, bool) {
	s := name
	if len(s) >= 3 && s[:3] == "UTC" {
		if len(s) == 3 {
			return types.ZoneOffset{Abbrev: "UTC"}, true
		}
		s = s[3:]
	}
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return types.ZoneOffset{}, false
	}
	hh, ok1 := digits2(s[1:3])
	mm, ok2 := digits2(s[4:6])
	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return types.ZoneOffset{}, false
	}
	offset := int32(hh*3600 + mm*60)
	if s[0] == '-' {
		offset = -offset
	}
	return types.ZoneOffset{Seconds: offset, Abbrev: name}, true
}

func digits2(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
