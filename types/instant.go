// Package types defines the core time value types: Instant, Duration,
// and Zoned, together with the RFC 3339 text codec and the structured
// serialization adapters.
//
// These are plain Go structs with cramberry struct tags for
// deterministic binary serialization. All values are immutable;
// every operation returns a new value. Calendar arithmetic (leap
// years, days-in-month) is delegated to the standard library's time
// package — nothing here reimplements the calendar.
package types

import (
	"math"
	"time"
)

const nanosPerSecond = 1_000_000_000

// The representable range is exactly what an RFC 3339 time stamp can
// express: 0000-01-01T00:00:00Z through 9999-12-31T23:59:59.999999999Z.
// Keeping arithmetic inside this window means every valid Instant has
// a textual form.
const (
	minSeconds = -62167219200 // 0000-01-01T00:00:00Z
	maxSeconds = 253402300799 // 9999-12-31T23:59:59Z
)

var (
	// MinInstant is the earliest representable instant,
	// 0000-01-01T00:00:00Z.
	MinInstant = Instant{Seconds: minSeconds}

	// MaxInstant is the latest representable instant,
	// 9999-12-31T23:59:59.999999999Z.
	MaxInstant = Instant{Seconds: maxSeconds, Nanos: nanosPerSecond - 1}
)

// Instant is an opaque, zone-independent point in time: a signed count
// of whole seconds since the Unix epoch plus a sub-second fraction
// with nanosecond resolution.
//
// Invariant: Nanos is always normalized into [0, 1e9). The zero value
// is the Unix epoch. Instants are ordered lexicographically by
// (Seconds, Nanos); equal fields mean equal instants, so == works.
type Instant struct {
	Seconds int64 `cramberry:"1"`
	Nanos   int32 `cramberry:"2"`
}

// NewInstant builds an Instant from a seconds count and a nanosecond
// fraction, normalizing the fraction into [0, 1e9) and clamping the
// result into the representable range.
func NewInstant(seconds int64, nanos int64) Instant {
	seconds = satAdd64(seconds, nanos/nanosPerSecond)
	nanos %= nanosPerSecond
	if nanos < 0 {
		seconds = satAdd64(seconds, -1)
		nanos += nanosPerSecond
	}
	return Instant{Seconds: seconds, Nanos: int32(nanos)}.clamped()
}

// FromTime converts a time.Time to an Instant, discarding the
// location and any monotonic clock reading.
func FromTime(t time.Time) Instant {
	return NewInstant(t.Unix(), int64(t.Nanosecond()))
}

// FromUnix builds an Instant from whole seconds since the epoch.
func FromUnix(sec int64) Instant {
	return NewInstant(sec, 0)
}

// FromUnixMilli builds an Instant from milliseconds since the epoch.
func FromUnixMilli(ms int64) Instant {
	return NewInstant(ms/1000, (ms%1000)*1_000_000)
}

// ToTime converts the Instant to a time.Time in UTC.
func (i Instant) ToTime() time.Time {
	return time.Unix(i.Seconds, int64(i.Nanos)).UTC()
}

// Unix returns the whole seconds since the epoch.
func (i Instant) Unix() int64 { return i.Seconds }

// UnixMilli returns the milliseconds since the epoch, truncated
// toward negative infinity.
func (i Instant) UnixMilli() int64 {
	return i.Seconds*1000 + int64(i.Nanos)/1_000_000
}

// IsZero reports whether i is the Unix epoch.
func (i Instant) IsZero() bool { return i == Instant{} }

// Compare returns -1, 0, or +1 depending on whether i is before,
// equal to, or after o.
func (i Instant) Compare(o Instant) int {
	switch {
	case i.Seconds < o.Seconds:
		return -1
	case i.Seconds > o.Seconds:
		return 1
	case i.Nanos < o.Nanos:
		return -1
	case i.Nanos > o.Nanos:
		return 1
	}
	return 0
}

// Before reports whether i is strictly before o.
func (i Instant) Before(o Instant) bool { return i.Compare(o) < 0 }

// After reports whether i is strictly after o.
func (i Instant) After(o Instant) bool { return i.Compare(o) > 0 }

// Equal reports whether i and o denote the same instant.
func (i Instant) Equal(o Instant) bool { return i == o }

// Add returns i shifted forward by d (backward for negative d).
//
// Arithmetic saturates: a result that would fall outside
// [MinInstant, MaxInstant] is clamped to the nearest bound.
func (i Instant) Add(d Duration) Instant {
	sec := satAdd64(i.Seconds, d.Seconds)
	nanos := int64(i.Nanos) + int64(d.Nanos) // in (-1e9, 2e9)
	if nanos >= nanosPerSecond {
		sec = satAdd64(sec, 1)
		nanos -= nanosPerSecond
	} else if nanos < 0 {
		sec = satAdd64(sec, -1)
		nanos += nanosPerSecond
	}
	return Instant{Seconds: sec, Nanos: int32(nanos)}.clamped()
}

// Sub returns i shifted backward by d. Sub is the exact inverse of
// Add for in-range results.
func (i Instant) Sub(d Duration) Instant {
	sec := satSub64(i.Seconds, d.Seconds)
	nanos := int64(i.Nanos) - int64(d.Nanos)
	if nanos >= nanosPerSecond {
		sec = satAdd64(sec, 1)
		nanos -= nanosPerSecond
	} else if nanos < 0 {
		sec = satAdd64(sec, -1)
		nanos += nanosPerSecond
	}
	return Instant{Seconds: sec, Nanos: int32(nanos)}.clamped()
}

// Diff returns the exact signed delta i - o, so that o.Add(i.Diff(o))
// reproduces i. It never saturates: the delta of two representable
// instants always fits in a Duration.
func (i Instant) Diff(o Instant) Duration {
	sec := i.Seconds - o.Seconds
	nanos := int64(i.Nanos) - int64(o.Nanos)
	if nanos < 0 {
		sec--
		nanos += nanosPerSecond
	}
	// Carry the sign on the whole value.
	if sec < 0 && nanos > 0 {
		sec++
		nanos -= nanosPerSecond
	}
	return Duration{Seconds: sec, Nanos: int32(nanos)}
}

// clamped forces i into the representable range.
func (i Instant) clamped() Instant {
	if i.Compare(MaxInstant) > 0 {
		return MaxInstant
	}
	if i.Compare(MinInstant) < 0 {
		return MinInstant
	}
	return i
}

// satAdd64 adds two int64 values, saturating instead of wrapping.
func satAdd64(a, b int64) int64 {
	s := a + b
	if b > 0 && s < a {
		return math.MaxInt64
	}
	if b < 0 && s > a {
		return math.MinInt64
	}
	return s
}

// satSub64 subtracts b from a, saturating instead of wrapping.
func satSub64(a, b int64) int64 {
	s := a - b
	if b < 0 && s < a {
		return math.MaxInt64
	}
	if b > 0 && s > a {
		return math.MinInt64
	}
	return s
}
