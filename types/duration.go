package types

import (
	"math"
	"time"
)

// Duration is a signed elapsed-time delta with the same
// (seconds, nanosecond-fraction) shape as Instant.
//
// Invariant: the sign is carried on the whole value — Seconds and
// Nanos never have opposite signs, and |Nanos| < 1e9. This keeps
// Instant.Add and Instant.Sub consistent inverses.
//
// The shape is deliberately wider than time.Duration (which caps out
// around ±292 years): the delta of any two representable Instants
// must be exact.
type Duration struct {
	Seconds int64 `cramberry:"1"`
	Nanos   int32 `cramberry:"2"`
}

// NewDuration builds a Duration from a seconds count and a nanosecond
// fraction, normalizing so the sign is carried on the whole value.
func NewDuration(seconds int64, nanos int64) Duration {
	seconds = satAdd64(seconds, nanos/nanosPerSecond)
	nanos %= nanosPerSecond
	if seconds > 0 && nanos < 0 {
		seconds--
		nanos += nanosPerSecond
	} else if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= nanosPerSecond
	}
	return Duration{Seconds: seconds, Nanos: int32(nanos)}
}

// DurationFromGo converts a time.Duration.
func DurationFromGo(d time.Duration) Duration {
	// Integer division truncates toward zero, which keeps the
	// seconds and nanos signs consistent.
	return Duration{
		Seconds: int64(d) / nanosPerSecond,
		Nanos:   int32(int64(d) % nanosPerSecond),
	}
}

// ToGo converts to a time.Duration, saturating at the time.Duration
// range bounds (about ±292 years).
func (d Duration) ToGo() time.Duration {
	if d.Seconds > math.MaxInt64/nanosPerSecond {
		return time.Duration(math.MaxInt64)
	}
	if d.Seconds < math.MinInt64/nanosPerSecond {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(satAdd64(d.Seconds*nanosPerSecond, int64(d.Nanos)))
}

// Neg returns -d. The unrepresentable negation of math.MinInt64
// seconds saturates.
func (d Duration) Neg() Duration {
	if d.Seconds == math.MinInt64 {
		return Duration{Seconds: math.MaxInt64, Nanos: -d.Nanos}
	}
	return Duration{Seconds: -d.Seconds, Nanos: -d.Nanos}
}

// IsZero reports whether d is the zero delta.
func (d Duration) IsZero() bool { return d == Duration{} }

// IsNegative reports whether d points backward in time.
func (d Duration) IsNegative() bool {
	return d.Seconds < 0 || (d.Seconds == 0 && d.Nanos < 0)
}
