package types

import "time"

// ZoneOffset is a resolved time zone offset: seconds east of UTC plus
// the zone's abbreviation at the instant it was resolved for.
type ZoneOffset struct {
	Seconds int32  `cramberry:"1"`
	Abbrev  string `cramberry:"2"`
}

// Zoned is a read-only calendar decomposition of an Instant under a
// resolved UTC offset. It is a projection, never an independent store
// of time: it is always recomputable from (Instant, ZoneOffset), and
// Instant reverses the decomposition exactly.
type Zoned struct {
	Year          int32  `cramberry:"1"`
	Month         int32  `cramberry:"2"`
	Day           int32  `cramberry:"3"`
	Hour          int32  `cramberry:"4"`
	Minute        int32  `cramberry:"5"`
	Second        int32  `cramberry:"6"`
	Nanos         int32  `cramberry:"7"`
	OffsetSeconds int32  `cramberry:"8"`
	Abbrev        string `cramberry:"9"`
}

// ZonedAt decomposes i into calendar fields under the given offset.
// The decomposition itself is the standard library's.
func ZonedAt(i Instant, off ZoneOffset) Zoned {
	t := time.Unix(satAdd64(i.Seconds, int64(off.Seconds)), int64(i.Nanos)).UTC()
	year, month, day := t.Date()
	hh, mm, ss := t.Clock()
	return Zoned{
		Year:          int32(year),
		Month:         int32(month),
		Day:           int32(day),
		Hour:          int32(hh),
		Minute:        int32(mm),
		Second:        int32(ss),
		Nanos:         i.Nanos,
		OffsetSeconds: off.Seconds,
		Abbrev:        off.Abbrev,
	}
}

// Instant recomposes the zone-independent instant the projection was
// derived from: ZonedAt(i, off).Instant() == i for every i.
func (z Zoned) Instant() Instant {
	t := time.Date(int(z.Year), time.Month(z.Month), int(z.Day),
		int(z.Hour), int(z.Minute), int(z.Second), 0, time.UTC)
	return Instant{
		Seconds: t.Unix() - int64(z.OffsetSeconds),
		Nanos:   z.Nanos,
	}
}

// Format renders the projection as an RFC 3339 string at its own
// offset.
func (z Zoned) Format() string {
	return FormatRFC3339(z.Instant(), z.OffsetSeconds)
}
