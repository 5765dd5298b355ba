package types

import "time"

// RFC 3339 text codec.
//
// The formatter emits YYYY-MM-DDTHH:MM:SS[.fffffffff]±HH:MM, with Z
// for a zero offset and the fraction present only when nonzero —
// always at full nine-digit nanosecond resolution, never rounded.
//
// The parser accepts a superset of what the formatter emits: the full
// RFC 3339 grammar with 0–9 fraction digits, Z/z or a numeric offset,
// and T/t or a single space as the date/time separator.
//
// The grammar is scanned by hand rather than through time.Parse
// because the error contract distinguishes malformed syntax from
// out-of-range field values, and time.Parse reports both as the same
// opaque error. Calendar validity (days per month, leap years) is
// still the standard library's job, via a time.Date round-back.

// FormatRFC3339 renders i at the given UTC offset (seconds east).
//
// Within a day of the representable bounds a nonzero offset can push
// the local time outside years 0000–9999; such instants render at
// offset zero instead, where every Instant is in range. Either way the
// output parses back to exactly i.
func FormatRFC3339(i Instant, offsetSeconds int32) string {
	local := satAdd64(i.Seconds, int64(offsetSeconds))
	if local < minSeconds || local > maxSeconds {
		offsetSeconds = 0
		local = i.Seconds
	}
	t := time.Unix(local, int64(i.Nanos)).UTC()
	year, month, day := t.Date()
	hh, mm, ss := t.Clock()

	buf := make([]byte, 0, 35)
	buf = appendPadded(buf, year, 4)
	buf = append(buf, '-')
	buf = appendPadded(buf, int(month), 2)
	buf = append(buf, '-')
	buf = appendPadded(buf, day, 2)
	buf = append(buf, 'T')
	buf = appendPadded(buf, hh, 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, mm, 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, ss, 2)
	if i.Nanos != 0 {
		buf = append(buf, '.')
		buf = appendPadded(buf, int(i.Nanos), 9)
	}
	buf = appendOffset(buf, offsetSeconds)
	return string(buf)
}

// ParseRFC3339 parses an RFC 3339 time stamp into an Instant.
//
// Syntactic violations fail with ParseMalformed; recognized shapes
// with impossible field values fail with ParseOutOfRange. The offset
// is explicit in the grammar, so ParseAmbiguousOffset cannot occur
// here. Round-trip law: ParseRFC3339(FormatRFC3339(i, o)) == i for
// every representable i and valid o.
func ParseRFC3339(s string) (Instant, error) {
	year, month, day, rest, err := scanDate(s, s, '-')
	if err != nil {
		return Instant{}, err
	}
	if len(rest) == 0 || !isDateTimeSep(rest[0]) {
		return Instant{}, malformed(s, "expected 'T' or ' ' between date and time")
	}
	hh, mm, ss, nanos, rest, err := scanClock(rest[1:], s, true)
	if err != nil {
		return Instant{}, err
	}
	if rest == "" {
		return Instant{}, malformed(s, "missing utc offset")
	}
	offset, rest, err := scanOffset(rest, s)
	if err != nil {
		return Instant{}, err
	}
	if rest != "" {
		return Instant{}, malformed(s, "trailing characters after offset")
	}
	return composeInstant(s, year, month, day, hh, mm, ss, nanos, offset)
}

// composeInstant validates the calendar fields and assembles the
// Instant. Field plausibility (month 1–12, day 1–31) is checked
// directly; whether the day exists in that month is answered by
// time.Date — if the stdlib normalizes the date to something else,
// the input named a day that does not exist.
func composeInstant(input string, year, month, day, hh, mm, ss int, nanos int32, offsetSeconds int32) (Instant, error) {
	if month < 1 || month > 12 {
		return Instant{}, outOfRange(input, "month out of range")
	}
	if day < 1 || day > 31 {
		return Instant{}, outOfRange(input, "day out of range")
	}
	t := time.Date(year, time.Month(month), day, hh, mm, ss, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return Instant{}, outOfRange(input, "day out of range for month")
	}
	i := Instant{
		Seconds: t.Unix() - int64(offsetSeconds),
		Nanos:   nanos,
	}
	// A large offset near the calendar bounds can push the UTC
	// instant outside the representable range.
	if i != i.clamped() {
		return Instant{}, outOfRange(input, "instant outside representable range")
	}
	return i, nil
}

// scanDate consumes "YYYY<sep>MM<sep>DD" and returns the remainder.
// The year is exactly four digits, so it is 0–9999 by construction.
func scanDate(s, input string, sep byte) (year, month, day int, rest string, err error) {
	year, s, ok := atoiFixed(s, 4)
	if !ok {
		return 0, 0, 0, "", malformed(input, "expected 4-digit year")
	}
	if len(s) == 0 || s[0] != sep {
		return 0, 0, 0, "", malformed(input, "expected date separator after year")
	}
	month, s, ok = atoiFixed(s[1:], 2)
	if !ok {
		return 0, 0, 0, "", malformed(input, "expected 2-digit month")
	}
	if len(s) == 0 || s[0] != sep {
		return 0, 0, 0, "", malformed(input, "expected date separator after month")
	}
	day, s, ok = atoiFixed(s[1:], 2)
	if !ok {
		return 0, 0, 0, "", malformed(input, "expected 2-digit day")
	}
	return year, month, day, s, nil
}

// scanClock consumes "HH:MM[:SS][.fraction]". Seconds are mandatory
// for the RFC 3339 profile and optional for the free-form shapes.
func scanClock(s, input string, requireSeconds bool) (hh, mm, ss int, nanos int32, rest string, err error) {
	hh, s, ok := atoiFixed(s, 2)
	if !ok {
		return 0, 0, 0, 0, "", malformed(input, "expected 2-digit hour")
	}
	if len(s) == 0 || s[0] != ':' {
		return 0, 0, 0, 0, "", malformed(input, "expected ':' after hour")
	}
	mm, s, ok = atoiFixed(s[1:], 2)
	if !ok {
		return 0, 0, 0, 0, "", malformed(input, "expected 2-digit minute")
	}
	if len(s) > 0 && s[0] == ':' {
		ss, s, ok = atoiFixed(s[1:], 2)
		if !ok {
			return 0, 0, 0, 0, "", malformed(input, "expected 2-digit second")
		}
	} else if requireSeconds {
		return 0, 0, 0, 0, "", malformed(input, "expected ':' after minute")
	}
	if hh > 23 {
		return 0, 0, 0, 0, "", outOfRange(input, "hour out of range")
	}
	if mm > 59 {
		return 0, 0, 0, 0, "", outOfRange(input, "minute out of range")
	}
	if ss > 59 {
		// Leap seconds are the calendar collaborator's concern; the
		// profile here rejects second 60.
		return 0, 0, 0, 0, "", outOfRange(input, "second out of range")
	}
	if len(s) > 0 && s[0] == '.' {
		nanos, s, err = scanFraction(s[1:], input)
		if err != nil {
			return 0, 0, 0, 0, "", err
		}
	}
	return hh, mm, ss, nanos, s, nil
}

// scanFraction consumes 1–9 fraction digits and scales them to
// nanoseconds, so ".5" is 500ms and ".123456789" is exact.
func scanFraction(s, input string) (int32, string, error) {
	n := 0
	var v int32
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		if n == 9 {
			return 0, "", malformed(input, "more than 9 fraction digits")
		}
		v = v*10 + int32(s[n]-'0')
		n++
	}
	if n == 0 {
		return 0, "", malformed(input, "expected digits after '.'")
	}
	for i := n; i < 9; i++ {
		v *= 10
	}
	return v, s[n:], nil
}

// scanOffset consumes "Z", "z", or "±HH:MM" and returns the offset in
// seconds east of UTC. "-00:00" is treated as UTC.
func scanOffset(s, input string) (int32, string, error) {
	switch s[0] {
	case 'Z', 'z':
		return 0, s[1:], nil
	case '+', '-':
	default:
		return 0, "", malformed(input, "expected 'Z' or numeric utc offset")
	}
	sign := int32(1)
	if s[0] == '-' {
		sign = -1
	}
	hh, rest, ok := atoiFixed(s[1:], 2)
	if !ok {
		return 0, "", malformed(input, "expected 2-digit offset hour")
	}
	if len(rest) == 0 || rest[0] != ':' {
		return 0, "", malformed(input, "expected ':' in utc offset")
	}
	mm, rest, ok := atoiFixed(rest[1:], 2)
	if !ok {
		return 0, "", malformed(input, "expected 2-digit offset minute")
	}
	if hh > 23 {
		return 0, "", outOfRange(input, "offset hour out of range")
	}
	if mm > 59 {
		return 0, "", outOfRange(input, "offset minute out of range")
	}
	return sign * int32(hh*3600+mm*60), rest, nil
}

func isDateTimeSep(c byte) bool {
	return c == 'T' || c == 't' || c == ' '
}

// atoiFixed reads exactly n leading digits.
func atoiFixed(s string, n int) (int, string, bool) {
	if len(s) < n {
		return 0, "", false
	}
	v := 0
	for i := 0; i < n; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, "", false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, s[n:], true
}

// appendPadded appends v zero-padded to the given width.
func appendPadded(buf []byte, v, width int) []byte {
	var tmp [9]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[:width]...)
}

// appendOffset appends "Z" or "±HH:MM".
func appendOffset(buf []byte, offsetSeconds int32) []byte {
	if offsetSeconds == 0 {
		return append(buf, 'Z')
	}
	sign := byte('+')
	if offsetSeconds < 0 {
		sign = '-'
		offsetSeconds = -offsetSeconds
	}
	buf = append(buf, sign)
	buf = appendPadded(buf, int(offsetSeconds/3600), 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, int(offsetSeconds%3600/60), 2)
	return buf
}
