package types

// Free-form date parsing.
//
// Recognized shapes, from bare dates up to full time stamps:
//
//	2024-06-15
//	2024/06/15
//	2024-06-15 12:30
//	2024-06-15T12:30:45
//	2024/06/15 12:30:45
//	2024-06-15 12:30:45.123456789
//	2024-06-15T12:30:45+02:00
//
// The date separator is '-' or '/' (not mixed), the date/time
// separator is 'T', 't', or a single space, seconds and fraction are
// optional, and an RFC 3339 offset may follow. Defaulting policy:
// a missing time-of-day is midnight, a missing offset is UTC (or the
// offset given via DefaultOffset). RequireOffset turns a missing
// offset into a ParseAmbiguousOffset failure instead.

// A ParseOption adjusts the free-form defaulting policy.
type ParseOption func(*parseConfig)

type parseConfig struct {
	requireOffset bool
	defaultOffset int32
}

// RequireOffset makes ParseDate reject inputs that carry no explicit
// UTC offset, failing with ParseAmbiguousOffset.
func RequireOffset() ParseOption {
	return func(c *parseConfig) { c.requireOffset = true }
}

// DefaultOffset sets the offset (seconds east of UTC) assumed for
// inputs that carry none. The default default is UTC.
func DefaultOffset(seconds int32) ParseOption {
	return func(c *parseConfig) { c.defaultOffset = seconds }
}

// ParseDate parses a free-form date or date-time string into an
// Instant. Unrecognized shapes fail with ParseMalformed; recognized
// shapes with impossible values fail with ParseOutOfRange.
func ParseDate(s string, opts ...ParseOption) (Instant, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sep := byte('-')
	if len(s) > 4 && s[4] == '/' {
		sep = '/'
	}
	year, month, day, rest, err := scanDate(s, s, sep)
	if err != nil {
		return Instant{}, err
	}

	var hh, mm, ss int
	var nanos int32
	haveOffset := false
	offset := cfg.defaultOffset

	if rest != "" {
		if !isDateTimeSep(rest[0]) {
			return Instant{}, malformed(s, "expected 'T' or ' ' between date and time")
		}
		hh, mm, ss, nanos, rest, err = scanClock(rest[1:], s, false)
		if err != nil {
			return Instant{}, err
		}
		if rest != "" {
			offset, rest, err = scanOffset(rest, s)
			if err != nil {
				return Instant{}, err
			}
			if rest != "" {
				return Instant{}, malformed(s, "trailing characters after offset")
			}
			haveOffset = true
		}
	}

	if cfg.requireOffset && !haveOffset {
		return Instant{}, NewParseError(ParseAmbiguousOffset, s, "no utc offset in input")
	}
	return composeInstant(s, year, month, day, hh, mm, ss, nanos, offset)
}
