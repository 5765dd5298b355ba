package types

// Structured serialization adapters for Instant.
//
// Binary records use the cramberry struct tags directly. Textual
// document models (JSON, and anything that consumes
// encoding.TextMarshaler) carry one canonical wire form: the RFC 3339
// string at zero offset, regardless of how the Instant was obtained.
// Deserialization surfaces the ParseError taxonomy unchanged; the
// encoding framework adds the document position.

// String returns the canonical UTC RFC 3339 rendering.
func (i Instant) String() string {
	return FormatRFC3339(i, 0)
}

// MarshalText implements encoding.TextMarshaler.
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(FormatRFC3339(i, 0)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Instant) UnmarshalText(b []byte) error {
	parsed, err := ParseRFC3339(string(b))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalJSON implements json.Marshaler as a quoted canonical string.
func (i Instant) MarshalJSON() ([]byte, error) {
	s := FormatRFC3339(i, 0)
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves the
// receiver untouched, matching the convention of time.Time.
func (i *Instant) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return malformed(string(b), "expected a JSON string")
	}
	return i.UnmarshalText(b[1 : len(b)-1])
}
