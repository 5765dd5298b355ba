package types

import (
	"errors"
	"fmt"
)

// ParseErrorKind discriminates the ways a time stamp string can be
// rejected.
type ParseErrorKind uint8

const (
	// ParseMalformed: the input does not match any recognized shape.
	ParseMalformed ParseErrorKind = iota
	// ParseOutOfRange: the shape is recognized but a calendar field
	// holds an impossible value (month 13, day 32, hour 25, ...).
	ParseOutOfRange
	// ParseAmbiguousOffset: the input carries no UTC offset and the
	// caller required one.
	ParseAmbiguousOffset
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseMalformed:
		return "malformed"
	case ParseOutOfRange:
		return "out of range"
	case ParseAmbiguousOffset:
		return "ambiguous offset"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", k)
}

// ParseError reports a rejected time stamp string. Input is the full
// offending string; Reason names the field or token that failed so
// callers can build a diagnostic without re-parsing.
type ParseError struct {
	Kind   ParseErrorKind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s: %s", e.Input, e.Kind, e.Reason)
}

// NewParseError creates a new ParseError.
func NewParseError(kind ParseErrorKind, input, reason string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Reason: reason}
}

// IsParseError checks whether an error is a ParseError and returns it.
func IsParseError(err error) (*ParseError, bool) {
	var p *ParseError
	if errors.As(err, &p) {
		return p, true
	}
	return nil, false
}

func malformed(input, reason string) *ParseError {
	return NewParseError(ParseMalformed, input, reason)
}

func outOfRange(input, reason string) *ParseError {
	return NewParseError(ParseOutOfRange, input, reason)
}
