package chronoberry

import (
	"errors"
	"fmt"
)

// ZoneError signals that a time zone identifier could not be resolved.
//
// Parsing failures are reported by the types package (see
// types.ParseError); ZoneError belongs to the collaborator layer
// because only a resolver can decide that a name is unknown.
type ZoneError struct {
	Zone string
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("unknown time zone %q", e.Zone)
}

// NewZoneError creates a new ZoneError for the given identifier.
func NewZoneError(zone string) *ZoneError {
	return &ZoneError{Zone: zone}
}

// IsZoneError checks whether an error is a ZoneError and returns it.
func IsZoneError(err error) (*ZoneError, bool) {
	var z *ZoneError
	if errors.As(err, &z) {
		return z, true
	}
	return nil, false
}
