// Package chronoberry is a timestamp abstraction layer: a single
// in-memory representation of an instant in time ([types.Instant]) with
// deterministic RFC 3339 text conversion, time-zone-aware projection,
// duration arithmetic, and lossless serialization.
//
// The package does not source time itself and does not carry a time
// zone database. Both are external collaborators consumed through the
// [Clock] and [ZoneResolver] interfaces. The local package provides an
// in-process implementation backed by the system clock and the IANA
// database; the grpc package provides a remote one.
package chronoberry

import (
	"context"

	"github.com/blockberries/chronoberry/types"
)

// Clock supplies the current instant. The library only ever consumes
// this value; nothing in it reads the system clock directly.
type Clock interface {
	// Now returns the current instant. Implementations backed by a
	// remote service may fail; in-process implementations never do.
	Now(ctx context.Context) (types.Instant, error)
}

// ZoneResolver resolves a time zone identifier to a concrete UTC
// offset at a specific instant. DST transitions are the resolver's
// concern: the offset returned is the one in effect at the given
// instant, not a fixed per-zone constant.
type ZoneResolver interface {
	// Zone resolves name (an IANA identifier such as
	// "America/New_York", or a fixed offset such as "+05:30") at the
	// given instant. Unknown identifiers fail with a *ZoneError.
	//
	// This method MUST be safe for concurrent use and MUST be
	// deterministic: the same (name, at) pair always yields the same
	// offset for the lifetime of the process.
	Zone(ctx context.Context, name string, at types.Instant) (types.ZoneOffset, error)
}

// Source is a transport-agnostic time collaborator. Both the
// in-process adapter and the gRPC client implement this.
type Source interface {
	Clock
	ZoneResolver

	// Close releases any resources held by the source.
	Close() error
}

// Project resolves zone at instant i and decomposes i into calendar
// fields under the resolved offset.
//
// Project is a pure function of its inputs: it caches nothing and
// mutates nothing, so repeated calls with the same arguments yield the
// same result as long as the resolver itself is stable.
func Project(ctx context.Context, r ZoneResolver, i types.Instant, zone string) (types.Zoned, error) {
	off, err := r.Zone(ctx, zone, i)
	if err != nil {
		return types.Zoned{}, err
	}
	return types.ZonedAt(i, off), nil
}

// FormatIn renders i as an RFC 3339 string in the given zone,
// composing Project with the RFC 3339 formatter.
func FormatIn(ctx context.Context, r ZoneResolver, i types.Instant, zone string) (string, error) {
	off, err := r.Zone(ctx, zone, i)
	if err != nil {
		return "", err
	}
	return types.FormatRFC3339(i, off.Seconds), nil
}

// Tomorrow returns midnight UTC of the day after the clock's current
// instant.
func Tomorrow(ctx context.Context, c Clock) (types.Instant, error) {
	now, err := c.Now(ctx)
	if err != nil {
		return types.Instant{}, err
	}
	return now.NextDay(), nil
}

// DaysBack returns midnight UTC count full days before the current
// day: DaysBack(ctx, c, 0) is the most recent midnight.
func DaysBack(ctx context.Context, c Clock, count int) (types.Instant, error) {
	now, err := c.Now(ctx)
	if err != nil {
		return types.Instant{}, err
	}
	return now.DaysBack(count), nil
}
