package chronogrpc

import "github.com/blockberries/chronoberry/types"

// Transport-specific wrapper types for the RPC methods. These exist
// only at gRPC serialization boundaries.

// NowRequest is the (empty) request for TimeService.Now.
type NowRequest struct{}

// NowResponse wraps the return value of TimeService.Now.
type NowResponse struct {
	Instant types.Instant `cramberry:"1"`
}

// ResolveZoneRequest wraps the parameters for TimeService.ResolveZone.
type ResolveZoneRequest struct {
	Zone string        `cramberry:"1"`
	At   types.Instant `cramberry:"2"`
}

// ResolveZoneResponse wraps the return value of
// TimeService.ResolveZone.
type ResolveZoneResponse struct {
	Offset types.ZoneOffset `cramberry:"1"`
}
