package chronogrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/chronoberry"
	"github.com/blockberries/chronoberry/types"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Compile-time interface check.
var _ chronoberry.Source = (*Client)(nil)

// Client implements chronoberry.Source against a remote time service
// over gRPC using cramberry serialization. No protobuf types or
// conversion layer required.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote time service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("chronoberry client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// Now fetches the remote service's current instant.
func (c *Client) Now(ctx context.Context) (types.Instant, error) {
	resp := new(NowResponse)
	if err := c.cc.Invoke(ctx, fullMethod("Now"), &NowRequest{}, resp); err != nil {
		return types.Instant{}, err
	}
	return resp.Instant, nil
}

// Zone resolves a zone through the remote service. A NotFound status
// is surfaced as the typed *chronoberry.ZoneError the in-process
// source would have returned.
func (c *Client) Zone(ctx context.Context, name string, at types.Instant) (types.ZoneOffset, error) {
	req := &ResolveZoneRequest{Zone: name, At: at}
	resp := new(ResolveZoneResponse)
	if err := c.cc.Invoke(ctx, fullMethod("ResolveZone"), req, resp); err != nil {
		if status.Code(err) == codes.NotFound {
			return types.ZoneOffset{}, chronoberry.NewZoneError(name)
		}
		return types.ZoneOffset{}, err
	}
	return resp.Offset, nil
}
