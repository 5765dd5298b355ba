package chronogrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "github.com/blockberries/chronoberry.v1.TimeService"

// TimeServiceServer is the server-side interface for the time gRPC
// service.
type TimeServiceServer interface {
	Now(context.Context, *NowRequest) (*NowResponse, error)
	ResolveZone(context.Context, *ResolveZoneRequest) (*ResolveZoneResponse, error)
}

// RegisterTimeServiceServer registers the TimeServiceServer on a gRPC
// server.
func RegisterTimeServiceServer(s *grpc.Server, srv TimeServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerNow(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(NowRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TimeServiceServer).Now(ctx, req)
}

func handlerResolveZone(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(ResolveZoneRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TimeServiceServer).ResolveZone(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*TimeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Now", Handler: handlerNow},
		{MethodName: "ResolveZone", Handler: handlerResolveZone},
	},
	Metadata: "github.com/blockberries/chronoberry/v1/service.cram",
}
