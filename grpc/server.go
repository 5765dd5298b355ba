package chronogrpc

import (
	"context"
	"net"

	"github.com/blockberries/chronoberry"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Compile-time interface check.
var _ TimeServiceServer = (*GRPCServer)(nil)

// GRPCServer exposes a chronoberry.Source as a gRPC time service.
// No type conversion is needed — domain types are serialized
// directly via cramberry.
type GRPCServer struct {
	src chronoberry.Source
}

// NewGRPCServer creates a gRPC server wrapping the given source.
func NewGRPCServer(src chronoberry.Source) *GRPCServer {
	return &GRPCServer{src: src}
}

// Register adds the time service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterTimeServiceServer(gs, s)
}

// Serve starts the gRPC server on the given listener.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *GRPCServer) Stop(gs *grpc.Server) {
	gs.GracefulStop()
}

// --- RPCs ---

func (s *GRPCServer) Now(ctx context.Context, _ *NowRequest) (*NowResponse, error) {
	now, err := s.src.Now(ctx)
	if err != nil {
		return nil, err
	}
	return &NowResponse{Instant: now}, nil
}

func (s *GRPCServer) ResolveZone(ctx context.Context, req *ResolveZoneRequest) (*ResolveZoneResponse, error) {
	off, err := s.src.Zone(ctx, req.Zone, req.At)
	if err != nil {
		// Unknown zones map to NotFound so the client can rebuild
		// the typed error on its side of the wire.
		if _, ok := chronoberry.IsZoneError(err); ok {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, err
	}
	return &ResolveZoneResponse{Offset: off}, nil
}
