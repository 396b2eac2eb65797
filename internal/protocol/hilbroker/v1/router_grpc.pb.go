// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// 	protoc-gen-go-grpc v1.5.1
// 	protoc             (unknown)
// source: hilbroker/v1/router.proto

package hilbrokerv1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	RouterService_Stream_FullMethodName = "/hilbroker.v1.RouterService/Stream"
)

// RouterServiceClient is the client API for RouterService service.
type RouterServiceClient interface {
	// Stream pairs two authenticated bidirectional streams by token and
	// forwards frames between them.
	Stream(ctx context.Context, opts ...grpc.CallOption) (RouterService_StreamClient, error)
}

type routerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRouterServiceClient(cc grpc.ClientConnInterface) RouterServiceClient {
	return &routerServiceClient{cc}
}

func (c *routerServiceClient) Stream(ctx context.Context, opts ...grpc.CallOption) (RouterService_StreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &RouterService_ServiceDesc.Streams[0], RouterService_Stream_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &routerServiceStreamClient{stream}, nil
}

type RouterService_StreamClient interface {
	Send(*StreamRequest) error
	Recv() (*StreamResponse, error)
	grpc.ClientStream
}

type routerServiceStreamClient struct {
	grpc.ClientStream
}

func (x *routerServiceStreamClient) Send(m *StreamRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *routerServiceStreamClient) Recv() (*StreamResponse, error) {
	m := new(StreamResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RouterServiceServer is the server API for RouterService service.
type RouterServiceServer interface {
	Stream(RouterService_StreamServer) error
	mustEmbedUnimplementedRouterServiceServer()
}

// UnimplementedRouterServiceServer must be embedded to have forward
// compatible implementations.
type UnimplementedRouterServiceServer struct{}

func (UnimplementedRouterServiceServer) Stream(RouterService_StreamServer) error {
	return status.Errorf(codes.Unimplemented, "method Stream not implemented")
}
func (UnimplementedRouterServiceServer) mustEmbedUnimplementedRouterServiceServer() {}

// UnsafeRouterServiceServer may be embedded to opt out of forward
// compatibility for this service.
type UnsafeRouterServiceServer interface {
	mustEmbedUnimplementedRouterServiceServer()
}

func RegisterRouterServiceServer(s grpc.ServiceRegistrar, srv RouterServiceServer) {
	s.RegisterService(&RouterService_ServiceDesc, srv)
}

func _RouterService_Stream_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(RouterServiceServer).Stream(&routerServiceStreamServer{stream})
}

type RouterService_StreamServer interface {
	Send(*StreamResponse) error
	Recv() (*StreamRequest, error)
	grpc.ServerStream
}

type routerServiceStreamServer struct {
	grpc.ServerStream
}

func (x *routerServiceStreamServer) Send(m *StreamResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *routerServiceStreamServer) Recv() (*StreamRequest, error) {
	m := new(StreamRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RouterService_ServiceDesc is the grpc.ServiceDesc for RouterService service.
var RouterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hilbroker.v1.RouterService",
	HandlerType: (*RouterServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Stream",
			Handler:       _RouterService_Stream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "hilbroker/v1/router.proto",
}
