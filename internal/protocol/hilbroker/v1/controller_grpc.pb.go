// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// 	protoc-gen-go-grpc v1.5.1
// 	protoc             (unknown)
// source: hilbroker/v1/controller.proto

package hilbrokerv1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	ControllerService_Register_FullMethodName        = "/hilbroker.v1.ControllerService/Register"
	ControllerService_Bye_FullMethodName             = "/hilbroker.v1.ControllerService/Bye"
	ControllerService_Listen_FullMethodName          = "/hilbroker.v1.ControllerService/Listen"
	ControllerService_Dial_FullMethodName            = "/hilbroker.v1.ControllerService/Dial"
	ControllerService_ListExporters_FullMethodName   = "/hilbroker.v1.ControllerService/ListExporters"
	ControllerService_GetExporter_FullMethodName     = "/hilbroker.v1.ControllerService/GetExporter"
	ControllerService_LeaseExporter_FullMethodName   = "/hilbroker.v1.ControllerService/LeaseExporter"
	ControllerService_ReleaseExporter_FullMethodName = "/hilbroker.v1.ControllerService/ReleaseExporter"
)

// ControllerServiceClient is the client API for ControllerService service.
type ControllerServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Bye(ctx context.Context, in *ByeRequest, opts ...grpc.CallOption) (*ByeResponse, error)
	Listen(ctx context.Context, in *ListenRequest, opts ...grpc.CallOption) (ControllerService_ListenClient, error)
	Dial(ctx context.Context, in *DialRequest, opts ...grpc.CallOption) (*DialResponse, error)
	ListExporters(ctx context.Context, in *ListExportersRequest, opts ...grpc.CallOption) (*ListExportersResponse, error)
	GetExporter(ctx context.Context, in *GetExporterRequest, opts ...grpc.CallOption) (*Exporter, error)
	LeaseExporter(ctx context.Context, in *LeaseExporterRequest, opts ...grpc.CallOption) (*LeaseExporterResponse, error)
	ReleaseExporter(ctx context.Context, in *ReleaseExporterRequest, opts ...grpc.CallOption) (*ReleaseExporterResponse, error)
}

type controllerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewControllerServiceClient(cc grpc.ClientConnInterface) ControllerServiceClient {
	return &controllerServiceClient{cc}
}

func (c *controllerServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.cc.Invoke(ctx, ControllerService_Register_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controllerServiceClient) Bye(ctx context.Context, in *ByeRequest, opts ...grpc.CallOption) (*ByeResponse, error) {
	out := new(ByeResponse)
	if err := c.cc.Invoke(ctx, ControllerService_Bye_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controllerServiceClient) Listen(ctx context.Context, in *ListenRequest, opts ...grpc.CallOption) (ControllerService_ListenClient, error) {
	stream, err := c.cc.NewStream(ctx, &ControllerService_ServiceDesc.Streams[0], ControllerService_Listen_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &controllerServiceListenClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ControllerService_ListenClient interface {
	Recv() (*ListenResponse, error)
	grpc.ClientStream
}

type controllerServiceListenClient struct {
	grpc.ClientStream
}

func (x *controllerServiceListenClient) Recv() (*ListenResponse, error) {
	m := new(ListenResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *controllerServiceClient) Dial(ctx context.Context, in *DialRequest, opts ...grpc.CallOption) (*DialResponse, error) {
	out := new(DialResponse)
	if err := c.cc.Invoke(ctx, ControllerService_Dial_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controllerServiceClient) ListExporters(ctx context.Context, in *ListExportersRequest, opts ...grpc.CallOption) (*ListExportersResponse, error) {
	out := new(ListExportersResponse)
	if err := c.cc.Invoke(ctx, ControllerService_ListExporters_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controllerServiceClient) GetExporter(ctx context.Context, in *GetExporterRequest, opts ...grpc.CallOption) (*Exporter, error) {
	out := new(Exporter)
	if err := c.cc.Invoke(ctx, ControllerService_GetExporter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controllerServiceClient) LeaseExporter(ctx context.Context, in *LeaseExporterRequest, opts ...grpc.CallOption) (*LeaseExporterResponse, error) {
	out := new(LeaseExporterResponse)
	if err := c.cc.Invoke(ctx, ControllerService_LeaseExporter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controllerServiceClient) ReleaseExporter(ctx context.Context, in *ReleaseExporterRequest, opts ...grpc.CallOption) (*ReleaseExporterResponse, error) {
	out := new(ReleaseExporterResponse)
	if err := c.cc.Invoke(ctx, ControllerService_ReleaseExporter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ControllerServiceServer is the server API for ControllerService service.
type ControllerServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Bye(context.Context, *ByeRequest) (*ByeResponse, error)
	Listen(*ListenRequest, ControllerService_ListenServer) error
	Dial(context.Context, *DialRequest) (*DialResponse, error)
	ListExporters(context.Context, *ListExportersRequest) (*ListExportersResponse, error)
	GetExporter(context.Context, *GetExporterRequest) (*Exporter, error)
	LeaseExporter(context.Context, *LeaseExporterRequest) (*LeaseExporterResponse, error)
	ReleaseExporter(context.Context, *ReleaseExporterRequest) (*ReleaseExporterResponse, error)
	mustEmbedUnimplementedControllerServiceServer()
}

type UnimplementedControllerServiceServer struct{}

func (UnimplementedControllerServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedControllerServiceServer) Bye(context.Context, *ByeRequest) (*ByeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Bye not implemented")
}
func (UnimplementedControllerServiceServer) Listen(*ListenRequest, ControllerService_ListenServer) error {
	return status.Errorf(codes.Unimplemented, "method Listen not implemented")
}
func (UnimplementedControllerServiceServer) Dial(context.Context, *DialRequest) (*DialResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Dial not implemented")
}
func (UnimplementedControllerServiceServer) ListExporters(context.Context, *ListExportersRequest) (*ListExportersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExporters not implemented")
}
func (UnimplementedControllerServiceServer) GetExporter(context.Context, *GetExporterRequest) (*Exporter, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetExporter not implemented")
}
func (UnimplementedControllerServiceServer) LeaseExporter(context.Context, *LeaseExporterRequest) (*LeaseExporterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LeaseExporter not implemented")
}
func (UnimplementedControllerServiceServer) ReleaseExporter(context.Context, *ReleaseExporterRequest) (*ReleaseExporterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReleaseExporter not implemented")
}
func (UnimplementedControllerServiceServer) mustEmbedUnimplementedControllerServiceServer() {}

type UnsafeControllerServiceServer interface {
	mustEmbedUnimplementedControllerServiceServer()
}

func RegisterControllerServiceServer(s grpc.ServiceRegistrar, srv ControllerServiceServer) {
	s.RegisterService(&ControllerService_ServiceDesc, srv)
}

func _ControllerService_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControllerServiceServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ControllerService_Register_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControllerServiceServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ControllerService_Bye_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ByeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControllerServiceServer).Bye(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ControllerService_Bye_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControllerServiceServer).Bye(ctx, req.(*ByeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ControllerService_Listen_Handler(srv any, stream grpc.ServerStream) error {
	m := new(ListenRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ControllerServiceServer).Listen(m, &controllerServiceListenServer{stream})
}

type ControllerService_ListenServer interface {
	Send(*ListenResponse) error
	grpc.ServerStream
}

type controllerServiceListenServer struct {
	grpc.ServerStream
}

func (x *controllerServiceListenServer) Send(m *ListenResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _ControllerService_Dial_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DialRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControllerServiceServer).Dial(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ControllerService_Dial_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControllerServiceServer).Dial(ctx, req.(*DialRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ControllerService_ListExporters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListExportersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControllerServiceServer).ListExporters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ControllerService_ListExporters_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControllerServiceServer).ListExporters(ctx, req.(*ListExportersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ControllerService_GetExporter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetExporterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControllerServiceServer).GetExporter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ControllerService_GetExporter_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControllerServiceServer).GetExporter(ctx, req.(*GetExporterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ControllerService_LeaseExporter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LeaseExporterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControllerServiceServer).LeaseExporter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ControllerService_LeaseExporter_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControllerServiceServer).LeaseExporter(ctx, req.(*LeaseExporterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ControllerService_ReleaseExporter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReleaseExporterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControllerServiceServer).ReleaseExporter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ControllerService_ReleaseExporter_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControllerServiceServer).ReleaseExporter(ctx, req.(*ReleaseExporterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ControllerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hilbroker.v1.ControllerService",
	HandlerType: (*ControllerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: _ControllerService_Register_Handler},
		{MethodName: "Bye", Handler: _ControllerService_Bye_Handler},
		{MethodName: "Dial", Handler: _ControllerService_Dial_Handler},
		{MethodName: "ListExporters", Handler: _ControllerService_ListExporters_Handler},
		{MethodName: "GetExporter", Handler: _ControllerService_GetExporter_Handler},
		{MethodName: "LeaseExporter", Handler: _ControllerService_LeaseExporter_Handler},
		{MethodName: "ReleaseExporter", Handler: _ControllerService_ReleaseExporter_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Listen",
			Handler:       _ControllerService_Listen_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "hilbroker/v1/controller.proto",
}
