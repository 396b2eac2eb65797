// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// 	protoc-gen-go-grpc v1.5.1
// 	protoc             (unknown)
// source: hilbroker/client/v1/client.proto

package hilbrokerclientv1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	ClientService_GetExporter_FullMethodName    = "/hilbroker.client.v1.ClientService/GetExporter"
	ClientService_ListExporters_FullMethodName  = "/hilbroker.client.v1.ClientService/ListExporters"
	ClientService_GetLease_FullMethodName       = "/hilbroker.client.v1.ClientService/GetLease"
	ClientService_ListLeases_FullMethodName     = "/hilbroker.client.v1.ClientService/ListLeases"
	ClientService_CreateLease_FullMethodName    = "/hilbroker.client.v1.ClientService/CreateLease"
	ClientService_UpdateLease_FullMethodName    = "/hilbroker.client.v1.ClientService/UpdateLease"
	ClientService_DeleteLease_FullMethodName    = "/hilbroker.client.v1.ClientService/DeleteLease"
)

// ClientServiceClient is the client API for ClientService service: the
// AIP-style surface backing ListExporters/GetExporter/
// LeaseExporter/ReleaseExporter RPCs.
type ClientServiceClient interface {
	GetExporter(ctx context.Context, in *GetExporterRequest, opts ...grpc.CallOption) (*Exporter, error)
	ListExporters(ctx context.Context, in *ListExportersRequest, opts ...grpc.CallOption) (*ListExportersResponse, error)
	GetLease(ctx context.Context, in *GetLeaseRequest, opts ...grpc.CallOption) (*Lease, error)
	ListLeases(ctx context.Context, in *ListLeasesRequest, opts ...grpc.CallOption) (*ListLeasesResponse, error)
	CreateLease(ctx context.Context, in *CreateLeaseRequest, opts ...grpc.CallOption) (*Lease, error)
	UpdateLease(ctx context.Context, in *UpdateLeaseRequest, opts ...grpc.CallOption) (*Lease, error)
	DeleteLease(ctx context.Context, in *DeleteLeaseRequest, opts ...grpc.CallOption) (*DeleteLeaseResponse, error)
}

type clientServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClientServiceClient(cc grpc.ClientConnInterface) ClientServiceClient {
	return &clientServiceClient{cc}
}

func (c *clientServiceClient) GetExporter(ctx context.Context, in *GetExporterRequest, opts ...grpc.CallOption) (*Exporter, error) {
	out := new(Exporter)
	if err := c.cc.Invoke(ctx, ClientService_GetExporter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientServiceClient) ListExporters(ctx context.Context, in *ListExportersRequest, opts ...grpc.CallOption) (*ListExportersResponse, error) {
	out := new(ListExportersResponse)
	if err := c.cc.Invoke(ctx, ClientService_ListExporters_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientServiceClient) GetLease(ctx context.Context, in *GetLeaseRequest, opts ...grpc.CallOption) (*Lease, error) {
	out := new(Lease)
	if err := c.cc.Invoke(ctx, ClientService_GetLease_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientServiceClient) ListLeases(ctx context.Context, in *ListLeasesRequest, opts ...grpc.CallOption) (*ListLeasesResponse, error) {
	out := new(ListLeasesResponse)
	if err := c.cc.Invoke(ctx, ClientService_ListLeases_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientServiceClient) CreateLease(ctx context.Context, in *CreateLeaseRequest, opts ...grpc.CallOption) (*Lease, error) {
	out := new(Lease)
	if err := c.cc.Invoke(ctx, ClientService_CreateLease_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientServiceClient) UpdateLease(ctx context.Context, in *UpdateLeaseRequest, opts ...grpc.CallOption) (*Lease, error) {
	out := new(Lease)
	if err := c.cc.Invoke(ctx, ClientService_UpdateLease_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientServiceClient) DeleteLease(ctx context.Context, in *DeleteLeaseRequest, opts ...grpc.CallOption) (*DeleteLeaseResponse, error) {
	out := new(DeleteLeaseResponse)
	if err := c.cc.Invoke(ctx, ClientService_DeleteLease_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ClientServiceServer is the server API for ClientService service.
type ClientServiceServer interface {
	GetExporter(context.Context, *GetExporterRequest) (*Exporter, error)
	ListExporters(context.Context, *ListExportersRequest) (*ListExportersResponse, error)
	GetLease(context.Context, *GetLeaseRequest) (*Lease, error)
	ListLeases(context.Context, *ListLeasesRequest) (*ListLeasesResponse, error)
	CreateLease(context.Context, *CreateLeaseRequest) (*Lease, error)
	UpdateLease(context.Context, *UpdateLeaseRequest) (*Lease, error)
	DeleteLease(context.Context, *DeleteLeaseRequest) (*DeleteLeaseResponse, error)
	mustEmbedUnimplementedClientServiceServer()
}

type UnimplementedClientServiceServer struct{}

func (UnimplementedClientServiceServer) GetExporter(context.Context, *GetExporterRequest) (*Exporter, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetExporter not implemented")
}
func (UnimplementedClientServiceServer) ListExporters(context.Context, *ListExportersRequest) (*ListExportersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExporters not implemented")
}
func (UnimplementedClientServiceServer) GetLease(context.Context, *GetLeaseRequest) (*Lease, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLease not implemented")
}
func (UnimplementedClientServiceServer) ListLeases(context.Context, *ListLeasesRequest) (*ListLeasesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLeases not implemented")
}
func (UnimplementedClientServiceServer) CreateLease(context.Context, *CreateLeaseRequest) (*Lease, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLease not implemented")
}
func (UnimplementedClientServiceServer) UpdateLease(context.Context, *UpdateLeaseRequest) (*Lease, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateLease not implemented")
}
func (UnimplementedClientServiceServer) DeleteLease(context.Context, *DeleteLeaseRequest) (*DeleteLeaseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLease not implemented")
}
func (UnimplementedClientServiceServer) mustEmbedUnimplementedClientServiceServer() {}

type UnsafeClientServiceServer interface {
	mustEmbedUnimplementedClientServiceServer()
}

func RegisterClientServiceServer(s grpc.ServiceRegistrar, srv ClientServiceServer) {
	s.RegisterService(&ClientService_ServiceDesc, srv)
}

func _ClientService_GetExporter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetExporterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServiceServer).GetExporter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClientService_GetExporter_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientServiceServer).GetExporter(ctx, req.(*GetExporterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientService_ListExporters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListExportersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServiceServer).ListExporters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClientService_ListExporters_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientServiceServer).ListExporters(ctx, req.(*ListExportersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientService_GetLease_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetLeaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServiceServer).GetLease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClientService_GetLease_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientServiceServer).GetLease(ctx, req.(*GetLeaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientService_ListLeases_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListLeasesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServiceServer).ListLeases(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClientService_ListLeases_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientServiceServer).ListLeases(ctx, req.(*ListLeasesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientService_CreateLease_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateLeaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServiceServer).CreateLease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClientService_CreateLease_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientServiceServer).CreateLease(ctx, req.(*CreateLeaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientService_UpdateLease_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateLeaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServiceServer).UpdateLease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClientService_UpdateLease_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientServiceServer).UpdateLease(ctx, req.(*UpdateLeaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientService_DeleteLease_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteLeaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServiceServer).DeleteLease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClientService_DeleteLease_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientServiceServer).DeleteLease(ctx, req.(*DeleteLeaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ClientService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hilbroker.client.v1.ClientService",
	HandlerType: (*ClientServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetExporter", Handler: _ClientService_GetExporter_Handler},
		{MethodName: "ListExporters", Handler: _ClientService_ListExporters_Handler},
		{MethodName: "GetLease", Handler: _ClientService_GetLease_Handler},
		{MethodName: "ListLeases", Handler: _ClientService_ListLeases_Handler},
		{MethodName: "CreateLease", Handler: _ClientService_CreateLease_Handler},
		{MethodName: "UpdateLease", Handler: _ClientService_UpdateLease_Handler},
		{MethodName: "DeleteLease", Handler: _ClientService_DeleteLease_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hilbroker/client/v1/client.proto",
}
