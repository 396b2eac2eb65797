// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.4
// 	protoc        (unknown)
// source: hilbroker/client/v1/client.proto

// Package hilbrokerclientv1 holds the AIP-style (https://google.aip.dev)
// client-facing surface: resource identifiers shaped
// "namespaces/{namespace}/{collection}/{name}", List with page_size/
// page_token/filter, a soft-delete via spec field rather than a true
// Delete RPC (see client_service.go's DeleteLease).
package hilbrokerclientv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

// Exporter is the read-only projection of api/v1alpha1.Exporter exposed to
// clients.
type Exporter struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	// Name is "namespaces/{namespace}/exporters/{name}".
	Name   string            `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Labels map[string]string `protobuf:"bytes,2,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
}

func (x *Exporter) Reset()         { *x = Exporter{} }
func (x *Exporter) String() string { return protoimpl.X.MessageStringOf(x) }
func (*Exporter) ProtoMessage()    {}
func (x *Exporter) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *Exporter) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Exporter) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

type GetExporterRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *GetExporterRequest) Reset()         { *x = GetExporterRequest{} }
func (x *GetExporterRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*GetExporterRequest) ProtoMessage()    {}
func (x *GetExporterRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *GetExporterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ListExportersRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Parent    string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	Filter    string `protobuf:"bytes,4,opt,name=filter,proto3" json:"filter,omitempty"`
}

func (x *ListExportersRequest) Reset()         { *x = ListExportersRequest{} }
func (x *ListExportersRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ListExportersRequest) ProtoMessage()    {}
func (x *ListExportersRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *ListExportersRequest) GetParent() string {
	if x != nil {
		return x.Parent
	}
	return ""
}
func (x *ListExportersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}
func (x *ListExportersRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}
func (x *ListExportersRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListExportersResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Exporters     []*Exporter `protobuf:"bytes,1,rep,name=exporters,proto3" json:"exporters,omitempty"`
	NextPageToken string      `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (x *ListExportersResponse) Reset()         { *x = ListExportersResponse{} }
func (x *ListExportersResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ListExportersResponse) ProtoMessage()    {}
func (x *ListExportersResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *ListExportersResponse) GetExporters() []*Exporter {
	if x != nil {
		return x.Exporters
	}
	return nil
}
func (x *ListExportersResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

// Lease is the client-facing projection of api/v1alpha1.Lease.
type Lease struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	// Name is "namespaces/{namespace}/leases/{name}"; empty on Create.
	Name         string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Selector     string `protobuf:"bytes,2,opt,name=selector,proto3" json:"selector,omitempty"`
	DurationSecs int64  `protobuf:"varint,3,opt,name=duration_secs,json=durationSecs,proto3" json:"duration_secs,omitempty"`
	ExporterName string `protobuf:"bytes,4,opt,name=exporter_name,json=exporterName,proto3" json:"exporter_name,omitempty"`
	Release      bool   `protobuf:"varint,5,opt,name=release,proto3" json:"release,omitempty"`
	BeginTime    int64  `protobuf:"varint,6,opt,name=begin_time,json=beginTime,proto3" json:"begin_time,omitempty"`
	EndTime      int64  `protobuf:"varint,7,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
}

func (x *Lease) Reset()         { *x = Lease{} }
func (x *Lease) String() string { return protoimpl.X.MessageStringOf(x) }
func (*Lease) ProtoMessage()    {}
func (x *Lease) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *Lease) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}
func (x *Lease) GetSelector() string {
	if x != nil {
		return x.Selector
	}
	return ""
}
func (x *Lease) GetDurationSecs() int64 {
	if x != nil {
		return x.DurationSecs
	}
	return 0
}
func (x *Lease) GetExporterName() string {
	if x != nil {
		return x.ExporterName
	}
	return ""
}
func (x *Lease) GetRelease() bool {
	if x != nil {
		return x.Release
	}
	return false
}
func (x *Lease) GetBeginTime() int64 {
	if x != nil {
		return x.BeginTime
	}
	return 0
}
func (x *Lease) GetEndTime() int64 {
	if x != nil {
		return x.EndTime
	}
	return 0
}

type GetLeaseRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *GetLeaseRequest) Reset()         { *x = GetLeaseRequest{} }
func (x *GetLeaseRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*GetLeaseRequest) ProtoMessage()    {}
func (x *GetLeaseRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
func (x *GetLeaseRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ListLeasesRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Parent    string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	Filter    string `protobuf:"bytes,4,opt,name=filter,proto3" json:"filter,omitempty"`
}

func (x *ListLeasesRequest) Reset()         { *x = ListLeasesRequest{} }
func (x *ListLeasesRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ListLeasesRequest) ProtoMessage()    {}
func (x *ListLeasesRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
func (x *ListLeasesRequest) GetParent() string {
	if x != nil {
		return x.Parent
	}
	return ""
}
func (x *ListLeasesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}
func (x *ListLeasesRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}
func (x *ListLeasesRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListLeasesResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Leases        []*Lease `protobuf:"bytes,1,rep,name=leases,proto3" json:"leases,omitempty"`
	NextPageToken string   `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (x *ListLeasesResponse) Reset()         { *x = ListLeasesResponse{} }
func (x *ListLeasesResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ListLeasesResponse) ProtoMessage()    {}
func (x *ListLeasesResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
func (x *ListLeasesResponse) GetLeases() []*Lease {
	if x != nil {
		return x.Leases
	}
	return nil
}
func (x *ListLeasesResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type CreateLeaseRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Parent string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	Lease  *Lease `protobuf:"bytes,2,opt,name=lease,proto3" json:"lease,omitempty"`
}

func (x *CreateLeaseRequest) Reset()         { *x = CreateLeaseRequest{} }
func (x *CreateLeaseRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*CreateLeaseRequest) ProtoMessage()    {}
func (x *CreateLeaseRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
func (x *CreateLeaseRequest) GetParent() string {
	if x != nil {
		return x.Parent
	}
	return ""
}
func (x *CreateLeaseRequest) GetLease() *Lease {
	if x != nil {
		return x.Lease
	}
	return nil
}

type UpdateLeaseRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Lease *Lease `protobuf:"bytes,1,opt,name=lease,proto3" json:"lease,omitempty"`
}

func (x *UpdateLeaseRequest) Reset()         { *x = UpdateLeaseRequest{} }
func (x *UpdateLeaseRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*UpdateLeaseRequest) ProtoMessage()    {}
func (x *UpdateLeaseRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
func (x *UpdateLeaseRequest) GetLease() *Lease {
	if x != nil {
		return x.Lease
	}
	return nil
}

// DeleteLeaseRequest drives a soft-delete: the controller sets
// spec.release=true rather than removing the resource.
type DeleteLeaseRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *DeleteLeaseRequest) Reset()         { *x = DeleteLeaseRequest{} }
func (x *DeleteLeaseRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*DeleteLeaseRequest) ProtoMessage()    {}
func (x *DeleteLeaseRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
func (x *DeleteLeaseRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type DeleteLeaseResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLeaseResponse) Reset()         { *x = DeleteLeaseResponse{} }
func (x *DeleteLeaseResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*DeleteLeaseResponse) ProtoMessage()    {}
func (x *DeleteLeaseResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
