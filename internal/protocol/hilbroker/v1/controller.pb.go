// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.4
// 	protoc        (unknown)
// source: hilbroker/v1/controller.proto

package hilbrokerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

// DeviceReport is an opaque device record reported by an exporter's driver
// plugin system; the core only round-trips it.
type DeviceReport struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Uuid            string            `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	DriverInterface string            `protobuf:"bytes,2,opt,name=driver_interface,json=driverInterface,proto3" json:"driver_interface,omitempty"`
	Labels          map[string]string `protobuf:"bytes,3,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
}

func (x *DeviceReport) Reset()         { *x = DeviceReport{} }
func (x *DeviceReport) String() string { return protoimpl.X.MessageStringOf(x) }
func (*DeviceReport) ProtoMessage()    {}
func (x *DeviceReport) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *DeviceReport) GetUuid() string {
	if x != nil {
		return x.Uuid
	}
	return ""
}

func (x *DeviceReport) GetDriverInterface() string {
	if x != nil {
		return x.DriverInterface
	}
	return ""
}

func (x *DeviceReport) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

// RegisterRequest is sent once by an exporter after it connects, and may be
// re-sent to refresh its device inventory.
type RegisterRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Labels  map[string]string `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Reports []*DeviceReport   `protobuf:"bytes,2,rep,name=reports,proto3" json:"reports,omitempty"`
}

func (x *RegisterRequest) Reset()         { *x = RegisterRequest{} }
func (x *RegisterRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*RegisterRequest) ProtoMessage()    {}
func (x *RegisterRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *RegisterRequest) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *RegisterRequest) GetReports() []*DeviceReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

type RegisterResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Uuid string `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
}

func (x *RegisterResponse) Reset()         { *x = RegisterResponse{} }
func (x *RegisterResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*RegisterResponse) ProtoMessage()    {}
func (x *RegisterResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *RegisterResponse) GetUuid() string {
	if x != nil {
		return x.Uuid
	}
	return ""
}

// ByeRequest is sent by an exporter shutting down cleanly.
type ByeRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Reason string `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (x *ByeRequest) Reset()         { *x = ByeRequest{} }
func (x *ByeRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ByeRequest) ProtoMessage()    {}
func (x *ByeRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *ByeRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ByeResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ByeResponse) Reset()         { *x = ByeResponse{} }
func (x *ByeResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ByeResponse) ProtoMessage()    {}
func (x *ByeResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

// ListenRequest opens the exporter's long-lived registration stream. It
// carries no fields of its own; identity comes from the call's bearer token.
type ListenRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListenRequest) Reset()         { *x = ListenRequest{} }
func (x *ListenRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ListenRequest) ProtoMessage()    {}
func (x *ListenRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

// ListenResponse is pushed to a Listen stream by a Dial call, directing the
// exporter to the router instance and one-time token it should use to serve
// the requested device.
type ListenResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	RouterEndpoint string `protobuf:"bytes,1,opt,name=router_endpoint,json=routerEndpoint,proto3" json:"router_endpoint,omitempty"`
	RouterToken    string `protobuf:"bytes,2,opt,name=router_token,json=routerToken,proto3" json:"router_token,omitempty"`
	DeviceUuid     string `protobuf:"bytes,3,opt,name=device_uuid,json=deviceUuid,proto3" json:"device_uuid,omitempty"`
}

func (x *ListenResponse) Reset()         { *x = ListenResponse{} }
func (x *ListenResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ListenResponse) ProtoMessage()    {}
func (x *ListenResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *ListenResponse) GetRouterEndpoint() string {
	if x != nil {
		return x.RouterEndpoint
	}
	return ""
}

func (x *ListenResponse) GetRouterToken() string {
	if x != nil {
		return x.RouterToken
	}
	return ""
}

func (x *ListenResponse) GetDeviceUuid() string {
	if x != nil {
		return x.DeviceUuid
	}
	return ""
}

// DialRequest is sent by a client holding a Ready lease to open a session
// with the bound exporter.
type DialRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	ExporterName string `protobuf:"bytes,1,opt,name=exporter_name,json=exporterName,proto3" json:"exporter_name,omitempty"`
	DeviceUuid   string `protobuf:"bytes,2,opt,name=device_uuid,json=deviceUuid,proto3" json:"device_uuid,omitempty"`
}

func (x *DialRequest) Reset()         { *x = DialRequest{} }
func (x *DialRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*DialRequest) ProtoMessage()    {}
func (x *DialRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *DialRequest) GetExporterName() string {
	if x != nil {
		return x.ExporterName
	}
	return ""
}

func (x *DialRequest) GetDeviceUuid() string {
	if x != nil {
		return x.DeviceUuid
	}
	return ""
}

type DialResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	RouterEndpoint string `protobuf:"bytes,1,opt,name=router_endpoint,json=routerEndpoint,proto3" json:"router_endpoint,omitempty"`
	RouterToken    string `protobuf:"bytes,2,opt,name=router_token,json=routerToken,proto3" json:"router_token,omitempty"`
}

func (x *DialResponse) Reset()         { *x = DialResponse{} }
func (x *DialResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*DialResponse) ProtoMessage()    {}
func (x *DialResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *DialResponse) GetRouterEndpoint() string {
	if x != nil {
		return x.RouterEndpoint
	}
	return ""
}

func (x *DialResponse) GetRouterToken() string {
	if x != nil {
		return x.RouterToken
	}
	return ""
}

// Exporter is the client-visible projection of an exporter resource.
type Exporter struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Name      string            `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Labels    map[string]string `protobuf:"bytes,2,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Online    bool              `protobuf:"varint,3,opt,name=online,proto3" json:"online,omitempty"`
	Reports   []*DeviceReport   `protobuf:"bytes,4,rep,name=reports,proto3" json:"reports,omitempty"`
	LeaseName string            `protobuf:"bytes,5,opt,name=lease_name,json=leaseName,proto3" json:"lease_name,omitempty"`
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

func (x *Exporter) GetOnline() bool {
	if x != nil {
		return x.Online
	}
	return false
}

func (x *Exporter) GetReports() []*DeviceReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

func (x *Exporter) GetLeaseName() string {
	if x != nil {
		return x.LeaseName
	}
	return ""
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

// ListExportersRequest filters by label equality; an empty map matches all.
type ListExportersRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Labels map[string]string `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
}

func (x *ListExportersRequest) Reset()         { *x = ListExportersRequest{} }
func (x *ListExportersRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ListExportersRequest) ProtoMessage()    {}
func (x *ListExportersRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *ListExportersRequest) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

type ListExportersResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Exporters []*Exporter `protobuf:"bytes,1,rep,name=exporters,proto3" json:"exporters,omitempty"`
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

// LeaseExporterRequest creates a lease on the caller's behalf. Labels
// select eligible exporters by equality;
// exporter_name, if set, pins the lease to that one exporter instead.
type LeaseExporterRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Labels       map[string]string `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	DurationSecs int64             `protobuf:"varint,2,opt,name=duration_secs,json=durationSecs,proto3" json:"duration_secs,omitempty"`
	ExporterName string            `protobuf:"bytes,3,opt,name=exporter_name,json=exporterName,proto3" json:"exporter_name,omitempty"`
}

func (x *LeaseExporterRequest) Reset()         { *x = LeaseExporterRequest{} }
func (x *LeaseExporterRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*LeaseExporterRequest) ProtoMessage()    {}
func (x *LeaseExporterRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *LeaseExporterRequest) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *LeaseExporterRequest) GetDurationSecs() int64 {
	if x != nil {
		return x.DurationSecs
	}
	return 0
}

func (x *LeaseExporterRequest) GetExporterName() string {
	if x != nil {
		return x.ExporterName
	}
	return ""
}

// LeaseExporterResponse reports the lease created and the duration actually
// granted (the requested duration clamped to the configured maximum).
// Pending is true until the arbiter binds an exporter; the call never blocks
// on that binding.
type LeaseExporterResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	LeaseName    string `protobuf:"bytes,1,opt,name=lease_name,json=leaseName,proto3" json:"lease_name,omitempty"`
	DurationSecs int64  `protobuf:"varint,2,opt,name=duration_secs,json=durationSecs,proto3" json:"duration_secs,omitempty"`
	Pending      bool   `protobuf:"varint,3,opt,name=pending,proto3" json:"pending,omitempty"`
}

func (x *LeaseExporterResponse) Reset()         { *x = LeaseExporterResponse{} }
func (x *LeaseExporterResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*LeaseExporterResponse) ProtoMessage()    {}
func (x *LeaseExporterResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *LeaseExporterResponse) GetLeaseName() string {
	if x != nil {
		return x.LeaseName
	}
	return ""
}

func (x *LeaseExporterResponse) GetDurationSecs() int64 {
	if x != nil {
		return x.DurationSecs
	}
	return 0
}

func (x *LeaseExporterResponse) GetPending() bool {
	if x != nil {
		return x.Pending
	}
	return false
}

type ReleaseExporterRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	LeaseName string `protobuf:"bytes,1,opt,name=lease_name,json=leaseName,proto3" json:"lease_name,omitempty"`
}

func (x *ReleaseExporterRequest) Reset()         { *x = ReleaseExporterRequest{} }
func (x *ReleaseExporterRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ReleaseExporterRequest) ProtoMessage()    {}
func (x *ReleaseExporterRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *ReleaseExporterRequest) GetLeaseName() string {
	if x != nil {
		return x.LeaseName
	}
	return ""
}

type ReleaseExporterResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseExporterResponse) Reset()         { *x = ReleaseExporterResponse{} }
func (x *ReleaseExporterResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ReleaseExporterResponse) ProtoMessage()    {}
func (x *ReleaseExporterResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}
