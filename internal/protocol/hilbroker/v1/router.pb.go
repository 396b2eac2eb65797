// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.4
// 	protoc        (unknown)
// source: hilbroker/v1/router.proto

package hilbrokerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

// FrameType mirrors the subset of HTTP/2-style frame kinds the router needs
// to distinguish; payload framing itself stays opaque to the core
// ("Frames are opaque byte chunks; no inspection or
// transformation").
type FrameType int32

const (
	FrameType_FRAME_TYPE_DATA       FrameType = 0
	FrameType_FRAME_TYPE_RST_STREAM FrameType = 3
	FrameType_FRAME_TYPE_PING       FrameType = 6
	FrameType_FRAME_TYPE_GOAWAY     FrameType = 7
)

var FrameType_name = map[int32]string{
	0: "FRAME_TYPE_DATA",
	3: "FRAME_TYPE_RST_STREAM",
	6: "FRAME_TYPE_PING",
	7: "FRAME_TYPE_GOAWAY",
}

var FrameType_value = map[string]int32{
	"FRAME_TYPE_DATA":       0,
	"FRAME_TYPE_RST_STREAM": 3,
	"FRAME_TYPE_PING":       6,
	"FRAME_TYPE_GOAWAY":     7,
}

func (x FrameType) Enum() *FrameType {
	p := new(FrameType)
	*p = x
	return p
}

func (x FrameType) String() string {
	if name, ok := FrameType_name[int32(x)]; ok {
		return name
	}
	return "FRAME_TYPE_UNKNOWN"
}

// StreamRequest is the client/exporter -> router frame.
type StreamRequest struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Payload   []byte    `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	FrameType FrameType `protobuf:"varint,2,opt,name=frame_type,json=frameType,proto3,enum=hilbroker.v1.FrameType" json:"frame_type,omitempty"`
}

func (x *StreamRequest) Reset()         { *x = StreamRequest{} }
func (x *StreamRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*StreamRequest) ProtoMessage()    {}

func (x *StreamRequest) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *StreamRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *StreamRequest) GetFrameType() FrameType {
	if x != nil {
		return x.FrameType
	}
	return FrameType_FRAME_TYPE_DATA
}

// StreamResponse is the router -> client/exporter frame.
type StreamResponse struct {
	state         protoimpl.MessageState
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache

	Payload   []byte    `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	FrameType FrameType `protobuf:"varint,2,opt,name=frame_type,json=frameType,proto3,enum=hilbroker.v1.FrameType" json:"frame_type,omitempty"`
}

func (x *StreamResponse) Reset()         { *x = StreamResponse{} }
func (x *StreamResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*StreamResponse) ProtoMessage()    {}

func (x *StreamResponse) ProtoReflect() protoreflect.Message {
	return protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).LoadMessageInfo().MessageOf(x)
}

func (x *StreamResponse) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *StreamResponse) GetFrameType() FrameType {
	if x != nil {
		return x.FrameType
	}
	return FrameType_FRAME_TYPE_DATA
}
