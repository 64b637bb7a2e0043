// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: market/market.proto

package market

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ConnectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectRequest) Reset() {
	*x = ConnectRequest{}
	mi := &file_market_market_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectRequest) ProtoMessage() {}

func (x *ConnectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectRequest.ProtoReflect.Descriptor instead.
func (*ConnectRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{0}
}

type RequestPurchaseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestPurchaseRequest) Reset() {
	*x = RequestPurchaseRequest{}
	mi := &file_market_market_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestPurchaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestPurchaseRequest) ProtoMessage() {}

func (x *RequestPurchaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestPurchaseRequest.ProtoReflect.Descriptor instead.
func (*RequestPurchaseRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{1}
}

func (x *RequestPurchaseRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type RequestPurchaseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestPurchaseResponse) Reset() {
	*x = RequestPurchaseResponse{}
	mi := &file_market_market_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestPurchaseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestPurchaseResponse) ProtoMessage() {}

func (x *RequestPurchaseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestPurchaseResponse.ProtoReflect.Descriptor instead.
func (*RequestPurchaseResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{2}
}

type AcceptRequestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	BuyerId       string                 `protobuf:"bytes,2,opt,name=buyer_id,json=buyerId,proto3" json:"buyer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptRequestRequest) Reset() {
	*x = AcceptRequestRequest{}
	mi := &file_market_market_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptRequestRequest) ProtoMessage() {}

func (x *AcceptRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptRequestRequest.ProtoReflect.Descriptor instead.
func (*AcceptRequestRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{3}
}

func (x *AcceptRequestRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *AcceptRequestRequest) GetBuyerId() string {
	if x != nil {
		return x.BuyerId
	}
	return ""
}

type AcceptRequestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        string                 `protobuf:"bytes,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptRequestResponse) Reset() {
	*x = AcceptRequestResponse{}
	mi := &file_market_market_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptRequestResponse) ProtoMessage() {}

func (x *AcceptRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptRequestResponse.ProtoReflect.Descriptor instead.
func (*AcceptRequestResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{4}
}

func (x *AcceptRequestResponse) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

type SendMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        string                 `protobuf:"bytes,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_market_market_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{5}
}

func (x *SendMessageRequest) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

func (x *SendMessageRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type SendMessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageResponse) Reset() {
	*x = SendMessageResponse{}
	mi := &file_market_market_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageResponse) ProtoMessage() {}

func (x *SendMessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageResponse.ProtoReflect.Descriptor instead.
func (*SendMessageResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{6}
}

type MarkSoldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkSoldRequest) Reset() {
	*x = MarkSoldRequest{}
	mi := &file_market_market_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkSoldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkSoldRequest) ProtoMessage() {}

func (x *MarkSoldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkSoldRequest.ProtoReflect.Descriptor instead.
func (*MarkSoldRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{7}
}

func (x *MarkSoldRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type MarkSoldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkSoldResponse) Reset() {
	*x = MarkSoldResponse{}
	mi := &file_market_market_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkSoldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkSoldResponse) ProtoMessage() {}

func (x *MarkSoldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkSoldResponse.ProtoReflect.Descriptor instead.
func (*MarkSoldResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{8}
}

type UpdatePickupStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	PickupStatus  string                 `protobuf:"bytes,2,opt,name=pickup_status,json=pickupStatus,proto3" json:"pickup_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePickupStatusRequest) Reset() {
	*x = UpdatePickupStatusRequest{}
	mi := &file_market_market_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePickupStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePickupStatusRequest) ProtoMessage() {}

func (x *UpdatePickupStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePickupStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdatePickupStatusRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{9}
}

func (x *UpdatePickupStatusRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *UpdatePickupStatusRequest) GetPickupStatus() string {
	if x != nil {
		return x.PickupStatus
	}
	return ""
}

type UpdatePickupStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePickupStatusResponse) Reset() {
	*x = UpdatePickupStatusResponse{}
	mi := &file_market_market_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePickupStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePickupStatusResponse) ProtoMessage() {}

func (x *UpdatePickupStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePickupStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdatePickupStatusResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{10}
}

type GetChatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        string                 `protobuf:"bytes,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	Cursor        *string                `protobuf:"bytes,2,opt,name=cursor,proto3,oneof" json:"cursor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChatRequest) Reset() {
	*x = GetChatRequest{}
	mi := &file_market_market_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChatRequest) ProtoMessage() {}

func (x *GetChatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChatRequest.ProtoReflect.Descriptor instead.
func (*GetChatRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{11}
}

func (x *GetChatRequest) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

func (x *GetChatRequest) GetCursor() string {
	if x != nil && x.Cursor != nil {
		return *x.Cursor
	}
	return ""
}

type GetChatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        string                 `protobuf:"bytes,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	SellerId      string                 `protobuf:"bytes,3,opt,name=seller_id,json=sellerId,proto3" json:"seller_id,omitempty"`
	BuyerId       string                 `protobuf:"bytes,4,opt,name=buyer_id,json=buyerId,proto3" json:"buyer_id,omitempty"`
	Messages      []*ChatMessage         `protobuf:"bytes,5,rep,name=messages,proto3" json:"messages,omitempty"`
	Cursor        *string                `protobuf:"bytes,6,opt,name=cursor,proto3,oneof" json:"cursor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChatResponse) Reset() {
	*x = GetChatResponse{}
	mi := &file_market_market_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChatResponse) ProtoMessage() {}

func (x *GetChatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetChatResponse.ProtoReflect.Descriptor instead.
func (*GetChatResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{12}
}

func (x *GetChatResponse) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

func (x *GetChatResponse) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *GetChatResponse) GetSellerId() string {
	if x != nil {
		return x.SellerId
	}
	return ""
}

func (x *GetChatResponse) GetBuyerId() string {
	if x != nil {
		return x.BuyerId
	}
	return ""
}

func (x *GetChatResponse) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *GetChatResponse) GetCursor() string {
	if x != nil && x.Cursor != nil {
		return *x.Cursor
	}
	return ""
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	SenderId      string                 `protobuf:"bytes,2,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_market_market_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{13}
}

func (x *ChatMessage) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *ChatMessage) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ChatMessage) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ListNotificationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNotificationsRequest) Reset() {
	*x = ListNotificationsRequest{}
	mi := &file_market_market_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNotificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNotificationsRequest) ProtoMessage() {}

func (x *ListNotificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNotificationsRequest.ProtoReflect.Descriptor instead.
func (*ListNotificationsRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{14}
}

type ListNotificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notifications []*Notification        `protobuf:"bytes,1,rep,name=notifications,proto3" json:"notifications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNotificationsResponse) Reset() {
	*x = ListNotificationsResponse{}
	mi := &file_market_market_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNotificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNotificationsResponse) ProtoMessage() {}

func (x *ListNotificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNotificationsResponse.ProtoReflect.Descriptor instead.
func (*ListNotificationsResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{15}
}

func (x *ListNotificationsResponse) GetNotifications() []*Notification {
	if x != nil {
		return x.Notifications
	}
	return nil
}

type Notification struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	NotificationId string                 `protobuf:"bytes,1,opt,name=notification_id,json=notificationId,proto3" json:"notification_id,omitempty"`
	Content        string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	Link           string                 `protobuf:"bytes,3,opt,name=link,proto3" json:"link,omitempty"`
	IsRead         bool                   `protobuf:"varint,4,opt,name=is_read,json=isRead,proto3" json:"is_read,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Notification) Reset() {
	*x = Notification{}
	mi := &file_market_market_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notification) ProtoMessage() {}

func (x *Notification) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notification.ProtoReflect.Descriptor instead.
func (*Notification) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{16}
}

func (x *Notification) GetNotificationId() string {
	if x != nil {
		return x.NotificationId
	}
	return ""
}

func (x *Notification) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Notification) GetLink() string {
	if x != nil {
		return x.Link
	}
	return ""
}

func (x *Notification) GetIsRead() bool {
	if x != nil {
		return x.IsRead
	}
	return false
}

func (x *Notification) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type MarkNotificationReadRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	NotificationId string                 `protobuf:"bytes,1,opt,name=notification_id,json=notificationId,proto3" json:"notification_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MarkNotificationReadRequest) Reset() {
	*x = MarkNotificationReadRequest{}
	mi := &file_market_market_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkNotificationReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkNotificationReadRequest) ProtoMessage() {}

func (x *MarkNotificationReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkNotificationReadRequest.ProtoReflect.Descriptor instead.
func (*MarkNotificationReadRequest) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{17}
}

func (x *MarkNotificationReadRequest) GetNotificationId() string {
	if x != nil {
		return x.NotificationId
	}
	return ""
}

type MarkNotificationReadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkNotificationReadResponse) Reset() {
	*x = MarkNotificationReadResponse{}
	mi := &file_market_market_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkNotificationReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkNotificationReadResponse) ProtoMessage() {}

func (x *MarkNotificationReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkNotificationReadResponse.ProtoReflect.Descriptor instead.
func (*MarkNotificationReadResponse) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{18}
}

// ServerEvent is the stream payload of Connect.
type ServerEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ServerEvent_RequestSent
	//	*ServerEvent_NewRequest
	//	*ServerEvent_ChatStarted
	//	*ServerEvent_NewMessage
	//	*ServerEvent_Notification
	Event         isServerEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerEvent) Reset() {
	*x = ServerEvent{}
	mi := &file_market_market_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerEvent) ProtoMessage() {}

func (x *ServerEvent) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerEvent.ProtoReflect.Descriptor instead.
func (*ServerEvent) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{19}
}

func (x *ServerEvent) GetEvent() isServerEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ServerEvent) GetRequestSent() *RequestSentEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_RequestSent); ok {
			return x.RequestSent
		}
	}
	return nil
}

func (x *ServerEvent) GetNewRequest() *NewRequestEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_NewRequest); ok {
			return x.NewRequest
		}
	}
	return nil
}

func (x *ServerEvent) GetChatStarted() *ChatStartedEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_ChatStarted); ok {
			return x.ChatStarted
		}
	}
	return nil
}

func (x *ServerEvent) GetNewMessage() *NewMessageEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_NewMessage); ok {
			return x.NewMessage
		}
	}
	return nil
}

func (x *ServerEvent) GetNotification() *NotificationEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_Notification); ok {
			return x.Notification
		}
	}
	return nil
}

type isServerEvent_Event interface {
	isServerEvent_Event()
}

type ServerEvent_RequestSent struct {
	RequestSent *RequestSentEvent `protobuf:"bytes,1,opt,name=request_sent,json=requestSent,proto3,oneof"`
}

type ServerEvent_NewRequest struct {
	NewRequest *NewRequestEvent `protobuf:"bytes,2,opt,name=new_request,json=newRequest,proto3,oneof"`
}

type ServerEvent_ChatStarted struct {
	ChatStarted *ChatStartedEvent `protobuf:"bytes,3,opt,name=chat_started,json=chatStarted,proto3,oneof"`
}

type ServerEvent_NewMessage struct {
	NewMessage *NewMessageEvent `protobuf:"bytes,4,opt,name=new_message,json=newMessage,proto3,oneof"`
}

type ServerEvent_Notification struct {
	Notification *NotificationEvent `protobuf:"bytes,5,opt,name=notification,proto3,oneof"`
}

func (*ServerEvent_RequestSent) isServerEvent_Event() {}

func (*ServerEvent_NewRequest) isServerEvent_Event() {}

func (*ServerEvent_ChatStarted) isServerEvent_Event() {}

func (*ServerEvent_NewMessage) isServerEvent_Event() {}

func (*ServerEvent_Notification) isServerEvent_Event() {}

type RequestSentEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Msg           string                 `protobuf:"bytes,1,opt,name=msg,proto3" json:"msg,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestSentEvent) Reset() {
	*x = RequestSentEvent{}
	mi := &file_market_market_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestSentEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestSentEvent) ProtoMessage() {}

func (x *RequestSentEvent) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestSentEvent.ProtoReflect.Descriptor instead.
func (*RequestSentEvent) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{20}
}

func (x *RequestSentEvent) GetMsg() string {
	if x != nil {
		return x.Msg
	}
	return ""
}

type NewRequestEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductName   string                 `protobuf:"bytes,1,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	BuyerUsername string                 `protobuf:"bytes,3,opt,name=buyer_username,json=buyerUsername,proto3" json:"buyer_username,omitempty"`
	BuyerId       string                 `protobuf:"bytes,4,opt,name=buyer_id,json=buyerId,proto3" json:"buyer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewRequestEvent) Reset() {
	*x = NewRequestEvent{}
	mi := &file_market_market_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewRequestEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewRequestEvent) ProtoMessage() {}

func (x *NewRequestEvent) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewRequestEvent.ProtoReflect.Descriptor instead.
func (*NewRequestEvent) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{21}
}

func (x *NewRequestEvent) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *NewRequestEvent) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *NewRequestEvent) GetBuyerUsername() string {
	if x != nil {
		return x.BuyerUsername
	}
	return ""
}

func (x *NewRequestEvent) GetBuyerId() string {
	if x != nil {
		return x.BuyerId
	}
	return ""
}

type ChatStartedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        string                 `protobuf:"bytes,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatStartedEvent) Reset() {
	*x = ChatStartedEvent{}
	mi := &file_market_market_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatStartedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatStartedEvent) ProtoMessage() {}

func (x *ChatStartedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatStartedEvent.ProtoReflect.Descriptor instead.
func (*ChatStartedEvent) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{22}
}

func (x *ChatStartedEvent) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

type NewMessageEvent struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MessageId      string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	ChatId         string                 `protobuf:"bytes,2,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	Content        string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	SenderId       string                 `protobuf:"bytes,5,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	SenderUsername string                 `protobuf:"bytes,6,opt,name=sender_username,json=senderUsername,proto3" json:"sender_username,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *NewMessageEvent) Reset() {
	*x = NewMessageEvent{}
	mi := &file_market_market_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewMessageEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewMessageEvent) ProtoMessage() {}

func (x *NewMessageEvent) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewMessageEvent.ProtoReflect.Descriptor instead.
func (*NewMessageEvent) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{23}
}

func (x *NewMessageEvent) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *NewMessageEvent) GetChatId() string {
	if x != nil {
		return x.ChatId
	}
	return ""
}

func (x *NewMessageEvent) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *NewMessageEvent) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *NewMessageEvent) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *NewMessageEvent) GetSenderUsername() string {
	if x != nil {
		return x.SenderUsername
	}
	return ""
}

type NotificationEvent struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	NotificationId string                 `protobuf:"bytes,1,opt,name=notification_id,json=notificationId,proto3" json:"notification_id,omitempty"`
	Content        string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	Link           string                 `protobuf:"bytes,3,opt,name=link,proto3" json:"link,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *NotificationEvent) Reset() {
	*x = NotificationEvent{}
	mi := &file_market_market_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NotificationEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NotificationEvent) ProtoMessage() {}

func (x *NotificationEvent) ProtoReflect() protoreflect.Message {
	mi := &file_market_market_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NotificationEvent.ProtoReflect.Descriptor instead.
func (*NotificationEvent) Descriptor() ([]byte, []int) {
	return file_market_market_proto_rawDescGZIP(), []int{24}
}

func (x *NotificationEvent) GetNotificationId() string {
	if x != nil {
		return x.NotificationId
	}
	return ""
}

func (x *NotificationEvent) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *NotificationEvent) GetLink() string {
	if x != nil {
		return x.Link
	}
	return ""
}

func (x *NotificationEvent) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

var File_market_market_proto protoreflect.FileDescriptor

const file_market_market_proto_rawDesc = "" +
	"\n" +
	"\x13market/market.proto\x12\tmarket.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x10\n" +
	"\x0eConnectRequest\"7\n" +
	"\x16RequestPurchaseRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\"\x19\n" +
	"\x17RequestPurchaseResponse\"P\n" +
	"\x14AcceptRequestRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x19\n" +
	"\bbuyer_id\x18\x02 \x01(\tR\abuyerId\"0\n" +
	"\x15AcceptRequestResponse\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\tR\x06chatId\"G\n" +
	"\x12SendMessageRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\tR\x06chatId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"\x15\n" +
	"\x13SendMessageResponse\"0\n" +
	"\x0fMarkSoldRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\"\x12\n" +
	"\x10MarkSoldResponse\"_\n" +
	"\x19UpdatePickupStatusRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12#\n" +
	"\rpickup_status\x18\x02 \x01(\tR\fpickupStatus\"\x1c\n" +
	"\x1aUpdatePickupStatusResponse\"Q\n" +
	"\x0eGetChatRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\tR\x06chatId\x12\x1b\n" +
	"\x06cursor\x18\x02 \x01(\tH\x00R\x06cursor\x88\x01\x01B\t\n" +
	"\a_cursor\"\xdd\x01\n" +
	"\x0fGetChatResponse\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\tR\x06chatId\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\x12\x1b\n" +
	"\tseller_id\x18\x03 \x01(\tR\bsellerId\x12\x19\n" +
	"\bbuyer_id\x18\x04 \x01(\tR\abuyerId\x122\n" +
	"\bmessages\x18\x05 \x03(\v2\x16.market.v1.ChatMessageR\bmessages\x12\x1b\n" +
	"\x06cursor\x18\x06 \x01(\tH\x00R\x06cursor\x88\x01\x01B\t\n" +
	"\a_cursor\"\x9e\x01\n" +
	"\vChatMessage\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x1b\n" +
	"\tsender_id\x18\x02 \x01(\tR\bsenderId\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x1a\n" +
	"\x18ListNotificationsRequest\"Z\n" +
	"\x19ListNotificationsResponse\x12=\n" +
	"\rnotifications\x18\x01 \x03(\v2\x17.market.v1.NotificationR\rnotifications\"\xb9\x01\n" +
	"\fNotification\x12'\n" +
	"\x0fnotification_id\x18\x01 \x01(\tR\x0enotificationId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\x12\n" +
	"\x04link\x18\x03 \x01(\tR\x04link\x12\x17\n" +
	"\ais_read\x18\x04 \x01(\bR\x06isRead\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"F\n" +
	"\x1bMarkNotificationReadRequest\x12'\n" +
	"\x0fnotification_id\x18\x01 \x01(\tR\x0enotificationId\"\x1e\n" +
	"\x1cMarkNotificationReadResponse\"\xdc\x02\n" +
	"\vServerEvent\x12@\n" +
	"\frequest_sent\x18\x01 \x01(\v2\x1b.market.v1.RequestSentEventH\x00R\vrequestSent\x12=\n" +
	"\vnew_request\x18\x02 \x01(\v2\x1a.market.v1.NewRequestEventH\x00R\n" +
	"newRequest\x12@\n" +
	"\fchat_started\x18\x03 \x01(\v2\x1b.market.v1.ChatStartedEventH\x00R\vchatStarted\x12=\n" +
	"\vnew_message\x18\x04 \x01(\v2\x1a.market.v1.NewMessageEventH\x00R\n" +
	"newMessage\x12B\n" +
	"\fnotification\x18\x05 \x01(\v2\x1c.market.v1.NotificationEventH\x00R\fnotificationB\a\n" +
	"\x05event\"$\n" +
	"\x10RequestSentEvent\x12\x10\n" +
	"\x03msg\x18\x01 \x01(\tR\x03msg\"\x95\x01\n" +
	"\x0fNewRequestEvent\x12!\n" +
	"\fproduct_name\x18\x01 \x01(\tR\vproductName\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\x12%\n" +
	"\x0ebuyer_username\x18\x03 \x01(\tR\rbuyerUsername\x12\x19\n" +
	"\bbuyer_id\x18\x04 \x01(\tR\abuyerId\"+\n" +
	"\x10ChatStartedEvent\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\tR\x06chatId\"\xe4\x01\n" +
	"\x0fNewMessageEvent\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x17\n" +
	"\achat_id\x18\x02 \x01(\tR\x06chatId\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12\x1b\n" +
	"\tsender_id\x18\x05 \x01(\tR\bsenderId\x12'\n" +
	"\x0fsender_username\x18\x06 \x01(\tR\x0esenderUsername\"\xa5\x01\n" +
	"\x11NotificationEvent\x12'\n" +
	"\x0fnotification_id\x18\x01 \x01(\tR\x0enotificationId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\x12\n" +
	"\x04link\x18\x03 \x01(\tR\x04link\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt2\xfe\x05\n" +
	"\rMarketService\x12>\n" +
	"\aConnect\x12\x19.market.v1.ConnectRequest\x1a\x16.market.v1.ServerEvent0\x01\x12X\n" +
	"\x0fRequestPurchase\x12!.market.v1.RequestPurchaseRequest\x1a\".market.v1.RequestPurchaseResponse\x12R\n" +
	"\rAcceptRequest\x12\x1f.market.v1.AcceptRequestRequest\x1a .market.v1.AcceptRequestResponse\x12L\n" +
	"\vSendMessage\x12\x1d.market.v1.SendMessageRequest\x1a\x1e.market.v1.SendMessageResponse\x12C\n" +
	"\bMarkSold\x12\x1a.market.v1.MarkSoldRequest\x1a\x1b.market.v1.MarkSoldResponse\x12a\n" +
	"\x12UpdatePickupStatus\x12$.market.v1.UpdatePickupStatusRequest\x1a%.market.v1.UpdatePickupStatusResponse\x12@\n" +
	"\aGetChat\x12\x19.market.v1.GetChatRequest\x1a\x1a.market.v1.GetChatResponse\x12^\n" +
	"\x11ListNotifications\x12#.market.v1.ListNotificationsRequest\x1a$.market.v1.ListNotificationsResponse\x12g\n" +
	"\x14MarkNotificationRead\x12&.market.v1.MarkNotificationReadRequest\x1a'.market.v1.MarkNotificationReadResponseB\x18Z\x16tradepost/proto/marketb\x06proto3"

var (
	file_market_market_proto_rawDescOnce sync.Once
	file_market_market_proto_rawDescData []byte
)

func file_market_market_proto_rawDescGZIP() []byte {
	file_market_market_proto_rawDescOnce.Do(func() {
		file_market_market_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_market_market_proto_rawDesc), len(file_market_market_proto_rawDesc)))
	})
	return file_market_market_proto_rawDescData
}

var file_market_market_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_market_market_proto_goTypes = []any{
	(*ConnectRequest)(nil),               // 0: market.v1.ConnectRequest
	(*RequestPurchaseRequest)(nil),       // 1: market.v1.RequestPurchaseRequest
	(*RequestPurchaseResponse)(nil),      // 2: market.v1.RequestPurchaseResponse
	(*AcceptRequestRequest)(nil),         // 3: market.v1.AcceptRequestRequest
	(*AcceptRequestResponse)(nil),        // 4: market.v1.AcceptRequestResponse
	(*SendMessageRequest)(nil),           // 5: market.v1.SendMessageRequest
	(*SendMessageResponse)(nil),          // 6: market.v1.SendMessageResponse
	(*MarkSoldRequest)(nil),              // 7: market.v1.MarkSoldRequest
	(*MarkSoldResponse)(nil),             // 8: market.v1.MarkSoldResponse
	(*UpdatePickupStatusRequest)(nil),    // 9: market.v1.UpdatePickupStatusRequest
	(*UpdatePickupStatusResponse)(nil),   // 10: market.v1.UpdatePickupStatusResponse
	(*GetChatRequest)(nil),               // 11: market.v1.GetChatRequest
	(*GetChatResponse)(nil),              // 12: market.v1.GetChatResponse
	(*ChatMessage)(nil),                  // 13: market.v1.ChatMessage
	(*ListNotificationsRequest)(nil),     // 14: market.v1.ListNotificationsRequest
	(*ListNotificationsResponse)(nil),    // 15: market.v1.ListNotificationsResponse
	(*Notification)(nil),                 // 16: market.v1.Notification
	(*MarkNotificationReadRequest)(nil),  // 17: market.v1.MarkNotificationReadRequest
	(*MarkNotificationReadResponse)(nil), // 18: market.v1.MarkNotificationReadResponse
	(*ServerEvent)(nil),                  // 19: market.v1.ServerEvent
	(*RequestSentEvent)(nil),             // 20: market.v1.RequestSentEvent
	(*NewRequestEvent)(nil),              // 21: market.v1.NewRequestEvent
	(*ChatStartedEvent)(nil),             // 22: market.v1.ChatStartedEvent
	(*NewMessageEvent)(nil),              // 23: market.v1.NewMessageEvent
	(*NotificationEvent)(nil),            // 24: market.v1.NotificationEvent
	(*timestamppb.Timestamp)(nil),        // 25: google.protobuf.Timestamp
}
var file_market_market_proto_depIdxs = []int32{
	13, // 0: market.v1.GetChatResponse.messages:type_name -> market.v1.ChatMessage
	25, // 1: market.v1.ChatMessage.created_at:type_name -> google.protobuf.Timestamp
	16, // 2: market.v1.ListNotificationsResponse.notifications:type_name -> market.v1.Notification
	25, // 3: market.v1.Notification.created_at:type_name -> google.protobuf.Timestamp
	20, // 4: market.v1.ServerEvent.request_sent:type_name -> market.v1.RequestSentEvent
	21, // 5: market.v1.ServerEvent.new_request:type_name -> market.v1.NewRequestEvent
	22, // 6: market.v1.ServerEvent.chat_started:type_name -> market.v1.ChatStartedEvent
	23, // 7: market.v1.ServerEvent.new_message:type_name -> market.v1.NewMessageEvent
	24, // 8: market.v1.ServerEvent.notification:type_name -> market.v1.NotificationEvent
	25, // 9: market.v1.NewMessageEvent.created_at:type_name -> google.protobuf.Timestamp
	25, // 10: market.v1.NotificationEvent.created_at:type_name -> google.protobuf.Timestamp
	0,  // 11: market.v1.MarketService.Connect:input_type -> market.v1.ConnectRequest
	1,  // 12: market.v1.MarketService.RequestPurchase:input_type -> market.v1.RequestPurchaseRequest
	3,  // 13: market.v1.MarketService.AcceptRequest:input_type -> market.v1.AcceptRequestRequest
	5,  // 14: market.v1.MarketService.SendMessage:input_type -> market.v1.SendMessageRequest
	7,  // 15: market.v1.MarketService.MarkSold:input_type -> market.v1.MarkSoldRequest
	9,  // 16: market.v1.MarketService.UpdatePickupStatus:input_type -> market.v1.UpdatePickupStatusRequest
	11, // 17: market.v1.MarketService.GetChat:input_type -> market.v1.GetChatRequest
	14, // 18: market.v1.MarketService.ListNotifications:input_type -> market.v1.ListNotificationsRequest
	17, // 19: market.v1.MarketService.MarkNotificationRead:input_type -> market.v1.MarkNotificationReadRequest
	19, // 20: market.v1.MarketService.Connect:output_type -> market.v1.ServerEvent
	2,  // 21: market.v1.MarketService.RequestPurchase:output_type -> market.v1.RequestPurchaseResponse
	4,  // 22: market.v1.MarketService.AcceptRequest:output_type -> market.v1.AcceptRequestResponse
	6,  // 23: market.v1.MarketService.SendMessage:output_type -> market.v1.SendMessageResponse
	8,  // 24: market.v1.MarketService.MarkSold:output_type -> market.v1.MarkSoldResponse
	10, // 25: market.v1.MarketService.UpdatePickupStatus:output_type -> market.v1.UpdatePickupStatusResponse
	12, // 26: market.v1.MarketService.GetChat:output_type -> market.v1.GetChatResponse
	15, // 27: market.v1.MarketService.ListNotifications:output_type -> market.v1.ListNotificationsResponse
	18, // 28: market.v1.MarketService.MarkNotificationRead:output_type -> market.v1.MarkNotificationReadResponse
	20, // [20:29] is the sub-list for method output_type
	11, // [11:20] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_market_market_proto_init() }
func file_market_market_proto_init() {
	if File_market_market_proto != nil {
		return
	}
	file_market_market_proto_msgTypes[11].OneofWrappers = []any{}
	file_market_market_proto_msgTypes[12].OneofWrappers = []any{}
	file_market_market_proto_msgTypes[19].OneofWrappers = []any{
		(*ServerEvent_RequestSent)(nil),
		(*ServerEvent_NewRequest)(nil),
		(*ServerEvent_ChatStarted)(nil),
		(*ServerEvent_NewMessage)(nil),
		(*ServerEvent_Notification)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_market_market_proto_rawDesc), len(file_market_market_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_market_market_proto_goTypes,
		DependencyIndexes: file_market_market_proto_depIdxs,
		MessageInfos:      file_market_market_proto_msgTypes,
	}.Build()
	File_market_market_proto = out.File
	file_market_market_proto_goTypes = nil
	file_market_market_proto_depIdxs = nil
}
