// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: rental.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

// Op 指令種類，與核心層的操作一一對應
type Op int32

const (
	Op_OP_UNSPECIFIED          Op = 0
	Op_OP_MINT                 Op = 1
	Op_OP_SET_METADATA         Op = 2
	Op_OP_TRANSFER             Op = 3
	Op_OP_BURN                 Op = 4
	Op_OP_APPROVE              Op = 5
	Op_OP_REVOKE               Op = 6
	Op_OP_APPROVE_ALL          Op = 7
	Op_OP_REVOKE_ALL           Op = 8
	Op_OP_LIST_LONG_TERM       Op = 9
	Op_OP_UNLIST_LONG_TERM     Op = 10
	Op_OP_RESERVE_LONG_TERM    Op = 11
	Op_OP_REJECT_LONG_TERM     Op = 12
	Op_OP_CANCEL_LONG_TERM     Op = 13
	Op_OP_ACTIVATE_LONG_TERM   Op = 14
	Op_OP_DEPOSIT_LONG_TERM    Op = 15
	Op_OP_WITHDRAW_TO_LANDLORD Op = 16
	Op_OP_SET_EJARI            Op = 17
	Op_OP_FINALIZE_LONG_TERM   Op = 18
	Op_OP_LIST_SHORT_TERM      Op = 19
	Op_OP_UNLIST_SHORT_TERM    Op = 20
	Op_OP_RESERVE_SHORT_TERM   Op = 21
	Op_OP_APPROVE_SHORT_TERM   Op = 22
	Op_OP_REJECT_SHORT_TERM    Op = 23
	Op_OP_CANCEL_SHORT_TERM    Op = 24
	Op_OP_FINALIZE_SHORT_TERM  Op = 25
	Op_OP_WITHDRAW_TO_HOST     Op = 26
)

// Enum value maps for Op.
var (
	Op_name = map[int32]string{
		0:  "OP_UNSPECIFIED",
		1:  "OP_MINT",
		2:  "OP_SET_METADATA",
		3:  "OP_TRANSFER",
		4:  "OP_BURN",
		5:  "OP_APPROVE",
		6:  "OP_REVOKE",
		7:  "OP_APPROVE_ALL",
		8:  "OP_REVOKE_ALL",
		9:  "OP_LIST_LONG_TERM",
		10: "OP_UNLIST_LONG_TERM",
		11: "OP_RESERVE_LONG_TERM",
		12: "OP_REJECT_LONG_TERM",
		13: "OP_CANCEL_LONG_TERM",
		14: "OP_ACTIVATE_LONG_TERM",
		15: "OP_DEPOSIT_LONG_TERM",
		16: "OP_WITHDRAW_TO_LANDLORD",
		17: "OP_SET_EJARI",
		18: "OP_FINALIZE_LONG_TERM",
		19: "OP_LIST_SHORT_TERM",
		20: "OP_UNLIST_SHORT_TERM",
		21: "OP_RESERVE_SHORT_TERM",
		22: "OP_APPROVE_SHORT_TERM",
		23: "OP_REJECT_SHORT_TERM",
		24: "OP_CANCEL_SHORT_TERM",
		25: "OP_FINALIZE_SHORT_TERM",
		26: "OP_WITHDRAW_TO_HOST",
	}
	Op_value = map[string]int32{
		"OP_UNSPECIFIED":          0,
		"OP_MINT":                 1,
		"OP_SET_METADATA":         2,
		"OP_TRANSFER":             3,
		"OP_BURN":                 4,
		"OP_APPROVE":              5,
		"OP_REVOKE":               6,
		"OP_APPROVE_ALL":          7,
		"OP_REVOKE_ALL":           8,
		"OP_LIST_LONG_TERM":       9,
		"OP_UNLIST_LONG_TERM":     10,
		"OP_RESERVE_LONG_TERM":    11,
		"OP_REJECT_LONG_TERM":     12,
		"OP_CANCEL_LONG_TERM":     13,
		"OP_ACTIVATE_LONG_TERM":   14,
		"OP_DEPOSIT_LONG_TERM":    15,
		"OP_WITHDRAW_TO_LANDLORD": 16,
		"OP_SET_EJARI":            17,
		"OP_FINALIZE_LONG_TERM":   18,
		"OP_LIST_SHORT_TERM":      19,
		"OP_UNLIST_SHORT_TERM":    20,
		"OP_RESERVE_SHORT_TERM":   21,
		"OP_APPROVE_SHORT_TERM":   22,
		"OP_REJECT_SHORT_TERM":    23,
		"OP_CANCEL_SHORT_TERM":    24,
		"OP_FINALIZE_SHORT_TERM":  25,
		"OP_WITHDRAW_TO_HOST":     26,
	}
)

func (x Op) Enum() *Op {
	p := new(Op)
	*p = x
	return p
}

func (x Op) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Op) Descriptor() protoreflect.EnumDescriptor {
	return file_rental_proto_enumTypes[0].Descriptor()
}

func (Op) Type() protoreflect.EnumType {
	return &file_rental_proto_enumTypes[0]
}

func (x Op) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Op.Descriptor instead.
func (Op) EnumDescriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{0}
}

// Funds 隨指令附上的款項
type Funds struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Denom         string                 `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount        uint64                 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Funds) Reset() {
	*x = Funds{}
	mi := &file_rental_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Funds) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Funds) ProtoMessage() {}

func (x *Funds) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Funds.ProtoReflect.Descriptor instead.
func (*Funds) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{0}
}

func (x *Funds) GetDenom() string {
	if x != nil {
		return x.Denom
	}
	return ""
}

func (x *Funds) GetAmount() uint64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

// LandlordTerms 長租刊登條件
type LandlordTerms struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Denom             string                 `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	PricePerMonth     uint64                 `protobuf:"varint,2,opt,name=price_per_month,json=pricePerMonth,proto3" json:"price_per_month,omitempty"`
	RefundableDeposit uint64                 `protobuf:"varint,3,opt,name=refundable_deposit,json=refundableDeposit,proto3" json:"refundable_deposit,omitempty"`
	// [check_in, check_out]，格式 "2006/01/02"
	AvailablePeriod []string `protobuf:"bytes,4,rep,name=available_period,json=availablePeriod,proto3" json:"available_period,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *LandlordTerms) Reset() {
	*x = LandlordTerms{}
	mi := &file_rental_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LandlordTerms) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LandlordTerms) ProtoMessage() {}

func (x *LandlordTerms) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LandlordTerms.ProtoReflect.Descriptor instead.
func (*LandlordTerms) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{1}
}

func (x *LandlordTerms) GetDenom() string {
	if x != nil {
		return x.Denom
	}
	return ""
}

func (x *LandlordTerms) GetPricePerMonth() uint64 {
	if x != nil {
		return x.PricePerMonth
	}
	return 0
}

func (x *LandlordTerms) GetRefundableDeposit() uint64 {
	if x != nil {
		return x.RefundableDeposit
	}
	return 0
}

func (x *LandlordTerms) GetAvailablePeriod() []string {
	if x != nil {
		return x.AvailablePeriod
	}
	return nil
}

// TenantTerms 長租承租條件
type TenantTerms struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DepositAmount uint64                 `protobuf:"varint,1,opt,name=deposit_amount,json=depositAmount,proto3" json:"deposit_amount,omitempty"`
	DepositDenom  string                 `protobuf:"bytes,2,opt,name=deposit_denom,json=depositDenom,proto3" json:"deposit_denom,omitempty"`
	RentingPeriod []string               `protobuf:"bytes,3,rep,name=renting_period,json=rentingPeriod,proto3" json:"renting_period,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TenantTerms) Reset() {
	*x = TenantTerms{}
	mi := &file_rental_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TenantTerms) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TenantTerms) ProtoMessage() {}

func (x *TenantTerms) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TenantTerms.ProtoReflect.Descriptor instead.
func (*TenantTerms) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{2}
}

func (x *TenantTerms) GetDepositAmount() uint64 {
	if x != nil {
		return x.DepositAmount
	}
	return 0
}

func (x *TenantTerms) GetDepositDenom() string {
	if x != nil {
		return x.DepositDenom
	}
	return ""
}

func (x *TenantTerms) GetRentingPeriod() []string {
	if x != nil {
		return x.RentingPeriod
	}
	return nil
}

// CommandRequest 平面指令封套，各操作只看自己需要的欄位
type CommandRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// ref_id 外部追蹤號 (UUID 字串)，用於冪等判斷；空字串表示不去重
	RefId   string `protobuf:"bytes,1,opt,name=ref_id,json=refId,proto3" json:"ref_id,omitempty"`
	Op      Op     `protobuf:"varint,2,opt,name=op,proto3,enum=rental.Op" json:"op,omitempty"`
	TokenId string `protobuf:"bytes,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Funds   *Funds `protobuf:"bytes,4,opt,name=funds,proto3" json:"funds,omitempty"`
	// Mint / Metadata / 轉移
	TokenUri  string `protobuf:"bytes,5,opt,name=token_uri,json=tokenUri,proto3" json:"token_uri,omitempty"`
	Extension []byte `protobuf:"bytes,6,opt,name=extension,proto3" json:"extension,omitempty"`
	Recipient string `protobuf:"bytes,7,opt,name=recipient,proto3" json:"recipient,omitempty"`
	// 授權
	Spender  string `protobuf:"bytes,8,opt,name=spender,proto3" json:"spender,omitempty"`
	Operator string `protobuf:"bytes,9,opt,name=operator,proto3" json:"operator,omitempty"`
	// expires_at Unix 秒，0 表示永不過期
	ExpiresAt int64 `protobuf:"varint,10,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	// 長租
	Listed   bool           `protobuf:"varint,11,opt,name=listed,proto3" json:"listed,omitempty"`
	Landlord *LandlordTerms `protobuf:"bytes,12,opt,name=landlord,proto3" json:"landlord,omitempty"`
	Tenant   *TenantTerms   `protobuf:"bytes,13,opt,name=tenant,proto3" json:"tenant,omitempty"`
	Ejari    bool           `protobuf:"varint,14,opt,name=ejari,proto3" json:"ejari,omitempty"`
	// 短租
	Denom           string   `protobuf:"bytes,15,opt,name=denom,proto3" json:"denom,omitempty"`
	PricePerDay     uint64   `protobuf:"varint,16,opt,name=price_per_day,json=pricePerDay,proto3" json:"price_per_day,omitempty"`
	AutoApprove     bool     `protobuf:"varint,17,opt,name=auto_approve,json=autoApprove,proto3" json:"auto_approve,omitempty"`
	AvailablePeriod []string `protobuf:"bytes,18,rep,name=available_period,json=availablePeriod,proto3" json:"available_period,omitempty"`
	RentingPeriod   []string `protobuf:"bytes,19,rep,name=renting_period,json=rentingPeriod,proto3" json:"renting_period,omitempty"`
	Traveler        string   `protobuf:"bytes,20,opt,name=traveler,proto3" json:"traveler,omitempty"`
	// 提領
	Amount        uint64 `protobuf:"varint,21,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandRequest) Reset() {
	*x = CommandRequest{}
	mi := &file_rental_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandRequest) ProtoMessage() {}

func (x *CommandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandRequest.ProtoReflect.Descriptor instead.
func (*CommandRequest) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{3}
}

func (x *CommandRequest) GetRefId() string {
	if x != nil {
		return x.RefId
	}
	return ""
}

func (x *CommandRequest) GetOp() Op {
	if x != nil {
		return x.Op
	}
	return Op_OP_UNSPECIFIED
}

func (x *CommandRequest) GetTokenId() string {
	if x != nil {
		return x.TokenId
	}
	return ""
}

func (x *CommandRequest) GetFunds() *Funds {
	if x != nil {
		return x.Funds
	}
	return nil
}

func (x *CommandRequest) GetTokenUri() string {
	if x != nil {
		return x.TokenUri
	}
	return ""
}

func (x *CommandRequest) GetExtension() []byte {
	if x != nil {
		return x.Extension
	}
	return nil
}

func (x *CommandRequest) GetRecipient() string {
	if x != nil {
		return x.Recipient
	}
	return ""
}

func (x *CommandRequest) GetSpender() string {
	if x != nil {
		return x.Spender
	}
	return ""
}

func (x *CommandRequest) GetOperator() string {
	if x != nil {
		return x.Operator
	}
	return ""
}

func (x *CommandRequest) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

func (x *CommandRequest) GetListed() bool {
	if x != nil {
		return x.Listed
	}
	return false
}

func (x *CommandRequest) GetLandlord() *LandlordTerms {
	if x != nil {
		return x.Landlord
	}
	return nil
}

func (x *CommandRequest) GetTenant() *TenantTerms {
	if x != nil {
		return x.Tenant
	}
	return nil
}

func (x *CommandRequest) GetEjari() bool {
	if x != nil {
		return x.Ejari
	}
	return false
}

func (x *CommandRequest) GetDenom() string {
	if x != nil {
		return x.Denom
	}
	return ""
}

func (x *CommandRequest) GetPricePerDay() uint64 {
	if x != nil {
		return x.PricePerDay
	}
	return 0
}

func (x *CommandRequest) GetAutoApprove() bool {
	if x != nil {
		return x.AutoApprove
	}
	return false
}

func (x *CommandRequest) GetAvailablePeriod() []string {
	if x != nil {
		return x.AvailablePeriod
	}
	return nil
}

func (x *CommandRequest) GetRentingPeriod() []string {
	if x != nil {
		return x.RentingPeriod
	}
	return nil
}

func (x *CommandRequest) GetTraveler() string {
	if x != nil {
		return x.Traveler
	}
	return ""
}

func (x *CommandRequest) GetAmount() uint64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

// Payment 操作產生的撥款指令
type Payment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ToAddress     string                 `protobuf:"bytes,1,opt,name=to_address,json=toAddress,proto3" json:"to_address,omitempty"`
	Amount        uint64                 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Denom         string                 `protobuf:"bytes,3,opt,name=denom,proto3" json:"denom,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Payment) Reset() {
	*x = Payment{}
	mi := &file_rental_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Payment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Payment) ProtoMessage() {}

func (x *Payment) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Payment.ProtoReflect.Descriptor instead.
func (*Payment) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{4}
}

func (x *Payment) GetToAddress() string {
	if x != nil {
		return x.ToAddress
	}
	return ""
}

func (x *Payment) GetAmount() uint64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Payment) GetDenom() string {
	if x != nil {
		return x.Denom
	}
	return ""
}

type CommandResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Success bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	// 失敗時的業務錯誤訊息
	Message       string     `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Action        string     `protobuf:"bytes,3,opt,name=action,proto3" json:"action,omitempty"`
	Payments      []*Payment `protobuf:"bytes,4,rep,name=payments,proto3" json:"payments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandResponse) Reset() {
	*x = CommandResponse{}
	mi := &file_rental_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandResponse) ProtoMessage() {}

func (x *CommandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandResponse.ProtoReflect.Descriptor instead.
func (*CommandResponse) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{5}
}

func (x *CommandResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *CommandResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *CommandResponse) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *CommandResponse) GetPayments() []*Payment {
	if x != nil {
		return x.Payments
	}
	return nil
}

type GetTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TokenId       string                 `protobuf:"bytes,1,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTokenRequest) Reset() {
	*x = GetTokenRequest{}
	mi := &file_rental_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTokenRequest) ProtoMessage() {}

func (x *GetTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTokenRequest.ProtoReflect.Descriptor instead.
func (*GetTokenRequest) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{6}
}

func (x *GetTokenRequest) GetTokenId() string {
	if x != nil {
		return x.TokenId
	}
	return ""
}

type Approval struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Spender       string                 `protobuf:"bytes,1,opt,name=spender,proto3" json:"spender,omitempty"`
	ExpiresAt     int64                  `protobuf:"varint,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Approval) Reset() {
	*x = Approval{}
	mi := &file_rental_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Approval) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Approval) ProtoMessage() {}

func (x *Approval) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Approval.ProtoReflect.Descriptor instead.
func (*Approval) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{7}
}

func (x *Approval) GetSpender() string {
	if x != nil {
		return x.Spender
	}
	return ""
}

func (x *Approval) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

type Booking struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	RentingPeriod []string               `protobuf:"bytes,2,rep,name=renting_period,json=rentingPeriod,proto3" json:"renting_period,omitempty"`
	DepositAmount uint64                 `protobuf:"varint,3,opt,name=deposit_amount,json=depositAmount,proto3" json:"deposit_amount,omitempty"`
	Approved      bool                   `protobuf:"varint,4,opt,name=approved,proto3" json:"approved,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Booking) Reset() {
	*x = Booking{}
	mi := &file_rental_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Booking) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Booking) ProtoMessage() {}

func (x *Booking) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Booking.ProtoReflect.Descriptor instead.
func (*Booking) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{8}
}

func (x *Booking) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Booking) GetRentingPeriod() []string {
	if x != nil {
		return x.RentingPeriod
	}
	return nil
}

func (x *Booking) GetDepositAmount() uint64 {
	if x != nil {
		return x.DepositAmount
	}
	return 0
}

func (x *Booking) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

type LongTermRental struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Listed        bool                   `protobuf:"varint,1,opt,name=listed,proto3" json:"listed,omitempty"`
	Landlord      *LandlordTerms         `protobuf:"bytes,2,opt,name=landlord,proto3" json:"landlord,omitempty"`
	Reserved      bool                   `protobuf:"varint,3,opt,name=reserved,proto3" json:"reserved,omitempty"`
	TenantAddress string                 `protobuf:"bytes,4,opt,name=tenant_address,json=tenantAddress,proto3" json:"tenant_address,omitempty"`
	Tenant        *TenantTerms           `protobuf:"bytes,5,opt,name=tenant,proto3" json:"tenant,omitempty"`
	RentingFlag   bool                   `protobuf:"varint,6,opt,name=renting_flag,json=rentingFlag,proto3" json:"renting_flag,omitempty"`
	// 0 未設定, 1 已確認為否, 2 已確認為是
	EjariFlag      uint32 `protobuf:"varint,7,opt,name=ejari_flag,json=ejariFlag,proto3" json:"ejari_flag,omitempty"`
	DepositTotal   uint64 `protobuf:"varint,8,opt,name=deposit_total,json=depositTotal,proto3" json:"deposit_total,omitempty"`
	WithdrawnTotal uint64 `protobuf:"varint,9,opt,name=withdrawn_total,json=withdrawnTotal,proto3" json:"withdrawn_total,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *LongTermRental) Reset() {
	*x = LongTermRental{}
	mi := &file_rental_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LongTermRental) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LongTermRental) ProtoMessage() {}

func (x *LongTermRental) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LongTermRental.ProtoReflect.Descriptor instead.
func (*LongTermRental) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{9}
}

func (x *LongTermRental) GetListed() bool {
	if x != nil {
		return x.Listed
	}
	return false
}

func (x *LongTermRental) GetLandlord() *LandlordTerms {
	if x != nil {
		return x.Landlord
	}
	return nil
}

func (x *LongTermRental) GetReserved() bool {
	if x != nil {
		return x.Reserved
	}
	return false
}

func (x *LongTermRental) GetTenantAddress() string {
	if x != nil {
		return x.TenantAddress
	}
	return ""
}

func (x *LongTermRental) GetTenant() *TenantTerms {
	if x != nil {
		return x.Tenant
	}
	return nil
}

func (x *LongTermRental) GetRentingFlag() bool {
	if x != nil {
		return x.RentingFlag
	}
	return false
}

func (x *LongTermRental) GetEjariFlag() uint32 {
	if x != nil {
		return x.EjariFlag
	}
	return 0
}

func (x *LongTermRental) GetDepositTotal() uint64 {
	if x != nil {
		return x.DepositTotal
	}
	return 0
}

func (x *LongTermRental) GetWithdrawnTotal() uint64 {
	if x != nil {
		return x.WithdrawnTotal
	}
	return 0
}

type ShortTermRental struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Listed          bool                   `protobuf:"varint,1,opt,name=listed,proto3" json:"listed,omitempty"`
	PricePerDay     uint64                 `protobuf:"varint,2,opt,name=price_per_day,json=pricePerDay,proto3" json:"price_per_day,omitempty"`
	Denom           string                 `protobuf:"bytes,3,opt,name=denom,proto3" json:"denom,omitempty"`
	AutoApprove     bool                   `protobuf:"varint,4,opt,name=auto_approve,json=autoApprove,proto3" json:"auto_approve,omitempty"`
	AvailablePeriod []string               `protobuf:"bytes,5,rep,name=available_period,json=availablePeriod,proto3" json:"available_period,omitempty"`
	Bookings        []*Booking             `protobuf:"bytes,6,rep,name=bookings,proto3" json:"bookings,omitempty"`
	DepositTotal    uint64                 `protobuf:"varint,7,opt,name=deposit_total,json=depositTotal,proto3" json:"deposit_total,omitempty"`
	WithdrawnTotal  uint64                 `protobuf:"varint,8,opt,name=withdrawn_total,json=withdrawnTotal,proto3" json:"withdrawn_total,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ShortTermRental) Reset() {
	*x = ShortTermRental{}
	mi := &file_rental_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShortTermRental) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShortTermRental) ProtoMessage() {}

func (x *ShortTermRental) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShortTermRental.ProtoReflect.Descriptor instead.
func (*ShortTermRental) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{10}
}

func (x *ShortTermRental) GetListed() bool {
	if x != nil {
		return x.Listed
	}
	return false
}

func (x *ShortTermRental) GetPricePerDay() uint64 {
	if x != nil {
		return x.PricePerDay
	}
	return 0
}

func (x *ShortTermRental) GetDenom() string {
	if x != nil {
		return x.Denom
	}
	return ""
}

func (x *ShortTermRental) GetAutoApprove() bool {
	if x != nil {
		return x.AutoApprove
	}
	return false
}

func (x *ShortTermRental) GetAvailablePeriod() []string {
	if x != nil {
		return x.AvailablePeriod
	}
	return nil
}

func (x *ShortTermRental) GetBookings() []*Booking {
	if x != nil {
		return x.Bookings
	}
	return nil
}

func (x *ShortTermRental) GetDepositTotal() uint64 {
	if x != nil {
		return x.DepositTotal
	}
	return 0
}

func (x *ShortTermRental) GetWithdrawnTotal() uint64 {
	if x != nil {
		return x.WithdrawnTotal
	}
	return 0
}

type GetTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TokenId       string                 `protobuf:"bytes,1,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Owner         string                 `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Approvals     []*Approval            `protobuf:"bytes,3,rep,name=approvals,proto3" json:"approvals,omitempty"`
	TokenUri      string                 `protobuf:"bytes,4,opt,name=token_uri,json=tokenUri,proto3" json:"token_uri,omitempty"`
	Extension     []byte                 `protobuf:"bytes,5,opt,name=extension,proto3" json:"extension,omitempty"`
	LongTerm      *LongTermRental        `protobuf:"bytes,6,opt,name=long_term,json=longTerm,proto3" json:"long_term,omitempty"`
	ShortTerm     *ShortTermRental       `protobuf:"bytes,7,opt,name=short_term,json=shortTerm,proto3" json:"short_term,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTokenResponse) Reset() {
	*x = GetTokenResponse{}
	mi := &file_rental_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTokenResponse) ProtoMessage() {}

func (x *GetTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rental_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTokenResponse.ProtoReflect.Descriptor instead.
func (*GetTokenResponse) Descriptor() ([]byte, []int) {
	return file_rental_proto_rawDescGZIP(), []int{11}
}

func (x *GetTokenResponse) GetTokenId() string {
	if x != nil {
		return x.TokenId
	}
	return ""
}

func (x *GetTokenResponse) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *GetTokenResponse) GetApprovals() []*Approval {
	if x != nil {
		return x.Approvals
	}
	return nil
}

func (x *GetTokenResponse) GetTokenUri() string {
	if x != nil {
		return x.TokenUri
	}
	return ""
}

func (x *GetTokenResponse) GetExtension() []byte {
	if x != nil {
		return x.Extension
	}
	return nil
}

func (x *GetTokenResponse) GetLongTerm() *LongTermRental {
	if x != nil {
		return x.LongTerm
	}
	return nil
}

func (x *GetTokenResponse) GetShortTerm() *ShortTermRental {
	if x != nil {
		return x.ShortTerm
	}
	return nil
}

var File_rental_proto protoreflect.FileDescriptor

const file_rental_proto_rawDesc = "" +
	"\n" +
	"\frental.proto\x12\x06rental\"5\n" +
	"\x05Funds\x12\x14\n" +
	"\x05denom\x18\x01 \x01(\tR\x05denom\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x04R\x06amount\"\xa7\x01\n" +
	"\rLandlordTerms\x12\x14\n" +
	"\x05denom\x18\x01 \x01(\tR\x05denom\x12&\n" +
	"\x0fprice_per_month\x18\x02 \x01(\x04R\rpricePerMonth\x12-\n" +
	"\x12refundable_deposit\x18\x03 \x01(\x04R\x11refundableDeposit\x12)\n" +
	"\x10available_period\x18\x04 \x03(\tR\x0favailablePeriod\"\x80\x01\n" +
	"\vTenantTerms\x12%\n" +
	"\x0edeposit_amount\x18\x01 \x01(\x04R\rdepositAmount\x12#\n" +
	"\rdeposit_denom\x18\x02 \x01(\tR\fdepositDenom\x12%\n" +
	"\x0erenting_period\x18\x03 \x03(\tR\rrentingPeriod\"\xa2\x05\n" +
	"\x0eCommandRequest\x12\x15\n" +
	"\x06ref_id\x18\x01 \x01(\tR\x05refId\x12\x1a\n" +
	"\x02op\x18\x02 \x01(\x0e2\n" +
	".rental.OpR\x02op\x12\x19\n" +
	"\btoken_id\x18\x03 \x01(\tR\atokenId\x12#\n" +
	"\x05funds\x18\x04 \x01(\v2\r.rental.FundsR\x05funds\x12\x1b\n" +
	"\ttoken_uri\x18\x05 \x01(\tR\btokenUri\x12\x1c\n" +
	"\textension\x18\x06 \x01(\fR\textension\x12\x1c\n" +
	"\trecipient\x18\a \x01(\tR\trecipient\x12\x18\n" +
	"\aspender\x18\b \x01(\tR\aspender\x12\x1a\n" +
	"\boperator\x18\t \x01(\tR\boperator\x12\x1d\n" +
	"\n" +
	"expires_at\x18\n" +
	" \x01(\x03R\texpiresAt\x12\x16\n" +
	"\x06listed\x18\v \x01(\bR\x06listed\x121\n" +
	"\blandlord\x18\f \x01(\v2\x15.rental.LandlordTermsR\blandlord\x12+\n" +
	"\x06tenant\x18\r \x01(\v2\x13.rental.TenantTermsR\x06tenant\x12\x14\n" +
	"\x05ejari\x18\x0e \x01(\bR\x05ejari\x12\x14\n" +
	"\x05denom\x18\x0f \x01(\tR\x05denom\x12\"\n" +
	"\rprice_per_day\x18\x10 \x01(\x04R\vpricePerDay\x12!\n" +
	"\fauto_approve\x18\x11 \x01(\bR\vautoApprove\x12)\n" +
	"\x10available_period\x18\x12 \x03(\tR\x0favailablePeriod\x12%\n" +
	"\x0erenting_period\x18\x13 \x03(\tR\rrentingPeriod\x12\x1a\n" +
	"\btraveler\x18\x14 \x01(\tR\btraveler\x12\x16\n" +
	"\x06amount\x18\x15 \x01(\x04R\x06amount\"V\n" +
	"\aPayment\x12\x1d\n" +
	"\n" +
	"to_address\x18\x01 \x01(\tR\ttoAddress\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x04R\x06amount\x12\x14\n" +
	"\x05denom\x18\x03 \x01(\tR\x05denom\"\x8a\x01\n" +
	"\x0fCommandResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x16\n" +
	"\x06action\x18\x03 \x01(\tR\x06action\x12+\n" +
	"\bpayments\x18\x04 \x03(\v2\x0f.rental.PaymentR\bpayments\",\n" +
	"\x0fGetTokenRequest\x12\x19\n" +
	"\btoken_id\x18\x01 \x01(\tR\atokenId\"C\n" +
	"\bApproval\x12\x18\n" +
	"\aspender\x18\x01 \x01(\tR\aspender\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x02 \x01(\x03R\texpiresAt\"\x8d\x01\n" +
	"\aBooking\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12%\n" +
	"\x0erenting_period\x18\x02 \x03(\tR\rrentingPeriod\x12%\n" +
	"\x0edeposit_amount\x18\x03 \x01(\x04R\rdepositAmount\x12\x1a\n" +
	"\bapproved\x18\x04 \x01(\bR\bapproved\"\xdb\x02\n" +
	"\x0eLongTermRental\x12\x16\n" +
	"\x06listed\x18\x01 \x01(\bR\x06listed\x121\n" +
	"\blandlord\x18\x02 \x01(\v2\x15.rental.LandlordTermsR\blandlord\x12\x1a\n" +
	"\breserved\x18\x03 \x01(\bR\breserved\x12%\n" +
	"\x0etenant_address\x18\x04 \x01(\tR\rtenantAddress\x12+\n" +
	"\x06tenant\x18\x05 \x01(\v2\x13.rental.TenantTermsR\x06tenant\x12!\n" +
	"\frenting_flag\x18\x06 \x01(\bR\vrentingFlag\x12\x1d\n" +
	"\n" +
	"ejari_flag\x18\a \x01(\rR\tejariFlag\x12#\n" +
	"\rdeposit_total\x18\b \x01(\x04R\fdepositTotal\x12'\n" +
	"\x0fwithdrawn_total\x18\t \x01(\x04R\x0ewithdrawnTotal\"\xac\x02\n" +
	"\x0fShortTermRental\x12\x16\n" +
	"\x06listed\x18\x01 \x01(\bR\x06listed\x12\"\n" +
	"\rprice_per_day\x18\x02 \x01(\x04R\vpricePerDay\x12\x14\n" +
	"\x05denom\x18\x03 \x01(\tR\x05denom\x12!\n" +
	"\fauto_approve\x18\x04 \x01(\bR\vautoApprove\x12)\n" +
	"\x10available_period\x18\x05 \x03(\tR\x0favailablePeriod\x12+\n" +
	"\bbookings\x18\x06 \x03(\v2\x0f.rental.BookingR\bbookings\x12#\n" +
	"\rdeposit_total\x18\a \x01(\x04R\fdepositTotal\x12'\n" +
	"\x0fwithdrawn_total\x18\b \x01(\x04R\x0ewithdrawnTotal\"\x9b\x02\n" +
	"\x10GetTokenResponse\x12\x19\n" +
	"\btoken_id\x18\x01 \x01(\tR\atokenId\x12\x14\n" +
	"\x05owner\x18\x02 \x01(\tR\x05owner\x12.\n" +
	"\tapprovals\x18\x03 \x03(\v2\x10.rental.ApprovalR\tapprovals\x12\x1b\n" +
	"\ttoken_uri\x18\x04 \x01(\tR\btokenUri\x12\x1c\n" +
	"\textension\x18\x05 \x01(\fR\textension\x123\n" +
	"\tlong_term\x18\x06 \x01(\v2\x16.rental.LongTermRentalR\blongTerm\x126\n" +
	"\n" +
	"short_term\x18\a \x01(\v2\x17.rental.ShortTermRentalR\tshortTerm*\xea\x04\n" +
	"\x02Op\x12\x12\n" +
	"\x0eOP_UNSPECIFIED\x10\x00\x12\v\n" +
	"\aOP_MINT\x10\x01\x12\x13\n" +
	"\x0fOP_SET_METADATA\x10\x02\x12\x0f\n" +
	"\vOP_TRANSFER\x10\x03\x12\v\n" +
	"\aOP_BURN\x10\x04\x12\x0e\n" +
	"\n" +
	"OP_APPROVE\x10\x05\x12\r\n" +
	"\tOP_REVOKE\x10\x06\x12\x12\n" +
	"\x0eOP_APPROVE_ALL\x10\a\x12\x11\n" +
	"\rOP_REVOKE_ALL\x10\b\x12\x15\n" +
	"\x11OP_LIST_LONG_TERM\x10\t\x12\x17\n" +
	"\x13OP_UNLIST_LONG_TERM\x10\n" +
	"\x12\x18\n" +
	"\x14OP_RESERVE_LONG_TERM\x10\v\x12\x17\n" +
	"\x13OP_REJECT_LONG_TERM\x10\f\x12\x17\n" +
	"\x13OP_CANCEL_LONG_TERM\x10\r\x12\x19\n" +
	"\x15OP_ACTIVATE_LONG_TERM\x10\x0e\x12\x18\n" +
	"\x14OP_DEPOSIT_LONG_TERM\x10\x0f\x12\x1b\n" +
	"\x17OP_WITHDRAW_TO_LANDLORD\x10\x10\x12\x10\n" +
	"\fOP_SET_EJARI\x10\x11\x12\x19\n" +
	"\x15OP_FINALIZE_LONG_TERM\x10\x12\x12\x16\n" +
	"\x12OP_LIST_SHORT_TERM\x10\x13\x12\x18\n" +
	"\x14OP_UNLIST_SHORT_TERM\x10\x14\x12\x19\n" +
	"\x15OP_RESERVE_SHORT_TERM\x10\x15\x12\x19\n" +
	"\x15OP_APPROVE_SHORT_TERM\x10\x16\x12\x18\n" +
	"\x14OP_REJECT_SHORT_TERM\x10\x17\x12\x18\n" +
	"\x14OP_CANCEL_SHORT_TERM\x10\x18\x12\x1a\n" +
	"\x16OP_FINALIZE_SHORT_TERM\x10\x19\x12\x17\n" +
	"\x13OP_WITHDRAW_TO_HOST\x10\x1a2\x8a\x01\n" +
	"\rRentalService\x12:\n" +
	"\aExecute\x12\x16.rental.CommandRequest\x1a\x17.rental.CommandResponse\x12=\n" +
	"\bGetToken\x12\x17.rental.GetTokenRequest\x1a\x18.rental.GetTokenResponseB/Z-github.com/codedestate/go-rental-ledger/protob\x06proto3"

var (
	file_rental_proto_rawDescOnce sync.Once
	file_rental_proto_rawDescData []byte
)

func file_rental_proto_rawDescGZIP() []byte {
	file_rental_proto_rawDescOnce.Do(func() {
		file_rental_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rental_proto_rawDesc), len(file_rental_proto_rawDesc)))
	})
	return file_rental_proto_rawDescData
}

var file_rental_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_rental_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_rental_proto_goTypes = []any{
	(Op)(0),                  // 0: rental.Op
	(*Funds)(nil),            // 1: rental.Funds
	(*LandlordTerms)(nil),    // 2: rental.LandlordTerms
	(*TenantTerms)(nil),      // 3: rental.TenantTerms
	(*CommandRequest)(nil),   // 4: rental.CommandRequest
	(*Payment)(nil),          // 5: rental.Payment
	(*CommandResponse)(nil),  // 6: rental.CommandResponse
	(*GetTokenRequest)(nil),  // 7: rental.GetTokenRequest
	(*Approval)(nil),         // 8: rental.Approval
	(*Booking)(nil),          // 9: rental.Booking
	(*LongTermRental)(nil),   // 10: rental.LongTermRental
	(*ShortTermRental)(nil),  // 11: rental.ShortTermRental
	(*GetTokenResponse)(nil), // 12: rental.GetTokenResponse
}
var file_rental_proto_depIdxs = []int32{
	0,  // 0: rental.CommandRequest.op:type_name -> rental.Op
	1,  // 1: rental.CommandRequest.funds:type_name -> rental.Funds
	2,  // 2: rental.CommandRequest.landlord:type_name -> rental.LandlordTerms
	3,  // 3: rental.CommandRequest.tenant:type_name -> rental.TenantTerms
	5,  // 4: rental.CommandResponse.payments:type_name -> rental.Payment
	2,  // 5: rental.LongTermRental.landlord:type_name -> rental.LandlordTerms
	3,  // 6: rental.LongTermRental.tenant:type_name -> rental.TenantTerms
	9,  // 7: rental.ShortTermRental.bookings:type_name -> rental.Booking
	8,  // 8: rental.GetTokenResponse.approvals:type_name -> rental.Approval
	10, // 9: rental.GetTokenResponse.long_term:type_name -> rental.LongTermRental
	11, // 10: rental.GetTokenResponse.short_term:type_name -> rental.ShortTermRental
	4,  // 11: rental.RentalService.Execute:input_type -> rental.CommandRequest
	7,  // 12: rental.RentalService.GetToken:input_type -> rental.GetTokenRequest
	6,  // 13: rental.RentalService.Execute:output_type -> rental.CommandResponse
	12, // 14: rental.RentalService.GetToken:output_type -> rental.GetTokenResponse
	13, // [13:15] is the sub-list for method output_type
	11, // [11:13] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_rental_proto_init() }
func file_rental_proto_init() {
	if File_rental_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rental_proto_rawDesc), len(file_rental_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_rental_proto_goTypes,
		DependencyIndexes: file_rental_proto_depIdxs,
		EnumInfos:         file_rental_proto_enumTypes,
		MessageInfos:      file_rental_proto_msgTypes,
	}.Build()
	File_rental_proto = out.File
	file_rental_proto_goTypes = nil
	file_rental_proto_depIdxs = nil
}
