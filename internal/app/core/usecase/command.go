package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
)

// Op 指令種類
// 為了節省記憶體使用 uint8
type Op uint8

const (
	OpMint Op = iota + 1
	OpSetMetadata
	OpTransfer
	OpBurn
	OpApprove
	OpRevoke
	OpApproveAll
	OpRevokeAll

	OpListLongTerm
	OpUnlistLongTerm
	OpReserveLongTerm
	OpRejectLongTerm
	OpCancelLongTerm
	OpActivateLongTerm
	OpDepositLongTerm
	OpWithdrawToLandlord
	OpSetEjari
	OpFinalizeLongTerm

	OpListShortTerm
	OpUnlistShortTerm
	OpReserveShortTerm
	OpApproveShortTerm
	OpRejectShortTerm
	OpCancelShortTerm
	OpFinalizeShortTerm
	OpWithdrawToHost
)

// action 事件屬性用的操作名稱，沿用鏈上合約的 action 字串
func (op Op) action() string {
	switch op {
	case OpMint:
		return "mint"
	case OpSetMetadata:
		return "setmetadata"
	case OpTransfer:
		return "transfer_nft"
	case OpBurn:
		return "burn"
	case OpApprove:
		return "approve"
	case OpRevoke:
		return "revoke"
	case OpApproveAll:
		return "approve_all"
	case OpRevokeAll:
		return "revoke_all"
	case OpListLongTerm:
		return "setlistforlongtermrental"
	case OpUnlistLongTerm:
		return "setunlistforlongtermrental"
	case OpReserveLongTerm:
		return "setreservationforlongterm"
	case OpRejectLongTerm:
		return "rejectreservationforlongterm"
	case OpCancelLongTerm:
		return "cancelreservationforlongterm"
	case OpActivateLongTerm:
		return "proceedlongtermrental"
	case OpDepositLongTerm:
		return "depositforlongtermrental"
	case OpWithdrawToLandlord:
		return "withdrawtolandlord"
	case OpSetEjari:
		return "setejariforlongtermrental"
	case OpFinalizeLongTerm:
		return "finalizelongtermrental"
	case OpListShortTerm:
		return "setlistforshorttermrental"
	case OpUnlistShortTerm:
		return "setunlistforshorttermrental"
	case OpReserveShortTerm:
		return "setreservationforshortterm"
	case OpApproveShortTerm:
		return "setapproveforshortterm"
	case OpRejectShortTerm:
		return "rejectreservationforshortterm"
	case OpCancelShortTerm:
		return "cancelreservationforshortterm"
	case OpFinalizeShortTerm:
		return "finalizeshorttermrental"
	case OpWithdrawToHost:
		return "withdrawtohost"
	default:
		return "unknown"
	}
}

// Command 一條完整的指令封套
// 平面結構，各操作只看自己需要的欄位 (與 proto 的 CommandRequest 對齊)
type Command struct {
	// RefID 外部追蹤號，用於冪等判斷；uuid.Nil 表示不去重
	RefID uuid.UUID
	// Op 指令種類
	Op Op
	// TokenID 目標 Token
	TokenID string
	// Caller 呼叫者地址 (由認證層填入，不信任請求本文)
	Caller string
	// Now 注入的當前時間，只用於授權過期判斷
	Now time.Time
	// Funds 隨指令附上的款項
	Funds domain.Funds

	// Mint / Metadata / 轉移
	TokenURI  string
	Extension []byte
	Recipient string

	// 授權
	Spender  string
	Operator string
	Expires  domain.Expiration

	// 長租
	Listed   bool
	Landlord domain.LandlordTerms
	Tenant   domain.TenantTerms
	Ejari    bool

	// 短租
	Denom           string
	PricePerDay     uint64
	AutoApprove     bool
	AvailablePeriod []string
	RentingPeriod   []string
	Traveler        string

	// 提領
	Amount uint64
}

// Result 一次成功操作的輸出: 撥款指令與事件
type Result struct {
	Action   string
	Payments []domain.Payment
}
