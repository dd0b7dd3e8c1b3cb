package usecase

import (
	"context"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
)

// TokenRegistry 是 Token 狀態儲存層的介面
// Load 回傳隔離的副本；操作失敗時 Dispatcher 不會呼叫 Save，
// 所以儲存層永遠只看得到完整套用的狀態
type TokenRegistry interface {
	// Load 載入一筆 Record，不存在時回傳 domain.ErrTokenNotFound
	Load(ctx context.Context, tokenID string) (*domain.Record, error)
	// Save 覆寫既有 Record
	Save(ctx context.Context, rec *domain.Record) error
	// Insert 建立新 Record (鑄造)，ID 重複時回傳 domain.ErrClaimed
	Insert(ctx context.Context, rec *domain.Record) error
	// Remove 刪除 Record (銷毀)
	Remove(ctx context.Context, tokenID string) error
}

// OperatorRegistry 是 Operator 授權儲存層的介面
// 讀取端 (Guard 用的 GetOperatorGrant) 定義在 domain，這裡補上寫入端
type OperatorRegistry interface {
	domain.OperatorStore
	// PutOperatorGrant 寫入 (owner, operator) 的限時授權，覆蓋舊值
	PutOperatorGrant(ctx context.Context, owner, operator string, expires domain.Expiration) error
	// DeleteOperatorGrant 移除授權，不存在時也算成功
	DeleteOperatorGrant(ctx context.Context, owner, operator string) error
}

// Bank 對外撥款的介面，fire-and-forget
// 核心只決定撥款對象與金額，送達失敗不回滾狀態
type Bank interface {
	Send(ctx context.Context, payment domain.Payment) error
}

// Event 一次成功操作的屬性串流 (對應鏈上 Response 的 attributes)
type Event struct {
	Action  string
	Sender  string
	TokenID string
}

// Events 發布操作事件的介面
type Events interface {
	Publish(ctx context.Context, event Event) error
}
