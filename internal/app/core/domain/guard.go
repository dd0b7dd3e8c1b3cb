package domain

import (
	"context"
	"time"
)

// OperatorStore 查詢 Operator 授權的介面
// Operator 授權是 (owner, operator) 為鍵的限時全權委託
type OperatorStore interface {
	GetOperatorGrant(ctx context.Context, owner, operator string) (Expiration, bool, error)
}

// Guard 決定呼叫者能否對 Record 執行 approve 類或 send 類的操作
// 每一個會改變狀態的引擎操作都先經過這兩個判斷
type Guard struct {
	operators OperatorStore
}

func NewGuard(operators OperatorStore) *Guard {
	return &Guard{operators: operators}
}

// CanApprove 判斷呼叫者是否能執行 approve 類操作
// (刊登/下架/駁回/Ejari/提領)
//
// 順序: 擁有者 -> 未過期的 Operator 授權 -> ErrNotOwner
func (g *Guard) CanApprove(ctx context.Context, rec *Record, caller string, now time.Time) error {
	if rec.Owner == caller {
		return nil
	}
	grant, ok, err := g.operators.GetOperatorGrant(ctx, rec.Owner, caller)
	if err != nil {
		return err
	}
	if !ok || grant.IsExpired(now) {
		return ErrNotOwner
	}
	return nil
}

// CanSend 判斷呼叫者是否能執行 send 類操作
// (完成租約/啟動/轉移/銷毀)
//
// 順序: 擁有者 -> 未過期的單一 Token 授權 -> 未過期的 Operator 授權 -> ErrNotOwner
func (g *Guard) CanSend(ctx context.Context, rec *Record, caller string, now time.Time) error {
	if rec.Owner == caller {
		return nil
	}
	for _, apr := range rec.Approvals {
		if apr.Spender == caller && !apr.Expires.IsExpired(now) {
			return nil
		}
	}
	grant, ok, err := g.operators.GetOperatorGrant(ctx, rec.Owner, caller)
	if err != nil {
		return err
	}
	if !ok || grant.IsExpired(now) {
		return ErrNotOwner
	}
	return nil
}
