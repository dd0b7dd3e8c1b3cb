package domain

import (
	"context"
	"time"
)

// Token Registry 維護操作: metadata / 轉移 / 單一 Token 授權

// SetMetadata 更新 Token URI (approve 類授權)
func (r *Record) SetMetadata(ctx context.Context, g *Guard, caller string, now time.Time, tokenURI string) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}
	r.TokenURI = tokenURI
	return nil
}

// Transfer 轉移擁有權 (send 類授權)
// 轉移後清空全部既有授權
func (r *Record) Transfer(ctx context.Context, g *Guard, caller string, now time.Time, recipient string) error {
	if err := g.CanSend(ctx, r, caller, now); err != nil {
		return err
	}
	r.Owner = recipient
	r.Approvals = nil
	return nil
}

// UpdateApproval 新增或移除單一 Spender 的授權 (approve 類授權)
// add == true 時先移除同一 Spender 的舊授權再寫入新的；
// 新授權建立當下就已過期視為無效資料，回傳 ErrExpired
func (r *Record) UpdateApproval(ctx context.Context, g *Guard, caller string, now time.Time, spender string, expires Expiration, add bool) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}

	kept := r.Approvals[:0]
	for _, apr := range r.Approvals {
		if apr.Spender != spender {
			kept = append(kept, apr)
		}
	}
	r.Approvals = kept

	if add {
		if expires.IsExpired(now) {
			return ErrExpired
		}
		r.Approvals = append(r.Approvals, Approval{Spender: spender, Expires: expires})
	}
	return nil
}
