package domain

import (
	"context"
	"time"
)

// 長租狀態機: Unlisted → Listed → Reserved → Active → (Finalized→Unlisted)
// 駁回 (房東) 與取消 (租客) 都把 Reserved 退回 Listed

// ListLongTerm 刊登長租 (approve 類授權)
// listed 直接採用呼叫者傳入的值
func (r *Record) ListLongTerm(ctx context.Context, g *Guard, caller string, now time.Time, listed bool, terms LandlordTerms) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}
	r.LongTerm.Listed = listed
	r.LongTerm.Landlord = &terms
	return nil
}

// UnlistLongTerm 下架長租 (approve 類授權)
// 對未刊登的 Record 重複下架是 no-op 成功
func (r *Record) UnlistLongTerm(ctx context.Context, g *Guard, caller string, now time.Time) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}
	r.LongTerm.Listed = false
	r.LongTerm.Landlord = nil
	return nil
}

// ReserveLongTerm 預約長租
// 注意: 不驗證隨指令送來的款項是否符合租客自報的押金條件，
// 與短租路徑不對稱，這是來源既有行為，原樣保留
func (r *Record) ReserveLongTerm(caller string, terms TenantTerms) error {
	r.LongTerm.Reserved = true
	r.LongTerm.TenantAddress = caller
	r.LongTerm.Tenant = &terms
	return nil
}

// RejectLongTerm 房東駁回預約 (approve 類授權)
// 清掉預約欄位，不退款 (現行為下預約時沒收過款)
func (r *Record) RejectLongTerm(ctx context.Context, g *Guard, caller string, now time.Time) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}
	r.LongTerm.Reserved = false
	r.LongTerm.TenantAddress = ""
	r.LongTerm.Tenant = nil
	return nil
}

// CancelLongTerm 租客自行取消預約
// 呼叫者必須是 TenantAddress，否則 ErrNotReserved
func (r *Record) CancelLongTerm(caller string) error {
	if r.LongTerm.TenantAddress == "" || r.LongTerm.TenantAddress != caller {
		return ErrNotReserved
	}
	r.LongTerm.Reserved = false
	r.LongTerm.TenantAddress = ""
	r.LongTerm.Tenant = nil
	return nil
}

// ActivateLongTerm 租客啟動租約
// 呼叫者必須是 TenantAddress，且 send 類授權也要通過
func (r *Record) ActivateLongTerm(ctx context.Context, g *Guard, caller string, now time.Time) error {
	if r.LongTerm.TenantAddress == "" || r.LongTerm.TenantAddress != caller {
		return ErrNotReserved
	}
	if err := g.CanSend(ctx, r, caller, now); err != nil {
		return err
	}
	r.LongTerm.RentingFlag = true
	return nil
}

// DepositLongTerm 租客入金 (send 類授權)
// 必須已啟動租約，否則 ErrRentalNotActivated
func (r *Record) DepositLongTerm(ctx context.Context, g *Guard, caller string, now time.Time, funds Funds) error {
	if err := g.CanSend(ctx, r, caller, now); err != nil {
		return err
	}
	if r.LongTerm.TenantAddress == "" || r.LongTerm.TenantAddress != caller {
		return ErrNotReserved
	}
	if !r.LongTerm.RentingFlag {
		return ErrRentalNotActivated
	}
	return r.LongTerm.RecordDeposit(funds.Amount)
}

// WithdrawToLandlord 提領押金給房東 (approve 類授權)
// 閘門只看 Ejari「有沒有回報」，不看回報值
func (r *Record) WithdrawToLandlord(ctx context.Context, g *Guard, caller string, now time.Time, amount uint64, denom string) ([]Payment, error) {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return nil, err
	}
	if !r.LongTerm.EjariFlag.Confirmed() {
		return nil, ErrEjariNotConfirmed
	}
	if err := r.LongTerm.AuthorizeWithdrawal(amount); err != nil {
		return nil, err
	}
	return []Payment{{ToAddress: r.Owner, Amount: amount, Denom: denom}}, nil
}

// SetEjari 回報 Ejari 登記結果 (send 類授權)
func (r *Record) SetEjari(ctx context.Context, g *Guard, caller string, now time.Time, value bool) error {
	if err := g.CanSend(ctx, r, caller, now); err != nil {
		return err
	}
	r.LongTerm.EjariFlag = ConfirmEjari(value)
	return nil
}

// FinalizeLongTerm 結束租約 (send 類授權)
// 清掉全部長租欄位並歸零託管帳目，刊登條件保留
func (r *Record) FinalizeLongTerm(ctx context.Context, g *Guard, caller string, now time.Time) error {
	if err := g.CanSend(ctx, r, caller, now); err != nil {
		return err
	}
	r.LongTerm.Reserved = false
	r.LongTerm.TenantAddress = ""
	r.LongTerm.Tenant = nil
	r.LongTerm.RentingFlag = false
	r.LongTerm.EjariFlag = EjariUnset
	r.LongTerm.reset()
	return nil
}
