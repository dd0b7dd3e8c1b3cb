package domain

// Escrow 單一 Record、單一租賃模式的託管帳目
//
// DepositTotal 是「歷來入金總額」，退款時不會往下調。
// 被駁回或取消的訂房直接從合約可用資金退款，只靠移除訂房紀錄追蹤。
// WithdrawnTotal 與這個只增不減的數字比較，語意必須原樣保留。
type Escrow struct {
	DepositTotal   uint64
	WithdrawnTotal uint64
}

// RecordDeposit 入金，累加 DepositTotal
// 唯一的上限是數值溢位，溢位直接拒絕 (fail closed)，不允許 wrap
func (e *Escrow) RecordDeposit(amount uint64) error {
	total := e.DepositTotal + amount
	if total < e.DepositTotal {
		return ErrDepositOverflow
	}
	e.DepositTotal = total
	return nil
}

// AuthorizeWithdrawal 核可一筆提領
// 僅在 WithdrawnTotal + amount <= DepositTotal 時成功並累加 WithdrawnTotal
// 加總溢位同樣視為不可提領
func (e *Escrow) AuthorizeWithdrawal(amount uint64) error {
	withdrawn := e.WithdrawnTotal + amount
	if withdrawn < e.WithdrawnTotal {
		return ErrUnavailableAmount
	}
	if e.DepositTotal < withdrawn {
		return ErrUnavailableAmount
	}
	e.WithdrawnTotal = withdrawn
	return nil
}

// Available 目前還可提領的額度
func (e *Escrow) Available() uint64 {
	return e.DepositTotal - e.WithdrawnTotal
}

// reset 歸零，只有長租 finalize 會用到
func (e *Escrow) reset() {
	e.DepositTotal = 0
	e.WithdrawnTotal = 0
}
