package domain

import "errors"

var (
	// ErrNotOwner 呼叫者不是擁有者，也沒有有效的授權
	ErrNotOwner = errors.New("caller is not the token owner")

	// ErrNotReserved 找不到對應的預約 / 訂房紀錄
	ErrNotReserved = errors.New("reservation not found")

	// ErrApprovedAlready 狀態已經走過這個轉換 (已核准、或 auto_approve 模式下不允許)
	ErrApprovedAlready = errors.New("reservation approved already")

	// ErrUnavailablePeriod 請求的區間與現有訂房衝突
	ErrUnavailablePeriod = errors.New("renting period unavailable")

	// ErrInvalidPeriod 區間格式錯誤或起訖顛倒
	ErrInvalidPeriod = errors.New("invalid renting period")

	// ErrInvalidDeposit 押金幣別不符
	ErrInvalidDeposit = errors.New("invalid deposit denom")

	// ErrInsufficientDeposit 押金金額低於要求
	ErrInsufficientDeposit = errors.New("insufficient deposit")

	// ErrRentalNotActivated 租約尚未啟動就嘗試入金
	ErrRentalNotActivated = errors.New("rental not activated")

	// ErrUnavailableAmount 提領金額超過可提領餘額 (deposit_total - withdrawn_total)
	ErrUnavailableAmount = errors.New("unavailable withdrawal amount")

	// ErrEjariNotConfirmed Ejari 登記尚未回報就嘗試提領
	ErrEjariNotConfirmed = errors.New("ejari not confirmed")

	// ErrExpired 授權已過期 (或建立時就已過期)
	ErrExpired = errors.New("approval expired")

	// ErrDepositOverflow 入金累計溢位，直接拒絕，不允許 wrap
	ErrDepositOverflow = errors.New("deposit total overflow")

	// ErrClaimed Token ID 已被鑄造
	ErrClaimed = errors.New("token id claimed")

	// ErrTokenNotFound 找不到 Token
	ErrTokenNotFound = errors.New("token not found")
)
