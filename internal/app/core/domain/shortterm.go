package domain

import (
	"context"
	"time"
)

// ListShortTerm 刊登短租 (approve 類授權)
func (r *Record) ListShortTerm(ctx context.Context, g *Guard, caller string, now time.Time, denom string, pricePerDay uint64, autoApprove bool, availablePeriod []string) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}
	r.ShortTerm.Listed = true
	r.ShortTerm.PricePerDay = pricePerDay
	r.ShortTerm.AvailablePeriod = availablePeriod
	r.ShortTerm.AutoApprove = autoApprove
	r.ShortTerm.Denom = denom
	return nil
}

// UnlistShortTerm 下架短租 (approve 類授權)
// 清掉價格/可租區間/auto_approve，既有訂房與託管帳目不動
func (r *Record) UnlistShortTerm(ctx context.Context, g *Guard, caller string, now time.Time) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}
	r.ShortTerm.Listed = false
	r.ShortTerm.PricePerDay = 0
	r.ShortTerm.AvailablePeriod = nil
	r.ShortTerm.AutoApprove = false
	return nil
}

// findSlot 在已排序的訂房列表中找插入位置
//
// 單次線性掃描，gapOpen 記錄「上一筆訂房的 check_out 是否嚴格早於新的 check_in」。
// 插入位置必須讓新區間完整落在一個空檔裡:
// 貼齊的日期 (check_out == 下一筆 check_in) 視為衝突。
// 找不到位置且列表非空時回傳 ErrUnavailablePeriod。
func (st *ShortTermRental) findSlot(checkIn, checkOut time.Time) (int, error) {
	place := -1
	total := len(st.Bookings)

	gapOpen := false
	for i, booking := range st.Bookings {
		bookedIn, bookedOut, err := ParsePeriod(booking.RentingPeriod)
		if err != nil {
			return -1, err
		}
		if checkOut.Before(bookedIn) {
			if i == 0 {
				place = 0
				break
			} else if gapOpen {
				place = i
				break
			}
		} else if bookedOut.Before(checkIn) {
			gapOpen = true
			if i == total-1 {
				place = total
				break
			}
		} else {
			gapOpen = false
		}
	}

	if place == -1 {
		if total > 0 {
			return -1, ErrUnavailablePeriod
		}
		place = 0
	}
	return place, nil
}

// ReserveShortTerm 旅客訂房，核心演算法
//
// 1. 解析區間，格式錯誤或顛倒直接拒絕
// 2. 在排序列表中找空檔 (findSlot)
// 3. 驗證幣別
// 4. 驗證金額 >= price_per_day × 晚數
// 5. 插入訂房並記入託管帳目
// 6. auto_approve 時立刻撥款給擁有者，訂房保留並標記已核准
func (r *Record) ReserveShortTerm(caller string, rentingPeriod []string, funds Funds) ([]Payment, error) {
	checkIn, checkOut, err := ParsePeriod(rentingPeriod)
	if err != nil {
		return nil, err
	}

	place, err := r.ShortTerm.findSlot(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if funds.Denom != r.ShortTerm.Denom {
		return nil, ErrInvalidDeposit
	}

	nights := Nights(checkIn, checkOut)
	required := r.ShortTerm.PricePerDay * nights
	if nights != 0 && required/nights != r.ShortTerm.PricePerDay {
		// 乘積溢位: 要求金額高到不可能滿足
		return nil, ErrInsufficientDeposit
	}
	if funds.Amount < required {
		return nil, ErrInsufficientDeposit
	}

	booking := Booking{
		Address:       caller,
		RentingPeriod: rentingPeriod,
		DepositAmount: funds.Amount,
		Approved:      r.ShortTerm.AutoApprove,
	}

	if err := r.ShortTerm.RecordDeposit(funds.Amount); err != nil {
		return nil, err
	}
	r.ShortTerm.Bookings = append(r.ShortTerm.Bookings, Booking{})
	copy(r.ShortTerm.Bookings[place+1:], r.ShortTerm.Bookings[place:])
	r.ShortTerm.Bookings[place] = booking

	if r.ShortTerm.AutoApprove {
		return []Payment{{ToAddress: r.Owner, Amount: funds.Amount, Denom: r.ShortTerm.Denom}}, nil
	}
	return nil, nil
}

// ApproveShortTerm 房東核准一筆待核訂房 (approve 類授權)
// auto_approve 模式下押金早已撥出，一律 ErrApprovedAlready
// 核准後撥出該筆押金，訂房保留並標記已核准
func (r *Record) ApproveShortTerm(ctx context.Context, g *Guard, caller string, now time.Time, traveler string, rentingPeriod []string) ([]Payment, error) {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return nil, err
	}
	if r.ShortTerm.AutoApprove {
		return nil, ErrApprovedAlready
	}

	position := -1
	var amount uint64
	for i, booking := range r.ShortTerm.Bookings {
		if booking.Address == traveler && samePeriod(booking.RentingPeriod, rentingPeriod) && !booking.Approved {
			position = i
			amount = booking.DepositAmount
			break
		}
	}
	if position == -1 {
		return nil, ErrApprovedAlready
	}
	r.ShortTerm.Bookings[position].Approved = true

	return []Payment{{ToAddress: r.Owner, Amount: amount, Denom: r.ShortTerm.Denom}}, nil
}

// RejectShortTerm 房東駁回一筆待核訂房 (approve 類授權)
// 移除訂房但不退款，與 Cancel 不對稱，來源既有行為原樣保留
func (r *Record) RejectShortTerm(ctx context.Context, g *Guard, caller string, now time.Time, traveler string, rentingPeriod []string) error {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return err
	}
	if r.ShortTerm.AutoApprove {
		return ErrApprovedAlready
	}

	position := -1
	for i, booking := range r.ShortTerm.Bookings {
		if booking.Address == traveler && samePeriod(booking.RentingPeriod, rentingPeriod) {
			if booking.Approved {
				return ErrApprovedAlready
			}
			position = i
		}
	}
	if position == -1 {
		return ErrNotReserved
	}
	r.ShortTerm.Bookings = append(r.ShortTerm.Bookings[:position], r.ShortTerm.Bookings[position+1:]...)
	return nil
}

// CancelShortTerm 旅客自行取消待核訂房
// 移除訂房並全額退款給旅客 (DepositTotal 不回調)
func (r *Record) CancelShortTerm(caller string, rentingPeriod []string) ([]Payment, error) {
	if r.ShortTerm.AutoApprove {
		return nil, ErrApprovedAlready
	}

	position := -1
	var amount uint64
	for i, booking := range r.ShortTerm.Bookings {
		if booking.Address == caller && samePeriod(booking.RentingPeriod, rentingPeriod) {
			if booking.Approved {
				return nil, ErrApprovedAlready
			}
			position = i
			amount = booking.DepositAmount
		}
	}
	if position == -1 {
		return nil, ErrNotReserved
	}
	r.ShortTerm.Bookings = append(r.ShortTerm.Bookings[:position], r.ShortTerm.Bookings[position+1:]...)

	return []Payment{{ToAddress: caller, Amount: amount, Denom: r.ShortTerm.Denom}}, nil
}

// FinalizeShortTerm 退房結案 (send 類授權)
// 只移除訂房，不動資金，押金在核准或 auto_approve 時已撥出
func (r *Record) FinalizeShortTerm(ctx context.Context, g *Guard, caller string, now time.Time, traveler string, rentingPeriod []string) error {
	if err := g.CanSend(ctx, r, caller, now); err != nil {
		return err
	}

	position := -1
	for i, booking := range r.ShortTerm.Bookings {
		if booking.Address == traveler && samePeriod(booking.RentingPeriod, rentingPeriod) {
			position = i
		}
	}
	if position == -1 {
		return ErrNotReserved
	}
	r.ShortTerm.Bookings = append(r.ShortTerm.Bookings[:position], r.ShortTerm.Bookings[position+1:]...)
	return nil
}

// WithdrawToHost 提領短租託管款給擁有者 (approve 類授權)
// 沒有 Ejari 前置條件，其餘與長租提領相同
func (r *Record) WithdrawToHost(ctx context.Context, g *Guard, caller string, now time.Time, amount uint64, denom string) ([]Payment, error) {
	if err := g.CanApprove(ctx, r, caller, now); err != nil {
		return nil, err
	}
	if err := r.ShortTerm.AuthorizeWithdrawal(amount); err != nil {
		return nil, err
	}
	return []Payment{{ToAddress: r.Owner, Amount: amount, Denom: denom}}, nil
}
