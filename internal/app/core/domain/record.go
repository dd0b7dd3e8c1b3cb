package domain

import "time"

// DefaultDenom 鑄造時短租狀態的預設幣別
const DefaultDenom = "unibi"

// Expiration 代表一個時間上限，零值表示永不過期
type Expiration struct {
	At time.Time
}

// ExpireAt 建立一個在 t 過期的 Expiration
func ExpireAt(t time.Time) Expiration {
	return Expiration{At: t}
}

// IsExpired 判斷在 now 這個時間點是否已過期
// now >= At 即視為過期 (與鏈上 block time 判斷一致)
func (e Expiration) IsExpired(now time.Time) bool {
	if e.At.IsZero() {
		return false
	}
	return !now.Before(e.At)
}

// Approval 單一 Token、單一 Spender 的限時授權
type Approval struct {
	Spender string
	Expires Expiration
}

// LandlordTerms 長租的刊登條件 (有刊登才存在)
type LandlordTerms struct {
	Denom             string
	PricePerMonth     uint64
	RefundableDeposit uint64
	AvailablePeriod   []string
}

// TenantTerms 長租的承租條件 (有預約才存在)
type TenantTerms struct {
	DepositAmount uint64
	DepositDenom  string
	RentingPeriod []string
}

// LongTermRental 單一租客的長租狀態機
//
// 不變量:
//
//	Reserved == true ⇔ TenantAddress 與 Tenant 同時存在
//	RentingFlag == true ⇒ Reserved == true 且由 TenantAddress 啟動
//	WithdrawnTotal <= DepositTotal (由內嵌的 Escrow 維護)
type LongTermRental struct {
	Listed        bool
	Landlord      *LandlordTerms
	Reserved      bool
	TenantAddress string
	Tenant        *TenantTerms
	RentingFlag   bool
	EjariFlag     EjariStatus
	Escrow
}

// Booking 一筆短租訂房，含押金與核准狀態
type Booking struct {
	Address       string
	RentingPeriod []string
	DepositAmount uint64
	Approved      bool
}

// ShortTermRental 多旅客的短租行事曆
//
// 不變量: Bookings 依 check_in 升冪排列且兩兩不重疊，
// 相鄰兩筆必須滿足 prior.check_out < next.check_in (嚴格小於，貼齊也算衝突)
type ShortTermRental struct {
	Listed          bool
	PricePerDay     uint64
	Denom           string
	AutoApprove     bool
	AvailablePeriod []string
	Bookings        []Booking
	Escrow
}

// Record 一個代幣化房產的完整持久化狀態
type Record struct {
	TokenID   string
	Owner     string
	Approvals []Approval
	TokenURI  string
	Extension []byte
	LongTerm  LongTermRental
	ShortTerm ShortTermRental
}

// NewRecord 鑄造一個新的 Record，兩種租賃子狀態都是空的
func NewRecord(tokenID, owner, tokenURI string, extension []byte) *Record {
	return &Record{
		TokenID:   tokenID,
		Owner:     owner,
		TokenURI:  tokenURI,
		Extension: extension,
		ShortTerm: ShortTermRental{
			Denom: DefaultDenom,
		},
	}
}

// Clone 回傳深拷貝，讓 Registry 的呼叫者拿到隔離的副本
// 操作失敗時不會污染儲存層的狀態
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	dup := *r
	dup.Approvals = append([]Approval(nil), r.Approvals...)
	dup.Extension = append([]byte(nil), r.Extension...)
	if r.LongTerm.Landlord != nil {
		landlord := *r.LongTerm.Landlord
		landlord.AvailablePeriod = append([]string(nil), r.LongTerm.Landlord.AvailablePeriod...)
		dup.LongTerm.Landlord = &landlord
	}
	if r.LongTerm.Tenant != nil {
		tenant := *r.LongTerm.Tenant
		tenant.RentingPeriod = append([]string(nil), r.LongTerm.Tenant.RentingPeriod...)
		dup.LongTerm.Tenant = &tenant
	}
	dup.ShortTerm.AvailablePeriod = append([]string(nil), r.ShortTerm.AvailablePeriod...)
	dup.ShortTerm.Bookings = make([]Booking, len(r.ShortTerm.Bookings))
	for i, b := range r.ShortTerm.Bookings {
		b.RentingPeriod = append([]string(nil), b.RentingPeriod...)
		dup.ShortTerm.Bookings[i] = b
	}
	return &dup
}

// Payment 對外的撥款指令，由 Dispatcher 轉交給付款元件
// 核心只決定「要不要付、付多少」，送達與否不在核心責任範圍
type Payment struct {
	ToAddress string
	Amount    uint64
	Denom     string
}

// Funds 隨指令附上的款項
type Funds struct {
	Denom  string
	Amount uint64
}
