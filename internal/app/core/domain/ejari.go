package domain

// EjariStatus 三態的 Ejari 登記旗標: 未回報 / 回報為否 / 回報為是
// 長租提領的閘門只看「有沒有回報」，不看回報的布林值
type EjariStatus uint8

const (
	// EjariUnset 尚未回報
	EjariUnset EjariStatus = iota
	// EjariConfirmedFalse 已回報，值為 false
	EjariConfirmedFalse
	// EjariConfirmedTrue 已回報，值為 true
	EjariConfirmedTrue
)

// ConfirmEjari 依回報值建立已回報狀態
func ConfirmEjari(value bool) EjariStatus {
	if value {
		return EjariConfirmedTrue
	}
	return EjariConfirmedFalse
}

// Confirmed 是否已回報 (任一布林值都算)
func (s EjariStatus) Confirmed() bool {
	return s != EjariUnset
}

// Value 回報的布林值，未回報時為 false
func (s EjariStatus) Value() bool {
	return s == EjariConfirmedTrue
}
