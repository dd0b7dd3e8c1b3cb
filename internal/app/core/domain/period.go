package domain

import "time"

// PeriodLayout 訂房區間的日期格式
const PeriodLayout = "2006/01/02"

// ParsePeriod 解析 [check_in, check_out] 區間
// 元素數不是 2、日期格式錯誤、或起訖顛倒都回傳 ErrInvalidPeriod
func ParsePeriod(period []string) (checkIn, checkOut time.Time, err error) {
	if len(period) != 2 {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	checkIn, err = time.Parse(PeriodLayout, period[0])
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	checkOut, err = time.Parse(PeriodLayout, period[1])
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	if checkOut.Before(checkIn) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return checkIn, checkOut, nil
}

// Nights 兩個日期之間的整數天數
func Nights(checkIn, checkOut time.Time) uint64 {
	return uint64(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// samePeriod 訂房比對用的區間相等判斷 (逐元素字串比對)
func samePeriod(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
