package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParsePeriod_Success(t *testing.T) {
	checkIn, checkOut, err := ParsePeriod([]string{"2024/01/01", "2024/01/03"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Nights(checkIn, checkOut); got != 2 {
		t.Errorf("expected 2 nights, got %d", got)
	}
}

func TestParsePeriod_SameDay(t *testing.T) {
	// check_in == check_out 合法，0 晚
	checkIn, checkOut, err := ParsePeriod([]string{"2024/01/01", "2024/01/01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Nights(checkIn, checkOut); got != 0 {
		t.Errorf("expected 0 nights, got %d", got)
	}
}

func TestParsePeriod_Invalid(t *testing.T) {
	cases := [][]string{
		nil,
		{"2024/01/01"},
		{"2024/01/01", "2024/01/02", "2024/01/03"},
		{"not-a-date", "2024/01/02"},
		{"2024/01/01", "not-a-date"},
		{"2024-01-01", "2024-01-02"},
		{"2024/01/05", "2024/01/01"}, // 起訖顛倒
	}
	for _, period := range cases {
		if _, _, err := ParsePeriod(period); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("ParsePeriod(%v): expected ErrInvalidPeriod, got %v", period, err)
		}
	}
}

func TestExpiration_Zero(t *testing.T) {
	var e Expiration
	if e.IsExpired(time.Now().Add(100 * 365 * 24 * time.Hour)) {
		t.Error("zero expiration must never expire")
	}
}

func TestExpiration_Boundary(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := ExpireAt(at)
	if e.IsExpired(at.Add(-time.Second)) {
		t.Error("should not be expired before the deadline")
	}
	// now == At 即視為過期
	if !e.IsExpired(at) {
		t.Error("should be expired exactly at the deadline")
	}
	if !e.IsExpired(at.Add(time.Second)) {
		t.Error("should be expired after the deadline")
	}
}
