package domain

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newShortTermFixture(t *testing.T, autoApprove bool) (*Record, *Guard, time.Time) {
	t.Helper()
	rec := NewRecord("villa-1", "host", "", nil)
	g := NewGuard(newMockOperatorStore())
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := rec.ListShortTerm(context.Background(), g, "host", now, "u", 10, autoApprove, []string{"2024/01/01", "2024/12/31"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	return rec, g, now
}

func mustReserve(t *testing.T, rec *Record, caller string, period []string, amount uint64) []Payment {
	t.Helper()
	payments, err := rec.ReserveShortTerm(caller, period, Funds{Denom: "u", Amount: amount})
	if err != nil {
		t.Fatalf("reserve %v failed: %v", period, err)
	}
	return payments
}

func bookingPeriods(rec *Record) [][]string {
	var out [][]string
	for _, b := range rec.ShortTerm.Bookings {
		out = append(out, b.RentingPeriod)
	}
	return out
}

func TestReserveShortTerm_Success(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)

	// 2 晚 × 10 = 20
	payments := mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)
	if payments != nil {
		t.Errorf("manual approve mode must not pay out, got %+v", payments)
	}
	if len(rec.ShortTerm.Bookings) != 1 || rec.ShortTerm.Bookings[0].Approved {
		t.Fatalf("unexpected bookings: %+v", rec.ShortTerm.Bookings)
	}
	if rec.ShortTerm.DepositTotal != 20 {
		t.Errorf("expected deposit total 20, got %d", rec.ShortTerm.DepositTotal)
	}
}

func TestReserveShortTerm_TouchingDatesConflict(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	// check_in 貼齊前一筆的 check_out 也算衝突
	if _, err := rec.ReserveShortTerm("bob", []string{"2024/01/03", "2024/01/05"}, Funds{Denom: "u", Amount: 20}); !errors.Is(err, ErrUnavailablePeriod) {
		t.Fatalf("expected ErrUnavailablePeriod, got %v", err)
	}

	// 隔一天就有空檔
	mustReserve(t, rec, "bob", []string{"2024/01/04", "2024/01/06"}, 20)
	if len(rec.ShortTerm.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(rec.ShortTerm.Bookings))
	}
}

func TestReserveShortTerm_KeepsOrder(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)
	mustReserve(t, rec, "alice", []string{"2024/01/10", "2024/01/12"}, 20)
	// 插在最前面
	mustReserve(t, rec, "bob", []string{"2024/01/01", "2024/01/03"}, 20)
	// 插進中間的空檔
	mustReserve(t, rec, "carol", []string{"2024/01/05", "2024/01/07"}, 20)

	got := bookingPeriods(rec)
	want := [][]string{
		{"2024/01/01", "2024/01/03"},
		{"2024/01/05", "2024/01/07"},
		{"2024/01/10", "2024/01/12"},
	}
	for i := range want {
		if !samePeriod(got[i], want[i]) {
			t.Fatalf("bookings out of order: %v", got)
		}
	}
}

func TestReserveShortTerm_Overlap(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)
	mustReserve(t, rec, "alice", []string{"2024/01/05", "2024/01/10"}, 50)

	overlaps := [][]string{
		{"2024/01/04", "2024/01/06"},
		{"2024/01/06", "2024/01/08"},
		{"2024/01/09", "2024/01/12"},
		{"2024/01/01", "2024/01/20"},
	}
	for _, period := range overlaps {
		if _, err := rec.ReserveShortTerm("bob", period, Funds{Denom: "u", Amount: 200}); !errors.Is(err, ErrUnavailablePeriod) {
			t.Errorf("reserve %v: expected ErrUnavailablePeriod, got %v", period, err)
		}
	}
}

func TestReserveShortTerm_WrongDenom(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)
	if _, err := rec.ReserveShortTerm("alice", []string{"2024/01/01", "2024/01/03"}, Funds{Denom: "x", Amount: 20}); !errors.Is(err, ErrInvalidDeposit) {
		t.Errorf("expected ErrInvalidDeposit, got %v", err)
	}
}

func TestReserveShortTerm_InsufficientDeposit(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)
	if _, err := rec.ReserveShortTerm("alice", []string{"2024/01/01", "2024/01/03"}, Funds{Denom: "u", Amount: 19}); !errors.Is(err, ErrInsufficientDeposit) {
		t.Errorf("expected ErrInsufficientDeposit, got %v", err)
	}
	if len(rec.ShortTerm.Bookings) != 0 || rec.ShortTerm.DepositTotal != 0 {
		t.Error("failed reserve must not mutate state")
	}
}

func TestReserveShortTerm_MalformedPeriod(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)
	mustReserve(t, rec, "alice", []string{"2024/01/05", "2024/01/07"}, 20)

	cases := [][]string{
		{"2024/01/01"},
		{"bad", "2024/01/02"},
		{"2024/01/03", "2024/01/01"},
	}
	for _, period := range cases {
		if _, err := rec.ReserveShortTerm("bob", period, Funds{Denom: "u", Amount: 20}); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("reserve %v: expected ErrInvalidPeriod, got %v", period, err)
		}
	}
}

func TestReserveShortTerm_AutoApprove(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, true)

	payments := mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)
	if len(payments) != 1 || payments[0].ToAddress != "host" || payments[0].Amount != 20 || payments[0].Denom != "u" {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if !rec.ShortTerm.Bookings[0].Approved {
		t.Error("auto approve must mark the booking approved")
	}
}

func TestApproveShortTerm(t *testing.T) {
	rec, g, now := newShortTermFixture(t, false)
	ctx := context.Background()
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	payments, err := rec.ApproveShortTerm(ctx, g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if len(payments) != 1 || payments[0].ToAddress != "host" || payments[0].Amount != 20 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if !rec.ShortTerm.Bookings[0].Approved {
		t.Error("booking not marked approved")
	}

	// 重複核准
	if _, err := rec.ApproveShortTerm(ctx, g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"}); !errors.Is(err, ErrApprovedAlready) {
		t.Errorf("expected ErrApprovedAlready, got %v", err)
	}
	// 沒這筆訂房
	if _, err := rec.ApproveShortTerm(ctx, g, "host", now, "bob", []string{"2024/01/01", "2024/01/03"}); !errors.Is(err, ErrApprovedAlready) {
		t.Errorf("expected ErrApprovedAlready, got %v", err)
	}
}

func TestApproveShortTerm_AutoApproveMode(t *testing.T) {
	rec, g, now := newShortTermFixture(t, true)
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	if _, err := rec.ApproveShortTerm(context.Background(), g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"}); !errors.Is(err, ErrApprovedAlready) {
		t.Errorf("expected ErrApprovedAlready in auto approve mode, got %v", err)
	}
}

func TestRejectShortTerm_NoRefund(t *testing.T) {
	rec, g, now := newShortTermFixture(t, false)
	ctx := context.Background()
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	if err := rec.RejectShortTerm(ctx, g, "host", now, "bob", []string{"2024/01/01", "2024/01/03"}); !errors.Is(err, ErrNotReserved) {
		t.Errorf("expected ErrNotReserved, got %v", err)
	}
	if err := rec.RejectShortTerm(ctx, g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if len(rec.ShortTerm.Bookings) != 0 {
		t.Error("reject did not remove the booking")
	}
	// 駁回不退款，入金總額也不回調
	if rec.ShortTerm.DepositTotal != 20 {
		t.Errorf("deposit total must stay at 20, got %d", rec.ShortTerm.DepositTotal)
	}
}

func TestRejectShortTerm_ApprovedBooking(t *testing.T) {
	rec, g, now := newShortTermFixture(t, false)
	ctx := context.Background()
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)
	rec.ApproveShortTerm(ctx, g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"})

	if err := rec.RejectShortTerm(ctx, g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"}); !errors.Is(err, ErrApprovedAlready) {
		t.Errorf("expected ErrApprovedAlready, got %v", err)
	}
}

func TestCancelShortTerm_Refund(t *testing.T) {
	rec, _, _ := newShortTermFixture(t, false)
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	if _, err := rec.CancelShortTerm("bob", []string{"2024/01/01", "2024/01/03"}); !errors.Is(err, ErrNotReserved) {
		t.Errorf("stranger cancel: expected ErrNotReserved, got %v", err)
	}

	payments, err := rec.CancelShortTerm("alice", []string{"2024/01/01", "2024/01/03"})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	// 取消全額退款給旅客
	if len(payments) != 1 || payments[0].ToAddress != "alice" || payments[0].Amount != 20 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if len(rec.ShortTerm.Bookings) != 0 {
		t.Error("cancel did not remove the booking")
	}
	if rec.ShortTerm.DepositTotal != 20 {
		t.Errorf("deposit total must stay at 20, got %d", rec.ShortTerm.DepositTotal)
	}
}

func TestCancelShortTerm_ApprovedBooking(t *testing.T) {
	rec, g, now := newShortTermFixture(t, false)
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)
	rec.ApproveShortTerm(context.Background(), g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"})

	if _, err := rec.CancelShortTerm("alice", []string{"2024/01/01", "2024/01/03"}); !errors.Is(err, ErrApprovedAlready) {
		t.Errorf("expected ErrApprovedAlready, got %v", err)
	}
}

func TestFinalizeShortTerm(t *testing.T) {
	rec, g, now := newShortTermFixture(t, true)
	ctx := context.Background()
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	if err := rec.FinalizeShortTerm(ctx, g, "host", now, "alice", []string{"2024/01/05", "2024/01/07"}); !errors.Is(err, ErrNotReserved) {
		t.Errorf("expected ErrNotReserved for unknown booking, got %v", err)
	}
	if err := rec.FinalizeShortTerm(ctx, g, "host", now, "alice", []string{"2024/01/01", "2024/01/03"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if len(rec.ShortTerm.Bookings) != 0 {
		t.Error("finalize did not remove the booking")
	}
	// 退房後同一區間直接可再約
	mustReserve(t, rec, "bob", []string{"2024/01/01", "2024/01/03"}, 20)
}

func TestWithdrawToHost(t *testing.T) {
	rec, g, now := newShortTermFixture(t, true)
	ctx := context.Background()
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	// 短租提領沒有 Ejari 前置條件
	payments, err := rec.WithdrawToHost(ctx, g, "host", now, 15, "u")
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if len(payments) != 1 || payments[0].ToAddress != "host" || payments[0].Amount != 15 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if _, err := rec.WithdrawToHost(ctx, g, "host", now, 6, "u"); !errors.Is(err, ErrUnavailableAmount) {
		t.Errorf("expected ErrUnavailableAmount, got %v", err)
	}
	if _, err := rec.WithdrawToHost(ctx, g, "alice", now, 1, "u"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestUnlistShortTerm_KeepsBookings(t *testing.T) {
	rec, g, now := newShortTermFixture(t, false)
	ctx := context.Background()
	mustReserve(t, rec, "alice", []string{"2024/01/01", "2024/01/03"}, 20)

	if err := rec.UnlistShortTerm(ctx, g, "host", now); err != nil {
		t.Fatalf("unlist failed: %v", err)
	}
	st := rec.ShortTerm
	if st.Listed || st.PricePerDay != 0 || st.AvailablePeriod != nil || st.AutoApprove {
		t.Error("unlist did not clear the listing fields")
	}
	if len(st.Bookings) != 1 || st.DepositTotal != 20 {
		t.Error("unlist must keep bookings and escrow")
	}
}
