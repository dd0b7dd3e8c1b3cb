package domain

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTransfer_ClearsApprovals(t *testing.T) {
	g := NewGuard(newMockOperatorStore())
	rec := NewRecord("token-1", "alice", "", nil)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	if err := rec.UpdateApproval(ctx, g, "alice", now, "bob", Expiration{}, true); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if err := rec.Transfer(ctx, g, "alice", now, "carol"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if rec.Owner != "carol" {
		t.Errorf("expected owner carol, got %s", rec.Owner)
	}
	if len(rec.Approvals) != 0 {
		t.Error("transfer must clear approvals")
	}
	// 舊擁有者失去控制權
	if err := rec.Transfer(ctx, g, "alice", now, "alice"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestTransfer_BySpender(t *testing.T) {
	g := NewGuard(newMockOperatorStore())
	rec := NewRecord("token-1", "alice", "", nil)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	rec.UpdateApproval(ctx, g, "alice", now, "bob", ExpireAt(now.Add(time.Hour)), true)
	if err := rec.Transfer(ctx, g, "bob", now, "bob"); err != nil {
		t.Fatalf("spender transfer failed: %v", err)
	}
	if rec.Owner != "bob" {
		t.Errorf("expected owner bob, got %s", rec.Owner)
	}
}

func TestUpdateApproval_ReplaceAndRevoke(t *testing.T) {
	g := NewGuard(newMockOperatorStore())
	rec := NewRecord("token-1", "alice", "", nil)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	rec.UpdateApproval(ctx, g, "alice", now, "bob", ExpireAt(now.Add(time.Hour)), true)
	// 同一 Spender 再授權是整筆替換
	rec.UpdateApproval(ctx, g, "alice", now, "bob", ExpireAt(now.Add(2*time.Hour)), true)
	if len(rec.Approvals) != 1 {
		t.Fatalf("expected 1 approval, got %d", len(rec.Approvals))
	}
	if rec.Approvals[0].Expires.At != now.Add(2*time.Hour) {
		t.Error("re-approval did not replace the expiration")
	}

	if err := rec.UpdateApproval(ctx, g, "alice", now, "bob", Expiration{}, false); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if len(rec.Approvals) != 0 {
		t.Error("revoke did not remove the approval")
	}
}

func TestUpdateApproval_AlreadyExpired(t *testing.T) {
	g := NewGuard(newMockOperatorStore())
	rec := NewRecord("token-1", "alice", "", nil)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	err := rec.UpdateApproval(context.Background(), g, "alice", now, "bob", ExpireAt(now.Add(-time.Second)), true)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
	if len(rec.Approvals) != 0 {
		t.Error("expired approval must not be stored")
	}
}

func TestClone_Isolation(t *testing.T) {
	rec := NewRecord("token-1", "alice", "uri", []byte{1, 2})
	rec.LongTerm.Landlord = &LandlordTerms{AvailablePeriod: []string{"2024/01/01", "2025/01/01"}}
	rec.ShortTerm.Bookings = []Booking{{Address: "bob", RentingPeriod: []string{"2024/01/01", "2024/01/03"}}}

	dup := rec.Clone()
	dup.Owner = "mallory"
	dup.LongTerm.Landlord.AvailablePeriod[0] = "1999/01/01"
	dup.ShortTerm.Bookings[0].RentingPeriod[0] = "1999/01/01"
	dup.Extension[0] = 9

	if rec.Owner != "alice" ||
		rec.LongTerm.Landlord.AvailablePeriod[0] != "2024/01/01" ||
		rec.ShortTerm.Bookings[0].RentingPeriod[0] != "2024/01/01" ||
		rec.Extension[0] != 1 {
		t.Error("clone shares state with the original")
	}
}
