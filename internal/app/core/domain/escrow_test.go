package domain

import (
	"errors"
	"math"
	"testing"
)

func TestEscrow_DepositAndWithdraw(t *testing.T) {
	var e Escrow
	if err := e.RecordDeposit(100); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := e.AuthorizeWithdrawal(60); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if e.Available() != 40 {
		t.Errorf("expected 40 available, got %d", e.Available())
	}
	if err := e.AuthorizeWithdrawal(41); !errors.Is(err, ErrUnavailableAmount) {
		t.Errorf("expected ErrUnavailableAmount, got %v", err)
	}
	if err := e.AuthorizeWithdrawal(40); err != nil {
		t.Fatalf("exact withdraw failed: %v", err)
	}
	if e.Available() != 0 {
		t.Errorf("expected 0 available, got %d", e.Available())
	}
}

func TestEscrow_DepositOverflow(t *testing.T) {
	e := Escrow{DepositTotal: math.MaxUint64 - 5}
	if err := e.RecordDeposit(6); !errors.Is(err, ErrDepositOverflow) {
		t.Errorf("expected ErrDepositOverflow, got %v", err)
	}
	// 失敗不改變帳目
	if e.DepositTotal != math.MaxUint64-5 {
		t.Errorf("deposit total mutated on failure: %d", e.DepositTotal)
	}
	if err := e.RecordDeposit(5); err != nil {
		t.Errorf("deposit up to the limit must succeed: %v", err)
	}
}

func TestEscrow_WithdrawOverflow(t *testing.T) {
	e := Escrow{DepositTotal: math.MaxUint64, WithdrawnTotal: math.MaxUint64 - 1}
	if err := e.AuthorizeWithdrawal(2); !errors.Is(err, ErrUnavailableAmount) {
		t.Errorf("expected ErrUnavailableAmount on overflow, got %v", err)
	}
	if e.WithdrawnTotal != math.MaxUint64-1 {
		t.Errorf("withdrawn total mutated on failure: %d", e.WithdrawnTotal)
	}
}
