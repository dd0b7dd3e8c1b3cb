package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
)

// mockStore 測試用的 in-memory Registry，行為比照真正的儲存層:
// Load 回傳隔離副本，Insert 重複回傳 ErrClaimed
type mockStore struct {
	tokens map[string]*domain.Record
	grants map[string]domain.Expiration
}

func newMockStore() *mockStore {
	return &mockStore{
		tokens: make(map[string]*domain.Record),
		grants: make(map[string]domain.Expiration),
	}
}

func (m *mockStore) Load(ctx context.Context, tokenID string) (*domain.Record, error) {
	rec, ok := m.tokens[tokenID]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	return rec.Clone(), nil
}

func (m *mockStore) Save(ctx context.Context, rec *domain.Record) error {
	if _, ok := m.tokens[rec.TokenID]; !ok {
		return domain.ErrTokenNotFound
	}
	m.tokens[rec.TokenID] = rec.Clone()
	return nil
}

func (m *mockStore) Insert(ctx context.Context, rec *domain.Record) error {
	if _, ok := m.tokens[rec.TokenID]; ok {
		return domain.ErrClaimed
	}
	m.tokens[rec.TokenID] = rec.Clone()
	return nil
}

func (m *mockStore) Remove(ctx context.Context, tokenID string) error {
	delete(m.tokens, tokenID)
	return nil
}

func (m *mockStore) GetOperatorGrant(ctx context.Context, owner, operator string) (domain.Expiration, bool, error) {
	expires, ok := m.grants[owner+"/"+operator]
	return expires, ok, nil
}

func (m *mockStore) PutOperatorGrant(ctx context.Context, owner, operator string, expires domain.Expiration) error {
	m.grants[owner+"/"+operator] = expires
	return nil
}

func (m *mockStore) DeleteOperatorGrant(ctx context.Context, owner, operator string) error {
	delete(m.grants, owner+"/"+operator)
	return nil
}

type mockBank struct {
	sent []domain.Payment
}

func (m *mockBank) Send(ctx context.Context, payment domain.Payment) error {
	m.sent = append(m.sent, payment)
	return nil
}

type mockEvents struct {
	published []Event
}

func (m *mockEvents) Publish(ctx context.Context, event Event) error {
	m.published = append(m.published, event)
	return nil
}

func newCoreFixture() (*CoreUseCase, *mockStore, *mockBank, *mockEvents) {
	store := newMockStore()
	bank := &mockBank{}
	events := &mockEvents{}
	return NewCoreUseCase(store, store, bank, events), store, bank, events
}

func mustExecute(t *testing.T, core *CoreUseCase, cmd *Command) *Result {
	t.Helper()
	res, err := core.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("execute op %d failed: %v", cmd.Op, err)
	}
	return res
}

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestExecute_MintAndGet(t *testing.T) {
	core, _, _, events := newCoreFixture()

	res := mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "alice", TokenURI: "ipfs://x", Now: testNow})
	if res.Action != "mint" {
		t.Errorf("expected action mint, got %s", res.Action)
	}

	rec, err := core.GetToken(context.Background(), "villa-1")
	if err != nil {
		t.Fatalf("get token failed: %v", err)
	}
	if rec.Owner != "alice" || rec.TokenURI != "ipfs://x" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.ShortTerm.Denom != domain.DefaultDenom {
		t.Errorf("expected default denom, got %s", rec.ShortTerm.Denom)
	}

	if len(events.published) != 1 || events.published[0].Action != "mint" || events.published[0].Sender != "alice" {
		t.Errorf("unexpected events: %+v", events.published)
	}

	// 重複鑄造同一 ID
	if _, err := core.Execute(context.Background(), &Command{Op: OpMint, TokenID: "villa-1", Caller: "bob", Now: testNow}); !errors.Is(err, domain.ErrClaimed) {
		t.Errorf("expected ErrClaimed, got %v", err)
	}
}

func TestExecute_FailureDoesNotPersist(t *testing.T) {
	core, store, bank, _ := newCoreFixture()
	mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "alice", Now: testNow})
	mustExecute(t, core, &Command{
		Op: OpListShortTerm, TokenID: "villa-1", Caller: "alice", Now: testNow,
		Denom: "u", PricePerDay: 10, AutoApprove: true,
	})

	// 押金不足，整條指令失敗
	_, err := core.Execute(context.Background(), &Command{
		Op: OpReserveShortTerm, TokenID: "villa-1", Caller: "bob", Now: testNow,
		RentingPeriod: []string{"2024/07/01", "2024/07/03"},
		Funds:         domain.Funds{Denom: "u", Amount: 19},
	})
	if !errors.Is(err, domain.ErrInsufficientDeposit) {
		t.Fatalf("expected ErrInsufficientDeposit, got %v", err)
	}
	if len(bank.sent) != 0 {
		t.Errorf("failed command must not pay out: %+v", bank.sent)
	}
	rec := store.tokens["villa-1"]
	if len(rec.ShortTerm.Bookings) != 0 || rec.ShortTerm.DepositTotal != 0 {
		t.Error("failed command leaked state into the store")
	}
}

func TestExecute_PaymentsRelayed(t *testing.T) {
	core, _, bank, _ := newCoreFixture()
	mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "alice", Now: testNow})
	mustExecute(t, core, &Command{
		Op: OpListShortTerm, TokenID: "villa-1", Caller: "alice", Now: testNow,
		Denom: "u", PricePerDay: 10, AutoApprove: true,
	})

	res := mustExecute(t, core, &Command{
		Op: OpReserveShortTerm, TokenID: "villa-1", Caller: "bob", Now: testNow,
		RentingPeriod: []string{"2024/07/01", "2024/07/03"},
		Funds:         domain.Funds{Denom: "u", Amount: 20},
	})
	if len(res.Payments) != 1 {
		t.Fatalf("expected 1 payment, got %+v", res.Payments)
	}
	if len(bank.sent) != 1 || bank.sent[0].ToAddress != "alice" || bank.sent[0].Amount != 20 {
		t.Errorf("payment not relayed to bank: %+v", bank.sent)
	}
}

func TestExecute_RefIDReplay(t *testing.T) {
	core, store, bank, _ := newCoreFixture()
	mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "alice", Now: testNow})
	mustExecute(t, core, &Command{
		Op: OpListShortTerm, TokenID: "villa-1", Caller: "alice", Now: testNow,
		Denom: "u", PricePerDay: 10, AutoApprove: true,
	})

	refID := uuid.New()
	cmd := &Command{
		RefID: refID, Op: OpReserveShortTerm, TokenID: "villa-1", Caller: "bob", Now: testNow,
		RentingPeriod: []string{"2024/07/01", "2024/07/03"},
		Funds:         domain.Funds{Denom: "u", Amount: 20},
	}
	first := mustExecute(t, core, cmd)
	second := mustExecute(t, core, cmd)

	// 重送回傳先前的結果，不重複執行也不重複撥款
	if first != second {
		t.Error("replay must return the prior result")
	}
	if len(bank.sent) != 1 {
		t.Errorf("replay must not pay twice: %+v", bank.sent)
	}
	if got := len(store.tokens["villa-1"].ShortTerm.Bookings); got != 1 {
		t.Errorf("expected 1 booking, got %d", got)
	}
}

func TestExecute_FailureAllowsRetry(t *testing.T) {
	core, _, _, _ := newCoreFixture()
	refID := uuid.New()

	// 同一 RefID 失敗後重試要能成功
	cmd := &Command{RefID: refID, Op: OpTransfer, TokenID: "missing", Caller: "alice", Recipient: "bob", Now: testNow}
	if _, err := core.Execute(context.Background(), cmd); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	mustExecute(t, core, &Command{Op: OpMint, TokenID: "missing", Caller: "alice", Now: testNow})
	mustExecute(t, core, cmd)
}

func TestExecute_OperatorGrantFlow(t *testing.T) {
	core, _, _, _ := newCoreFixture()
	ctx := context.Background()
	mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "alice", Now: testNow})

	// 過期的全權委託直接拒絕
	_, err := core.Execute(ctx, &Command{
		Op: OpApproveAll, Caller: "alice", Operator: "bob", Now: testNow,
		Expires: domain.ExpireAt(testNow.Add(-time.Hour)),
	})
	if !errors.Is(err, domain.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}

	mustExecute(t, core, &Command{Op: OpApproveAll, Caller: "alice", Operator: "bob", Now: testNow})

	// Operator 能替擁有者刊登
	mustExecute(t, core, &Command{
		Op: OpListShortTerm, TokenID: "villa-1", Caller: "bob", Now: testNow,
		Denom: "u", PricePerDay: 10,
	})

	mustExecute(t, core, &Command{Op: OpRevokeAll, Caller: "alice", Operator: "bob", Now: testNow})
	_, err = core.Execute(ctx, &Command{
		Op: OpListShortTerm, TokenID: "villa-1", Caller: "bob", Now: testNow,
		Denom: "u", PricePerDay: 10,
	})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner after revoke, got %v", err)
	}
}

func TestExecute_Burn(t *testing.T) {
	core, _, _, _ := newCoreFixture()
	ctx := context.Background()
	mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "alice", Now: testNow})

	if _, err := core.Execute(ctx, &Command{Op: OpBurn, TokenID: "villa-1", Caller: "bob", Now: testNow}); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("stranger burn: expected ErrNotOwner, got %v", err)
	}

	mustExecute(t, core, &Command{Op: OpBurn, TokenID: "villa-1", Caller: "alice", Now: testNow})
	if _, err := core.GetToken(ctx, "villa-1"); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound after burn, got %v", err)
	}
}

func TestExecute_UnknownOp(t *testing.T) {
	core, _, _, _ := newCoreFixture()
	mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "alice", Now: testNow})

	if _, err := core.Execute(context.Background(), &Command{Op: Op(99), TokenID: "villa-1", Caller: "alice", Now: testNow}); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("expected ErrUnknownOp, got %v", err)
	}
}

func TestExecute_LongTermEndToEnd(t *testing.T) {
	core, store, bank, _ := newCoreFixture()
	ctx := context.Background()

	mustExecute(t, core, &Command{Op: OpMint, TokenID: "villa-1", Caller: "landlord", Now: testNow})
	mustExecute(t, core, &Command{
		Op: OpListLongTerm, TokenID: "villa-1", Caller: "landlord", Now: testNow,
		Listed:   true,
		Landlord: domain.LandlordTerms{Denom: "unibi", PricePerMonth: 5000, RefundableDeposit: 10000},
	})
	mustExecute(t, core, &Command{
		Op: OpReserveLongTerm, TokenID: "villa-1", Caller: "tenant", Now: testNow,
		Tenant: domain.TenantTerms{DepositAmount: 10000, DepositDenom: "unibi"},
	})
	mustExecute(t, core, &Command{Op: OpApproveAll, Caller: "landlord", Operator: "tenant", Now: testNow})
	mustExecute(t, core, &Command{Op: OpActivateLongTerm, TokenID: "villa-1", Caller: "tenant", Now: testNow})
	mustExecute(t, core, &Command{
		Op: OpDepositLongTerm, TokenID: "villa-1", Caller: "tenant", Now: testNow,
		Funds: domain.Funds{Denom: "unibi", Amount: 10000},
	})

	_, err := core.Execute(ctx, &Command{Op: OpWithdrawToLandlord, TokenID: "villa-1", Caller: "landlord", Now: testNow, Amount: 1, Denom: "unibi"})
	if !errors.Is(err, domain.ErrEjariNotConfirmed) {
		t.Fatalf("expected ErrEjariNotConfirmed, got %v", err)
	}

	mustExecute(t, core, &Command{Op: OpSetEjari, TokenID: "villa-1", Caller: "tenant", Now: testNow, Ejari: true})
	mustExecute(t, core, &Command{Op: OpWithdrawToLandlord, TokenID: "villa-1", Caller: "landlord", Now: testNow, Amount: 10000, Denom: "unibi"})

	if len(bank.sent) != 1 || bank.sent[0].ToAddress != "landlord" || bank.sent[0].Amount != 10000 {
		t.Fatalf("unexpected payouts: %+v", bank.sent)
	}

	mustExecute(t, core, &Command{Op: OpFinalizeLongTerm, TokenID: "villa-1", Caller: "landlord", Now: testNow})
	rec := store.tokens["villa-1"]
	if rec.LongTerm.Reserved || rec.LongTerm.DepositTotal != 0 {
		t.Error("finalize did not reset the tenancy")
	}
	if !rec.LongTerm.Listed {
		t.Error("finalize must keep the listing")
	}
}
