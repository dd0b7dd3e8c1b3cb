package memory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/pkg/wal"
)

func TestMutexStore_CRUD(t *testing.T) {
	store, err := NewMutexStore(nil)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	ctx := context.Background()

	rec := domain.NewRecord("villa-1", "alice", "ipfs://x", nil)
	if err := store.Insert(ctx, rec); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := store.Insert(ctx, rec); !errors.Is(err, domain.ErrClaimed) {
		t.Errorf("duplicate insert: expected ErrClaimed, got %v", err)
	}

	loaded, err := store.Load(ctx, "villa-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Owner != "alice" {
		t.Errorf("expected owner alice, got %s", loaded.Owner)
	}

	loaded.Owner = "bob"
	if err := store.Save(ctx, loaded); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(ctx, domain.NewRecord("ghost", "x", "", nil)); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Errorf("save missing: expected ErrTokenNotFound, got %v", err)
	}

	if err := store.Remove(ctx, "villa-1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := store.Load(ctx, "villa-1"); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound after remove, got %v", err)
	}
}

func TestMutexStore_LoadReturnsCopy(t *testing.T) {
	store, _ := NewMutexStore(nil)
	ctx := context.Background()

	rec := domain.NewRecord("villa-1", "alice", "", nil)
	store.Insert(ctx, rec)

	// 改動載入的副本不能影響儲存的狀態
	loaded, _ := store.Load(ctx, "villa-1")
	loaded.Owner = "mallory"
	loaded.ShortTerm.Bookings = append(loaded.ShortTerm.Bookings, domain.Booking{Address: "mallory"})

	fresh, _ := store.Load(ctx, "villa-1")
	if fresh.Owner != "alice" || len(fresh.ShortTerm.Bookings) != 0 {
		t.Error("store state leaked through the loaded copy")
	}
}

func TestMutexStore_OperatorGrants(t *testing.T) {
	store, _ := NewMutexStore(nil)
	ctx := context.Background()

	if _, ok, _ := store.GetOperatorGrant(ctx, "alice", "bob"); ok {
		t.Fatal("unexpected grant on fresh store")
	}

	expires := domain.ExpireAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := store.PutOperatorGrant(ctx, "alice", "bob", expires); err != nil {
		t.Fatalf("put grant failed: %v", err)
	}
	grant, ok, err := store.GetOperatorGrant(ctx, "alice", "bob")
	if err != nil || !ok {
		t.Fatalf("get grant failed: ok=%v err=%v", ok, err)
	}
	if !grant.At.Equal(expires.At) {
		t.Errorf("unexpected expiration: %v", grant.At)
	}

	if err := store.DeleteOperatorGrant(ctx, "alice", "bob"); err != nil {
		t.Fatalf("delete grant failed: %v", err)
	}
	// 再刪一次也算成功
	if err := store.DeleteOperatorGrant(ctx, "alice", "bob"); err != nil {
		t.Fatalf("repeated delete failed: %v", err)
	}
}

func TestMutexStore_WALRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	ctx := context.Background()

	journal, err := wal.NewWAL(path)
	if err != nil {
		t.Fatalf("open wal failed: %v", err)
	}
	store, err := NewMutexStore(journal)
	if err != nil {
		t.Fatalf("init store failed: %v", err)
	}

	rec := domain.NewRecord("villa-1", "alice", "ipfs://x", nil)
	rec.ShortTerm.Bookings = []domain.Booking{{Address: "bob", RentingPeriod: []string{"2024/01/01", "2024/01/03"}, DepositAmount: 20}}
	rec.ShortTerm.DepositTotal = 20
	store.Insert(ctx, rec)
	store.Insert(ctx, domain.NewRecord("villa-2", "alice", "", nil))
	store.Remove(ctx, "villa-2")
	store.PutOperatorGrant(ctx, "alice", "bob", domain.Expiration{})
	store.PutOperatorGrant(ctx, "alice", "carol", domain.Expiration{})
	store.DeleteOperatorGrant(ctx, "alice", "carol")
	if err := journal.Close(); err != nil {
		t.Fatalf("close wal failed: %v", err)
	}

	// 重開 WAL 並重放
	journal2, err := wal.NewWAL(path)
	if err != nil {
		t.Fatalf("reopen wal failed: %v", err)
	}
	defer journal2.Close()
	recovered, err := NewMutexStore(journal2)
	if err != nil {
		t.Fatalf("recovery failed: %v", err)
	}

	loaded, err := recovered.Load(ctx, "villa-1")
	if err != nil {
		t.Fatalf("load after recovery failed: %v", err)
	}
	if loaded.Owner != "alice" || loaded.ShortTerm.DepositTotal != 20 || len(loaded.ShortTerm.Bookings) != 1 {
		t.Errorf("recovered record mismatch: %+v", loaded)
	}
	// tombstone 生效
	if _, err := recovered.Load(ctx, "villa-2"); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound for removed token, got %v", err)
	}
	if _, ok, _ := recovered.GetOperatorGrant(ctx, "alice", "bob"); !ok {
		t.Error("grant lost in recovery")
	}
	if _, ok, _ := recovered.GetOperatorGrant(ctx, "alice", "carol"); ok {
		t.Error("deleted grant resurrected in recovery")
	}
}
