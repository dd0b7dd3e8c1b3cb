package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
	"github.com/codedestate/go-rental-ledger/pkg/wal"
)

// walEntry WAL 裡的一筆快照
// Kind 區分 Token 快照與 Operator 授權；重放時 last-write-wins
type walEntry struct {
	Kind     string             `json:"kind"` // "token" | "operator"
	TokenID  string             `json:"token_id,omitempty"`
	Record   *domain.Record     `json:"record,omitempty"`
	Owner    string             `json:"owner,omitempty"`
	Operator string             `json:"operator,omitempty"`
	Expires  *domain.Expiration `json:"expires,omitempty"`
	Deleted  bool               `json:"deleted,omitempty"`
}

type grantKey struct {
	Owner    string
	Operator string
}

// MutexStore 是一個使用 Mutex 實現的 Token Registry + Operator 授權儲存
//
// 結構:
//
//	tokens: Token 狀態 Map
//	operators: Operator 授權 Map，鍵為 (owner, operator)
//	mu: RWMutex 保護兩個 Map
//	wal: Write-Ahead Log 實例 (可為 nil，純記憶體模式)
//
// 每次寫入先記 WAL 再更新 Map；Load 回傳深拷貝，
// 呼叫端失敗時不會污染儲存的狀態。
type MutexStore struct {
	tokens    map[string]*domain.Record
	operators map[grantKey]domain.Expiration
	mu        sync.RWMutex
	wal       *wal.WAL
}

// NewMutexStore 建立一個新的 MutexStore 實例
//
// 參數:
//
//	wal: Write-Ahead Log 實例，nil 表示不做持久化
//
// 回傳:
//
//	*MutexStore: MutexStore 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexStore(journal *wal.WAL) (*MutexStore, error) {
	store := &MutexStore{
		tokens:    make(map[string]*domain.Record),
		operators: make(map[grantKey]domain.Expiration),
		wal:       journal,
	}
	if journal != nil {
		if err := store.recoverFromWAL(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// recoverFromWAL 從 WAL 檔案恢復狀態
// 只有 NewMutexStore 呼叫，單執行緒，無需 Lock
func (m *MutexStore) recoverFromWAL() error {
	return m.wal.ReadAll(func(jsonRaw []byte) error {
		var entry walEntry
		if err := json.Unmarshal(jsonRaw, &entry); err != nil {
			return err
		}
		m.applyEntry(&entry)
		return nil
	})
}

// applyEntry 套用單筆快照至記憶體 (不寫入 WAL)
func (m *MutexStore) applyEntry(entry *walEntry) {
	switch entry.Kind {
	case "token":
		if entry.Deleted {
			delete(m.tokens, entry.TokenID)
		} else if entry.Record != nil {
			m.tokens[entry.TokenID] = entry.Record
		}
	case "operator":
		key := grantKey{Owner: entry.Owner, Operator: entry.Operator}
		if entry.Deleted {
			delete(m.operators, key)
		} else if entry.Expires != nil {
			m.operators[key] = *entry.Expires
		}
	}
}

// journal 寫入一筆快照並刷入硬碟 (Critical Path)
func (m *MutexStore) journal(entry *walEntry) error {
	if m.wal == nil {
		return nil
	}
	if err := m.wal.Write(entry); err != nil {
		return err
	}
	return m.wal.Flush()
}

// Load 取得指定 Token 的深拷貝
func (m *MutexStore) Load(ctx context.Context, tokenID string) (*domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.tokens[tokenID]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	return rec.Clone(), nil
}

// Save 覆寫既有 Token
func (m *MutexStore) Save(ctx context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[rec.TokenID]; !ok {
		return domain.ErrTokenNotFound
	}
	dup := rec.Clone()
	if err := m.journal(&walEntry{Kind: "token", TokenID: rec.TokenID, Record: dup}); err != nil {
		return err
	}
	m.tokens[rec.TokenID] = dup
	return nil
}

// Insert 建立新 Token，ID 重複時回傳 ErrClaimed
func (m *MutexStore) Insert(ctx context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[rec.TokenID]; ok {
		return domain.ErrClaimed
	}
	dup := rec.Clone()
	if err := m.journal(&walEntry{Kind: "token", TokenID: rec.TokenID, Record: dup}); err != nil {
		return err
	}
	m.tokens[rec.TokenID] = dup
	return nil
}

// Remove 刪除 Token (銷毀)，WAL 裡留 tombstone
func (m *MutexStore) Remove(ctx context.Context, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[tokenID]; !ok {
		return domain.ErrTokenNotFound
	}
	if err := m.journal(&walEntry{Kind: "token", TokenID: tokenID, Deleted: true}); err != nil {
		return err
	}
	delete(m.tokens, tokenID)
	return nil
}

// GetOperatorGrant 查詢 (owner, operator) 的授權
func (m *MutexStore) GetOperatorGrant(ctx context.Context, owner, operator string) (domain.Expiration, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	grant, ok := m.operators[grantKey{Owner: owner, Operator: operator}]
	return grant, ok, nil
}

// PutOperatorGrant 寫入授權，覆蓋舊值
func (m *MutexStore) PutOperatorGrant(ctx context.Context, owner, operator string, expires domain.Expiration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.journal(&walEntry{Kind: "operator", Owner: owner, Operator: operator, Expires: &expires}); err != nil {
		return err
	}
	m.operators[grantKey{Owner: owner, Operator: operator}] = expires
	return nil
}

// DeleteOperatorGrant 移除授權，不存在時也算成功
func (m *MutexStore) DeleteOperatorGrant(ctx context.Context, owner, operator string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.journal(&walEntry{Kind: "operator", Owner: owner, Operator: operator, Deleted: true}); err != nil {
		return err
	}
	delete(m.operators, grantKey{Owner: owner, Operator: operator})
	return nil
}

var _ usecase.TokenRegistry = (*MutexStore)(nil)
var _ usecase.OperatorRegistry = (*MutexStore)(nil)
