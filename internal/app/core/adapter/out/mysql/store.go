package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
	"github.com/codedestate/go-rental-ledger/pkg/mysql"
)

// sqlToken 對應資料庫的 tokens 表
// 租賃子狀態與授權列表以 JSON 欄位存放，整筆 Record 永遠一次讀一次寫
type sqlToken struct {
	TokenID   string `gorm:"column:token_id;primaryKey;size:128"`
	Owner     string `gorm:"index;size:128"`
	TokenURI  string `gorm:"column:token_uri"`
	Extension []byte
	Approvals []byte `gorm:"type:json"`
	LongTerm  []byte `gorm:"column:longterm_rental;type:json"`
	ShortTerm []byte `gorm:"column:shortterm_rental;type:json"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlToken) TableName() string {
	return "tokens"
}

// sqlOperator 對應資料庫的 token_operators 表
type sqlOperator struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Owner     string     `gorm:"size:128;uniqueIndex:idx_owner_operator"`
	Operator  string     `gorm:"size:128;uniqueIndex:idx_owner_operator"`
	ExpiresAt *time.Time // NULL 表示永不過期
	UpdatedAt int64      `gorm:"autoUpdateTime:milli"`
}

func (*sqlOperator) TableName() string {
	return "token_operators"
}

// MySQLStore 以 GORM 實作的 Token Registry + Operator 授權儲存
type MySQLStore struct {
	client *mysql.Client
}

func NewMySQLStore(client *mysql.Client) *MySQLStore {
	return &MySQLStore{
		client: client,
	}
}

// Migrate 建立資料表 (啟動時呼叫一次)
func (s *MySQLStore) Migrate() error {
	return s.client.DB().AutoMigrate(&sqlToken{}, &sqlOperator{})
}

// toRow Domain Record -> 資料列
func toRow(rec *domain.Record) (*sqlToken, error) {
	approvals, err := json.Marshal(rec.Approvals)
	if err != nil {
		return nil, err
	}
	longterm, err := json.Marshal(rec.LongTerm)
	if err != nil {
		return nil, err
	}
	shortterm, err := json.Marshal(rec.ShortTerm)
	if err != nil {
		return nil, err
	}
	return &sqlToken{
		TokenID:   rec.TokenID,
		Owner:     rec.Owner,
		TokenURI:  rec.TokenURI,
		Extension: rec.Extension,
		Approvals: approvals,
		LongTerm:  longterm,
		ShortTerm: shortterm,
	}, nil
}

// toRecord 資料列 -> Domain Record
func toRecord(row *sqlToken) (*domain.Record, error) {
	rec := &domain.Record{
		TokenID:   row.TokenID,
		Owner:     row.Owner,
		TokenURI:  row.TokenURI,
		Extension: row.Extension,
	}
	if len(row.Approvals) > 0 {
		if err := json.Unmarshal(row.Approvals, &rec.Approvals); err != nil {
			return nil, err
		}
	}
	if len(row.LongTerm) > 0 {
		if err := json.Unmarshal(row.LongTerm, &rec.LongTerm); err != nil {
			return nil, err
		}
	}
	if len(row.ShortTerm) > 0 {
		if err := json.Unmarshal(row.ShortTerm, &rec.ShortTerm); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Load 載入一筆 Record
func (s *MySQLStore) Load(ctx context.Context, tokenID string) (*domain.Record, error) {
	var row sqlToken
	err := s.client.DB().WithContext(ctx).Where("token_id = ?", tokenID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return toRecord(&row)
}

// Save 覆寫既有 Record
func (s *MySQLStore) Save(ctx context.Context, rec *domain.Record) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}
	result := s.client.DB().WithContext(ctx).
		Model(&sqlToken{}).
		Where("token_id = ?", rec.TokenID).
		Updates(map[string]any{
			"owner":            row.Owner,
			"token_uri":        row.TokenURI,
			"extension":        row.Extension,
			"approvals":        row.Approvals,
			"longterm_rental":  row.LongTerm,
			"shortterm_rental": row.ShortTerm,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// Insert 建立新 Record (鑄造)
// 先檢查 ID 是否已存在，存在回傳 ErrClaimed
func (s *MySQLStore) Insert(ctx context.Context, rec *domain.Record) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}
	return s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing sqlToken
		err := tx.Where("token_id = ?", rec.TokenID).First(&existing).Error
		if err == nil {
			return domain.ErrClaimed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(row).Error
	})
}

// Remove 刪除 Record (銷毀)
func (s *MySQLStore) Remove(ctx context.Context, tokenID string) error {
	result := s.client.DB().WithContext(ctx).Where("token_id = ?", tokenID).Delete(&sqlToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// GetOperatorGrant 查詢 (owner, operator) 的授權
func (s *MySQLStore) GetOperatorGrant(ctx context.Context, owner, operator string) (domain.Expiration, bool, error) {
	var row sqlOperator
	err := s.client.DB().WithContext(ctx).
		Where("owner = ? AND operator = ?", owner, operator).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Expiration{}, false, nil
		}
		return domain.Expiration{}, false, err
	}
	var grant domain.Expiration
	if row.ExpiresAt != nil {
		grant.At = *row.ExpiresAt
	}
	return grant, true, nil
}

// PutOperatorGrant 寫入授權，同鍵覆蓋
func (s *MySQLStore) PutOperatorGrant(ctx context.Context, owner, operator string, expires domain.Expiration) error {
	var expiresAt *time.Time
	if !expires.At.IsZero() {
		at := expires.At
		expiresAt = &at
	}
	return s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing sqlOperator
		err := tx.Where("owner = ? AND operator = ?", owner, operator).First(&existing).Error
		if err == nil {
			return tx.Model(&existing).Update("expires_at", expiresAt).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&sqlOperator{Owner: owner, Operator: operator, ExpiresAt: expiresAt}).Error
	})
}

// DeleteOperatorGrant 移除授權，不存在時也算成功
func (s *MySQLStore) DeleteOperatorGrant(ctx context.Context, owner, operator string) error {
	return s.client.DB().WithContext(ctx).
		Where("owner = ? AND operator = ?", owner, operator).
		Delete(&sqlOperator{}).Error
}

var _ usecase.TokenRegistry = (*MySQLStore)(nil)
var _ usecase.OperatorRegistry = (*MySQLStore)(nil)
