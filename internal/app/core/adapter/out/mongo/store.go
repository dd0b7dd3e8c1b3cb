package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
)

// tokenDoc tokens collection 的文件結構，_id 即 token_id
type tokenDoc struct {
	TokenID   string                 `bson:"_id"`
	Owner     string                 `bson:"owner"`
	TokenURI  string                 `bson:"token_uri"`
	Extension []byte                 `bson:"extension,omitempty"`
	Approvals []domain.Approval      `bson:"approvals,omitempty"`
	LongTerm  domain.LongTermRental  `bson:"longterm_rental"`
	ShortTerm domain.ShortTermRental `bson:"shortterm_rental"`
	UpdatedAt time.Time              `bson:"updated_at"`
}

// operatorDoc token_operators collection 的文件結構
type operatorDoc struct {
	Owner     string     `bson:"owner"`
	Operator  string     `bson:"operator"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// MongoStore 以 mongo-driver 實作的 Token Registry + Operator 授權儲存
type MongoStore struct {
	tokens    *mongo.Collection
	operators *mongo.Collection
}

// NewMongoStore 建立 MongoStore
//
// 參數:
//
//	db: 已連線的 mongo Database
//
// 回傳:
//
//	*MongoStore: MongoStore 實例
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		tokens:    db.Collection("tokens"),
		operators: db.Collection("token_operators"),
	}
}

// EnsureIndexes 建立 (owner, operator) 唯一索引 (啟動時呼叫一次)
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.operators.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "operator", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func toDoc(rec *domain.Record) *tokenDoc {
	return &tokenDoc{
		TokenID:   rec.TokenID,
		Owner:     rec.Owner,
		TokenURI:  rec.TokenURI,
		Extension: rec.Extension,
		Approvals: rec.Approvals,
		LongTerm:  rec.LongTerm,
		ShortTerm: rec.ShortTerm,
		UpdatedAt: time.Now(),
	}
}

func toRecord(doc *tokenDoc) *domain.Record {
	return &domain.Record{
		TokenID:   doc.TokenID,
		Owner:     doc.Owner,
		TokenURI:  doc.TokenURI,
		Extension: doc.Extension,
		Approvals: doc.Approvals,
		LongTerm:  doc.LongTerm,
		ShortTerm: doc.ShortTerm,
	}
}

// Load 載入一筆 Record
func (s *MongoStore) Load(ctx context.Context, tokenID string) (*domain.Record, error) {
	var doc tokenDoc
	err := s.tokens.FindOne(ctx, bson.M{"_id": tokenID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return toRecord(&doc), nil
}

// Save 覆寫既有 Record (不做 upsert，未鑄造的 ID 回傳 ErrTokenNotFound)
func (s *MongoStore) Save(ctx context.Context, rec *domain.Record) error {
	result, err := s.tokens.ReplaceOne(ctx, bson.M{"_id": rec.TokenID}, toDoc(rec))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// Insert 建立新 Record，_id 重複時回傳 ErrClaimed
func (s *MongoStore) Insert(ctx context.Context, rec *domain.Record) error {
	_, err := s.tokens.InsertOne(ctx, toDoc(rec))
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrClaimed
	}
	return err
}

// Remove 刪除 Record
func (s *MongoStore) Remove(ctx context.Context, tokenID string) error {
	result, err := s.tokens.DeleteOne(ctx, bson.M{"_id": tokenID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// GetOperatorGrant 查詢 (owner, operator) 的授權
func (s *MongoStore) GetOperatorGrant(ctx context.Context, owner, operator string) (domain.Expiration, bool, error) {
	var doc operatorDoc
	err := s.operators.FindOne(ctx, bson.M{"owner": owner, "operator": operator}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Expiration{}, false, nil
		}
		return domain.Expiration{}, false, err
	}
	var grant domain.Expiration
	if doc.ExpiresAt != nil {
		grant.At = *doc.ExpiresAt
	}
	return grant, true, nil
}

// PutOperatorGrant 寫入授權 (upsert)
func (s *MongoStore) PutOperatorGrant(ctx context.Context, owner, operator string, expires domain.Expiration) error {
	var expiresAt *time.Time
	if !expires.At.IsZero() {
		at := expires.At
		expiresAt = &at
	}
	doc := operatorDoc{Owner: owner, Operator: operator, ExpiresAt: expiresAt, UpdatedAt: time.Now()}
	_, err := s.operators.ReplaceOne(ctx,
		bson.M{"owner": owner, "operator": operator},
		doc,
		options.Replace().SetUpsert(true))
	return err
}

// DeleteOperatorGrant 移除授權，不存在時也算成功
func (s *MongoStore) DeleteOperatorGrant(ctx context.Context, owner, operator string) error {
	_, err := s.operators.DeleteOne(ctx, bson.M{"owner": owner, "operator": operator})
	return err
}

var _ usecase.TokenRegistry = (*MongoStore)(nil)
var _ usecase.OperatorRegistry = (*MongoStore)(nil)
