package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
)

const (
	localTTL     = 5 * time.Minute
	memcachedTTL = int32(15 * 60) // Memcached 用秒數
	maxLocalSize = 1000
)

// CachedRegistry 是 TokenRegistry 的兩層讀取快取裝飾器
// 第一層是行程內的 ccache，第二層是 Memcached；
// 任何寫入都先落到內層儲存，成功後讓兩層快取失效。
// 快取只加速讀取，正確性仍由內層儲存保證。
type CachedRegistry struct {
	inner           usecase.TokenRegistry
	localCache      *ccache.Cache[*domain.Record]
	memcachedClient *memcache.Client
}

// NewCachedRegistry 建立快取裝飾器
//
// 參數:
//
//	inner: 被包裝的 TokenRegistry
//	memcachedHost: Memcached 位址，空字串表示只用本地快取
//
// 回傳:
//
//	*CachedRegistry: 裝飾後的 Registry
func NewCachedRegistry(inner usecase.TokenRegistry, memcachedHost string) *CachedRegistry {
	registry := &CachedRegistry{
		inner:      inner,
		localCache: ccache.New(ccache.Configure[*domain.Record]().MaxSize(maxLocalSize)),
	}
	if memcachedHost != "" {
		registry.memcachedClient = memcache.New(memcachedHost)
		log.Printf("token cache initialized with memcached at %s", memcachedHost)
	}
	return registry
}

func cacheKey(tokenID string) string {
	return "token:" + tokenID
}

// Load 先查本地快取，再查 Memcached，最後才進內層儲存
// 回傳值一律是深拷貝，呼叫端改壞了也不影響快取
func (r *CachedRegistry) Load(ctx context.Context, tokenID string) (*domain.Record, error) {
	key := cacheKey(tokenID)

	// 1. 本地快取 (Fast path)
	if item := r.localCache.Get(key); item != nil && !item.Expired() {
		return item.Value().Clone(), nil
	}

	// 2. Memcached
	if r.memcachedClient != nil {
		if cached, err := r.memcachedClient.Get(key); err == nil {
			var rec domain.Record
			if err := json.Unmarshal(cached.Value, &rec); err == nil {
				r.localCache.Set(key, rec.Clone(), localTTL)
				return &rec, nil
			}
			log.Printf("bad cache payload, falling through: key=%s", key)
		} else if !errors.Is(err, memcache.ErrCacheMiss) {
			log.Printf("memcached get failed: key=%s err=%v", key, err)
		}
	}

	// 3. 內層儲存
	rec, err := r.inner.Load(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	r.fill(key, rec)
	return rec, nil
}

// fill 寫入兩層快取
func (r *CachedRegistry) fill(key string, rec *domain.Record) {
	r.localCache.Set(key, rec.Clone(), localTTL)
	if r.memcachedClient == nil {
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		log.Printf("marshal cache payload failed: key=%s err=%v", key, err)
		return
	}
	if err := r.memcachedClient.Set(&memcache.Item{Key: key, Value: payload, Expiration: memcachedTTL}); err != nil {
		log.Printf("memcached set failed: key=%s err=%v", key, err)
	}
}

// invalidate 讓兩層快取失效
func (r *CachedRegistry) invalidate(tokenID string) {
	key := cacheKey(tokenID)
	r.localCache.Delete(key)
	if r.memcachedClient == nil {
		return
	}
	if err := r.memcachedClient.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		log.Printf("memcached delete failed: key=%s err=%v", key, err)
	}
}

// Save 寫入內層儲存，成功後失效快取
func (r *CachedRegistry) Save(ctx context.Context, rec *domain.Record) error {
	if err := r.inner.Save(ctx, rec); err != nil {
		return err
	}
	r.invalidate(rec.TokenID)
	return nil
}

// Insert 寫入內層儲存，成功後失效快取
func (r *CachedRegistry) Insert(ctx context.Context, rec *domain.Record) error {
	if err := r.inner.Insert(ctx, rec); err != nil {
		return err
	}
	r.invalidate(rec.TokenID)
	return nil
}

// Remove 刪除內層儲存，成功後失效快取
func (r *CachedRegistry) Remove(ctx context.Context, tokenID string) error {
	if err := r.inner.Remove(ctx, tokenID); err != nil {
		return err
	}
	r.invalidate(tokenID)
	return nil
}

var _ usecase.TokenRegistry = (*CachedRegistry)(nil)
