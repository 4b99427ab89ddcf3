package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"polygon_dashboard/internal/feature/reference/domain/entity"
	"polygon_dashboard/internal/feature/reference/usecase"
)

// CachingReferenceRepository はReferenceRepositoryをRedisキャッシュでデコレートします。
// 企業詳細・分割・配当の3種類のクエリをそれぞれ別のキー空間でキャッシュします。
type CachingReferenceRepository struct {
	inner     usecase.ReferenceRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ReferenceRepository = (*CachingReferenceRepository)(nil)

// NewCachingReferenceRepository はReferenceRepositoryをRedisキャッシュでラップします。
// ttlが0以下の場合はDefaultTTL、namespaceが空の場合は"reference"を使用します。
func NewCachingReferenceRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ReferenceRepository, namespace string) *CachingReferenceRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "reference"
	}
	return &CachingReferenceRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// getOrFetch はキャッシュ確認 → フォールバック → 保存の共通処理です。
// fetchの結果はJSONでシリアライズしてTTL付きで保存されます。
func getOrFetch[T any](ctx context.Context, c *CachingReferenceRepository, key string, fetch func() (T, error)) (T, error) {
	if c.rdb == nil {
		return fetch()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたキャッシュエントリは削除する
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := fetch()
	if err != nil {
		return out, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// GetTickerDetails はキャッシュを確認し、ミス時は上流APIにフォールバックします。
func (c *CachingReferenceRepository) GetTickerDetails(ctx context.Context, ticker string) (*entity.Company, error) {
	key := fmt.Sprintf("%s:company:%s", c.namespace, safe(ticker))
	return getOrFetch(ctx, c, key, func() (*entity.Company, error) {
		return c.inner.GetTickerDetails(ctx, ticker)
	})
}

// ListSplits はキャッシュを確認し、ミス時は上流APIにフォールバックします。
func (c *CachingReferenceRepository) ListSplits(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error) {
	key := fmt.Sprintf("%s:splits:%s:%d:%s:%s:%s:%s",
		c.namespace, safe(filter.Ticker), filter.Limit,
		filter.ExecutionDateGT, filter.ExecutionDateGTE,
		filter.ExecutionDateLT, filter.ExecutionDateLTE)
	return getOrFetch(ctx, c, key, func() ([]entity.Split, error) {
		return c.inner.ListSplits(ctx, filter)
	})
}

// ListDividends はキャッシュを確認し、ミス時は上流APIにフォールバックします。
func (c *CachingReferenceRepository) ListDividends(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error) {
	key := fmt.Sprintf("%s:dividends:%s:%d", c.namespace, safe(ticker), limit)
	return getOrFetch(ctx, c, key, func() ([]entity.Dividend, error) {
		return c.inner.ListDividends(ctx, ticker, limit)
	})
}
