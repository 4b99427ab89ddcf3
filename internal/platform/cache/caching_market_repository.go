package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"polygon_dashboard/internal/feature/bars/domain/entity"
	"polygon_dashboard/internal/feature/bars/usecase"
)

// CachingMarketRepository はMarketRepositoryをRedisキャッシュでデコレートします。
// 同一クエリの株価バー取得はTTLの間、上流APIを呼ばずにキャッシュから返されます。
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository はMarketRepositoryをRedisキャッシュでラップします。
// ttlが0以下の場合はDefaultTTL、namespaceが空の場合は"bars"を使用します。
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "bars"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetAggregates はキャッシュを確認し、ミス時は上流APIにフォールバックします。
func (c *CachingMarketRepository) GetAggregates(ctx context.Context, ticker, timespan, from, to string, adjusted bool) ([]entity.Bar, error) {
	// Redis未設定の場合はキャッシュをバイパス
	if c.rdb == nil {
		return c.inner.GetAggregates(ctx, ticker, timespan, from, to, adjusted)
	}

	key := fmt.Sprintf("%s:%s:%s:%s:%s:%t", c.namespace, safe(ticker), safe(timespan), from, to, adjusted)

	// 1) キャッシュを確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Bar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたキャッシュエントリは削除する
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) 上流APIにフォールバック
	out, err := c.inner.GetAggregates(ctx, ticker, timespan, from, to, adjusted)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュに保存（失敗しても処理は続行）
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
