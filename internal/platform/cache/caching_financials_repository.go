package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"polygon_dashboard/internal/feature/financials/domain/entity"
	"polygon_dashboard/internal/feature/financials/usecase"
)

// CachingFinancialsRepository はFinancialsRepositoryをRedisキャッシュでデコレートします。
type CachingFinancialsRepository struct {
	inner     usecase.FinancialsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.FinancialsRepository = (*CachingFinancialsRepository)(nil)

// NewCachingFinancialsRepository はFinancialsRepositoryをRedisキャッシュでラップします。
// ttlが0以下の場合はDefaultTTL、namespaceが空の場合は"financials"を使用します。
func NewCachingFinancialsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.FinancialsRepository, namespace string) *CachingFinancialsRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "financials"
	}
	return &CachingFinancialsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListFinancials はキャッシュを確認し、ミス時は上流APIにフォールバックします。
func (c *CachingFinancialsRepository) ListFinancials(ctx context.Context, ticker string, limit int, timeframe string) ([]entity.Statement, error) {
	if c.rdb == nil {
		return c.inner.ListFinancials(ctx, ticker, limit, timeframe)
	}

	key := fmt.Sprintf("%s:%s:%d:%s", c.namespace, safe(ticker), limit, safe(timeframe))

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Statement
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListFinancials(ctx, ticker, limit, timeframe)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
