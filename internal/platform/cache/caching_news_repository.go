package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"polygon_dashboard/internal/feature/news/domain/entity"
	"polygon_dashboard/internal/feature/news/usecase"
)

// CachingNewsRepository はNewsRepositoryをRedisキャッシュでデコレートします。
type CachingNewsRepository struct {
	inner     usecase.NewsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.NewsRepository = (*CachingNewsRepository)(nil)

// NewCachingNewsRepository はNewsRepositoryをRedisキャッシュでラップします。
// ttlが0以下の場合はDefaultTTL、namespaceが空の場合は"news"を使用します。
func NewCachingNewsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NewsRepository, namespace string) *CachingNewsRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "news"
	}
	return &CachingNewsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListNews はキャッシュを確認し、ミス時は上流APIにフォールバックします。
func (c *CachingNewsRepository) ListNews(ctx context.Context, ticker string, limit int) ([]entity.Article, error) {
	if c.rdb == nil {
		return c.inner.ListNews(ctx, ticker, limit)
	}

	key := fmt.Sprintf("%s:%s:%d", c.namespace, safe(ticker), limit)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Article
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListNews(ctx, ticker, limit)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
