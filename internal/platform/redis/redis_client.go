// Package redis はキャッシュ用Redisクライアントの生成を提供します。
package redis

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout は起動時の接続確認にかける上限時間です。
const pingTimeout = 3 * time.Second

// NewRedisClient は環境変数からRedisクライアントを生成し、接続確認まで行います。
//
// 参照する環境変数:
//   - REDIS_HOST / REDIS_PORT: 接続先（例: localhost / 6379）
//   - REDIS_PASSWORD: 認証が必要な場合のみ設定
//
// 接続確認に失敗した場合はエラーを返します。キャッシュなしで動作を継続するか
// どうかは呼び出し元が判断します。
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
