// Package polygon はPolygon.io REST APIのクライアントを提供します。
package polygon

import (
	"os"
	"time"
)

// DefaultBaseURL はPolygon APIの本番エンドポイントです。
const DefaultBaseURL = "https://api.polygon.io"

// Config はPolygon APIクライアントの設定です。
type Config struct {
	APIKey  string        // クエリパラメータで渡す認証キー
	BaseURL string        // APIのベースURL
	Timeout time.Duration // HTTPリクエストのタイムアウト
}

// LoadConfig は環境変数からPolygon APIの設定を読み込みます。
func LoadConfig() Config {
	base := os.Getenv("POLYGON_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("POLYGON_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
