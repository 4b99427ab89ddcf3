// Package cache はリポジトリインターフェースに対するRedisキャッシュ実装を提供します。
//
// 各デコレーターは同じインターフェースを実装する内側のリポジトリをラップし、
// TTL付きのメモ化を透過的に追加します。Redisクライアントがnilの場合は
// キャッシュをバイパスして内側のリポジトリを直接呼び出します。
package cache

import (
	"strings"
	"time"
)

// DefaultTTL はキャッシュエントリのデフォルト有効期間です。
// 元になったダッシュボードのAPIキャッシュ（30分）に合わせています。
const DefaultTTL = 30 * time.Minute

// safe はRedisキーに使えない文字をエスケープします。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
