// Package http は外部API呼び出し用のHTTPクライアント生成を提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部API呼び出し用のタイムアウト付きHTTPクライアントを生成します。
// http.DefaultClient はタイムアウトを持たないため、外部API呼び出しには必ずこちらを使用すること。
//
// timeout はリクエスト全体（接続〜ボディ読み取り完了まで）の上限です。
// TCP接続とTLSハンドシェイクには個別の短いタイムアウトを設定し、
// 応答しないエンドポイントで全体タイムアウトを食い潰さないようにします。
func NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		// ポーリング的なアクセスパターンでもコネクションを使い回せるよう余裕をもたせる
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
