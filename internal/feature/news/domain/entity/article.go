// Package entity はnewsフィーチャーのドメインモデルを定義します。
package entity

// Article はマーケットニュース記事1件です。
type Article struct {
	Title        string
	Description  string
	Author       string
	PublishedUTC string // 公開日時（RFC3339）
	Tickers      []string
	ArticleURL   string
	ImageURL     string
}
