// Package usecase はマーケットニュース取得のビジネスロジックを実装します。
package usecase

import (
	"context"

	"polygon_dashboard/internal/feature/news/domain/entity"
)

const (
	// DefaultLimit はニュースクエリのデフォルト取得件数です。
	DefaultLimit = 5
	// MaxLimit はニュースクエリの最大取得件数です。
	MaxLimit = 50
)

// NewsRepository はニュース記事の取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NewsRepository interface {
	// ListNews はニュース記事を取得します。tickerが空の場合は全銘柄が対象です。
	ListNews(ctx context.Context, ticker string, limit int) ([]entity.Article, error)
}

// newsUsecase はニュース取得のユースケースを定義します。
type newsUsecase struct {
	news NewsRepository
}

// NewNewsUsecase はnewsUsecaseの新しいインスタンスを生成します。
func NewNewsUsecase(news NewsRepository) *newsUsecase {
	return &newsUsecase{news: news}
}

// GetNews はニュース記事を取得します。銘柄は省略可能です。
// limitは1〜50に丸められ、0以下の場合はデフォルト値を使用します。
func (u *newsUsecase) GetNews(ctx context.Context, ticker string, limit int) ([]entity.Article, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return u.news.ListNews(ctx, ticker, limit)
}
