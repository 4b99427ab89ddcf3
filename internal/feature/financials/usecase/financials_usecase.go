// Package usecase は財務諸表データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"polygon_dashboard/internal/feature/financials/domain/entity"
)

const (
	// DefaultLimit は財務諸表クエリのデフォルト取得件数です。
	DefaultLimit = 30
	// MaxLimit は財務諸表クエリの最大取得件数です。
	MaxLimit = 100
)

// ErrTickerRequired は銘柄シンボルが未指定の場合に返されます。
var ErrTickerRequired = errors.New("ticker is required")

// validTimeframes は財務諸表APIが受け付ける期間種別です。空文字は全期間を意味します。
var validTimeframes = map[string]struct{}{
	"": {}, "annual": {}, "quarterly": {}, "ttm": {},
}

// FinancialsRepository は財務諸表データの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type FinancialsRepository interface {
	// ListFinancials は指定された銘柄の財務諸表レコードを取得します。
	// timeframeが空の場合は全期間種別を対象とします。
	ListFinancials(ctx context.Context, ticker string, limit int, timeframe string) ([]entity.Statement, error)
}

// financialsUsecase は財務諸表データ操作のユースケースを定義します。
type financialsUsecase struct {
	financials FinancialsRepository
}

// NewFinancialsUsecase はfinancialsUsecaseの新しいインスタンスを生成します。
func NewFinancialsUsecase(financials FinancialsRepository) *financialsUsecase {
	return &financialsUsecase{financials: financials}
}

// GetFinancials は指定された銘柄の財務諸表レコードを取得します。
// limitは1〜100に丸められ、0以下の場合はデフォルト値を使用します。
func (u *financialsUsecase) GetFinancials(ctx context.Context, ticker string, limit int, timeframe string) ([]entity.Statement, error) {
	if ticker == "" {
		return nil, ErrTickerRequired
	}
	if _, ok := validTimeframes[timeframe]; !ok {
		return nil, fmt.Errorf("invalid timeframe %q", timeframe)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return u.financials.ListFinancials(ctx, ticker, limit, timeframe)
}
