// Package usecase は株価バーデータ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"polygon_dashboard/internal/feature/bars/domain/entity"
)

const (
	// DefaultTimespan はバークエリのデフォルト時間間隔です。
	DefaultTimespan = "day"
	// DefaultRangeDays はfrom未指定時に遡るデフォルト日数です。
	DefaultRangeDays = 365
	// dateLayout は日付パラメータのフォーマットです。
	dateLayout = "2006-01-02"
)

// ErrTickerRequired は銘柄シンボルが未指定の場合に返されます。
var ErrTickerRequired = errors.New("ticker is required")

// validTimespans はPolygonの集計バーAPIが受け付ける時間間隔です。
var validTimespans = map[string]struct{}{
	"minute": {}, "hour": {}, "day": {}, "week": {}, "month": {}, "quarter": {}, "year": {},
}

// MarketRepository は株価バーデータの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetAggregates は指定された銘柄・時間間隔・期間の集計バーを取得します。
	GetAggregates(ctx context.Context, ticker, timespan, from, to string, adjusted bool) ([]entity.Bar, error)
}

// barsUsecase は株価バーデータ操作のユースケースを定義します。
type barsUsecase struct {
	market MarketRepository
}

// NewBarsUsecase はbarsUsecaseの新しいインスタンスを生成します。
func NewBarsUsecase(market MarketRepository) *barsUsecase {
	return &barsUsecase{market: market}
}

// GetBars は指定された銘柄と期間の株価バーを取得します。
// timespan未指定時は日足、to未指定時は当日、from未指定時はtoの1年前を使用します。
func (u *barsUsecase) GetBars(ctx context.Context, ticker, timespan, from, to string, adjusted bool) ([]entity.Bar, error) {
	if ticker == "" {
		return nil, ErrTickerRequired
	}

	if timespan == "" {
		timespan = DefaultTimespan
	}
	if _, ok := validTimespans[timespan]; !ok {
		return nil, fmt.Errorf("invalid timespan %q", timespan)
	}

	if to == "" {
		to = time.Now().UTC().Format(dateLayout)
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", to, err)
	}
	if from == "" {
		from = toDate.AddDate(0, 0, -DefaultRangeDays).Format(dateLayout)
	}
	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", from, err)
	}
	if fromDate.After(toDate) {
		return nil, fmt.Errorf("from date %s is after to date %s", from, to)
	}

	return u.market.GetAggregates(ctx, ticker, timespan, from, to, adjusted)
}
