// Package usecase は企業情報・分割・配当データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"polygon_dashboard/internal/feature/reference/domain/entity"
)

const (
	// DefaultListLimit は分割・配当クエリのデフォルト取得件数です。
	DefaultListLimit = 50
	// MaxListLimit は分割・配当クエリの最大取得件数です。
	MaxListLimit = 1000
)

// ErrTickerRequired は銘柄シンボルが未指定の場合に返されます。
var ErrTickerRequired = errors.New("ticker is required")

// ReferenceRepository は参照データ（企業詳細・分割・配当）の取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ReferenceRepository interface {
	// GetTickerDetails は指定された銘柄の企業詳細を取得します。
	GetTickerDetails(ctx context.Context, ticker string) (*entity.Company, error)
	// ListSplits は絞り込み条件に一致する株式分割レコードを取得します。
	ListSplits(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error)
	// ListDividends は指定された銘柄の配当レコードを取得します。
	ListDividends(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error)
}

// referenceUsecase は参照データ操作のユースケースを定義します。
type referenceUsecase struct {
	reference ReferenceRepository
}

// NewReferenceUsecase はreferenceUsecaseの新しいインスタンスを生成します。
func NewReferenceUsecase(reference ReferenceRepository) *referenceUsecase {
	return &referenceUsecase{reference: reference}
}

// GetCompany は指定された銘柄の企業詳細を取得します。
func (u *referenceUsecase) GetCompany(ctx context.Context, ticker string) (*entity.Company, error) {
	if ticker == "" {
		return nil, ErrTickerRequired
	}
	return u.reference.GetTickerDetails(ctx, ticker)
}

// ListSplits は株式分割レコードを取得します。銘柄は省略可能（全銘柄が対象）です。
// limitは1〜1000に丸められ、0以下の場合はデフォルト値を使用します。
func (u *referenceUsecase) ListSplits(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	return u.reference.ListSplits(ctx, filter)
}

// ListDividends は指定された銘柄の配当レコードを取得します。
func (u *referenceUsecase) ListDividends(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error) {
	if ticker == "" {
		return nil, ErrTickerRequired
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return u.reference.ListDividends(ctx, ticker, limit)
}
