// Package usecase は株式分割データの全件CSVエクスポートを実装します。
package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	refentity "polygon_dashboard/internal/feature/reference/domain/entity"
	"polygon_dashboard/internal/shared/format"
	"polygon_dashboard/internal/shared/ratelimiter"
)

// DefaultPageLimit は1ページあたりの取得件数です。
const DefaultPageLimit = 1000

// csvHeader は出力CSVのカラムです。この集合と順序は固定です。
var csvHeader = []string{"ticker", "execution_date", "split_from", "split_to", "adj_factor"}

// SplitsPager はカーソル方式でページングされた分割データの取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SplitsPager interface {
	// ListSplitsPage は1ページ分の分割レコードと次ページのカーソルを返します。
	// カーソルが空文字の場合、それが最終ページです。
	ListSplitsPage(ctx context.Context, limit int, cursor string) ([]refentity.Split, string, error)
}

// ExportUsecase は全銘柄の株式分割データを取得し、CSVファイルに書き出すユースケースです。
// APIのレートリミットを考慮して、リクエスト間に適切な待機時間を設けます。
type ExportUsecase struct {
	pager       SplitsPager
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewExportUsecase は新しいExportUsecaseを作成します。
func NewExportUsecase(pager SplitsPager, rateLimiter ratelimiter.RateLimiterInterface) *ExportUsecase {
	return &ExportUsecase{pager: pager, rateLimiter: rateLimiter}
}

// fetchAll はカーソルを辿って全ページの分割レコードを収集します。
// maxPagesが正の場合、そのページ数で打ち切ります。
func (eu *ExportUsecase) fetchAll(ctx context.Context, pageLimit, maxPages int) ([]refentity.Split, error) {
	var all []refentity.Split
	cursor := ""
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		eu.rateLimiter.WaitIfNeeded()

		splits, next, err := eu.pager.ListSplitsPage(ctx, pageLimit, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetch splits page %d: %w", page, err)
		}
		all = append(all, splits...)
		slog.Info("fetched splits page", "page", page, "records", len(splits), "total", len(all))

		if next == "" || (maxPages > 0 && page >= maxPages) {
			return all, nil
		}
		cursor = next
	}
}

// ExportAll は全分割レコードを取得し、タイムスタンプ付きのCSVファイルに書き出します。
// 書き出したファイルのパスを返します。
func (eu *ExportUsecase) ExportAll(ctx context.Context, outDir string, pageLimit, maxPages int) (string, error) {
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}

	splits, err := eu.fetchAll(ctx, pageLimit, maxPages)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outDir, fmt.Sprintf("polygon_splits_data_%s.csv", time.Now().Format("20060102_150405")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close csv file", "path", path, "error", err)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, s := range splits {
		record := []string{
			s.Ticker,
			s.ExecutionDate,
			format.Number(s.SplitFrom),
			format.Number(s.SplitTo),
			format.Decimal10(s.AdjustmentFactor()),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	slog.Info("splits export completed", "path", path, "records", len(splits))
	return path, nil
}
