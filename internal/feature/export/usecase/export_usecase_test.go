package usecase_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polygon_dashboard/internal/feature/export/usecase"
	refentity "polygon_dashboard/internal/feature/reference/domain/entity"
)

// mockSplitsPager はSplitsPagerインターフェースのモック実装です。
// pagesの各要素が1ページ分のレコードで、最終ページまでカーソルを返します。
type mockSplitsPager struct {
	pages [][]refentity.Split
	err   error
	Calls int
}

func (m *mockSplitsPager) ListSplitsPage(ctx context.Context, limit int, cursor string) ([]refentity.Split, string, error) {
	m.Calls++
	if m.err != nil {
		return nil, "", m.err
	}
	page := m.Calls - 1
	if page >= len(m.pages) {
		return nil, "", nil
	}
	next := ""
	if page < len(m.pages)-1 {
		next = "cursor-next"
	}
	return m.pages[page], next, nil
}

// noopLimiter はテスト用に待機しないレートリミッターです。
type noopLimiter struct {
	Waits int
}

func (l *noopLimiter) WaitIfNeeded() { l.Waits++ }

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportUsecase_ExportAll(t *testing.T) {
	ctx := context.Background()

	t.Run("all pages are collected into one CSV", func(t *testing.T) {
		pager := &mockSplitsPager{
			pages: [][]refentity.Split{
				{
					{Ticker: "AAPL", ExecutionDate: "2020-08-31", SplitFrom: 4, SplitTo: 1},
					{Ticker: "TSLA", ExecutionDate: "2022-08-25", SplitFrom: 3, SplitTo: 1},
				},
				{
					{Ticker: "XYZ", ExecutionDate: "2021-05-17", SplitFrom: 1, SplitTo: 3},
				},
			},
		}
		limiter := &noopLimiter{}
		uc := usecase.NewExportUsecase(pager, limiter)

		path, err := uc.ExportAll(ctx, t.TempDir(), 1000, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, pager.Calls)
		// 各リクエストの前にレートリミッターを通過する
		assert.Equal(t, 2, limiter.Waits)

		records := readCSV(t, path)
		require.Len(t, records, 4) // ヘッダー + 3レコード
		assert.Equal(t, []string{"ticker", "execution_date", "split_from", "split_to", "adj_factor"}, records[0])
		assert.Equal(t, []string{"AAPL", "2020-08-31", "4", "1", "4.0000000000"}, records[1])
		assert.Equal(t, []string{"XYZ", "2021-05-17", "1", "3", "0.3333333333"}, records[3])
	})

	t.Run("maxPages stops pagination early", func(t *testing.T) {
		pager := &mockSplitsPager{
			pages: [][]refentity.Split{
				{{Ticker: "AAPL", ExecutionDate: "2020-08-31", SplitFrom: 4, SplitTo: 1}},
				{{Ticker: "TSLA", ExecutionDate: "2022-08-25", SplitFrom: 3, SplitTo: 1}},
			},
		}
		uc := usecase.NewExportUsecase(pager, &noopLimiter{})

		path, err := uc.ExportAll(ctx, t.TempDir(), 1000, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, pager.Calls)
		records := readCSV(t, path)
		assert.Len(t, records, 2) // ヘッダー + 1レコード
	})

	t.Run("empty result still writes the header", func(t *testing.T) {
		pager := &mockSplitsPager{pages: [][]refentity.Split{{}}}
		uc := usecase.NewExportUsecase(pager, &noopLimiter{})

		path, err := uc.ExportAll(ctx, t.TempDir(), 1000, 0)

		require.NoError(t, err)
		records := readCSV(t, path)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"ticker", "execution_date", "split_from", "split_to", "adj_factor"}, records[0])
	})

	t.Run("pager error aborts the export", func(t *testing.T) {
		pager := &mockSplitsPager{err: errors.New("polygon http 429: too many requests")}
		uc := usecase.NewExportUsecase(pager, &noopLimiter{})

		_, err := uc.ExportAll(ctx, t.TempDir(), 1000, 0)

		assert.ErrorContains(t, err, "fetch splits page 1")
	})

	t.Run("cancelled context aborts before fetching", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		pager := &mockSplitsPager{pages: [][]refentity.Split{{}}}
		uc := usecase.NewExportUsecase(pager, &noopLimiter{})

		_, err := uc.ExportAll(cancelled, t.TempDir(), 1000, 0)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, pager.Calls)
	})
}
