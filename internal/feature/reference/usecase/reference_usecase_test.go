package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"polygon_dashboard/internal/feature/reference/domain/entity"
	"polygon_dashboard/internal/feature/reference/usecase"
)

// mockReferenceRepository はReferenceRepositoryインターフェースのモック実装です。
type mockReferenceRepository struct {
	GetTickerDetailsFunc func(ctx context.Context, ticker string) (*entity.Company, error)
	ListSplitsFunc       func(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error)
	ListDividendsFunc    func(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error)
}

func (m *mockReferenceRepository) GetTickerDetails(ctx context.Context, ticker string) (*entity.Company, error) {
	if m.GetTickerDetailsFunc != nil {
		return m.GetTickerDetailsFunc(ctx, ticker)
	}
	return nil, errors.New("GetTickerDetailsFunc is not implemented")
}

func (m *mockReferenceRepository) ListSplits(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error) {
	if m.ListSplitsFunc != nil {
		return m.ListSplitsFunc(ctx, filter)
	}
	return nil, errors.New("ListSplitsFunc is not implemented")
}

func (m *mockReferenceRepository) ListDividends(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error) {
	if m.ListDividendsFunc != nil {
		return m.ListDividendsFunc(ctx, ticker, limit)
	}
	return nil, errors.New("ListDividendsFunc is not implemented")
}

func TestReferenceUsecase_GetCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		expected := &entity.Company{Ticker: "AAPL", Name: "Apple Inc."}
		repo := &mockReferenceRepository{
			GetTickerDetailsFunc: func(ctx context.Context, ticker string) (*entity.Company, error) {
				assert.Equal(t, "AAPL", ticker)
				return expected, nil
			},
		}
		uc := usecase.NewReferenceUsecase(repo)

		company, err := uc.GetCompany(ctx, "AAPL")

		assert.NoError(t, err)
		assert.Equal(t, expected, company)
	})

	t.Run("failure: empty ticker", func(t *testing.T) {
		uc := usecase.NewReferenceUsecase(&mockReferenceRepository{})

		_, err := uc.GetCompany(ctx, "")

		assert.ErrorIs(t, err, usecase.ErrTickerRequired)
	})
}

func TestReferenceUsecase_ListSplits(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		inputLimit    int
		expectedLimit int
	}{
		{"limit zero falls back to default", 0, usecase.DefaultListLimit},
		{"limit within range is kept", 100, 100},
		{"limit above maximum is clamped", 100000, usecase.MaxListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockReferenceRepository{
				ListSplitsFunc: func(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error) {
					assert.Equal(t, tc.expectedLimit, filter.Limit)
					return nil, nil
				},
			}
			uc := usecase.NewReferenceUsecase(repo)

			// 銘柄は省略可能（全銘柄が対象）
			_, err := uc.ListSplits(ctx, entity.SplitsFilter{Limit: tc.inputLimit})

			assert.NoError(t, err)
		})
	}
}

func TestReferenceUsecase_ListDividends(t *testing.T) {
	ctx := context.Background()

	t.Run("success: limit is clamped", func(t *testing.T) {
		repo := &mockReferenceRepository{
			ListDividendsFunc: func(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error) {
				assert.Equal(t, "AAPL", ticker)
				assert.Equal(t, usecase.MaxListLimit, limit)
				return nil, nil
			},
		}
		uc := usecase.NewReferenceUsecase(repo)

		_, err := uc.ListDividends(ctx, "AAPL", 99999)

		assert.NoError(t, err)
	})

	t.Run("failure: empty ticker", func(t *testing.T) {
		uc := usecase.NewReferenceUsecase(&mockReferenceRepository{})

		_, err := uc.ListDividends(ctx, "", 50)

		assert.ErrorIs(t, err, usecase.ErrTickerRequired)
	})
}
