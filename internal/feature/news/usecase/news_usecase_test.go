package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"polygon_dashboard/internal/feature/news/domain/entity"
	"polygon_dashboard/internal/feature/news/usecase"
)

// mockNewsRepository はNewsRepositoryインターフェースのモック実装です。
type mockNewsRepository struct {
	ListNewsFunc func(ctx context.Context, ticker string, limit int) ([]entity.Article, error)
}

func (m *mockNewsRepository) ListNews(ctx context.Context, ticker string, limit int) ([]entity.Article, error) {
	if m.ListNewsFunc != nil {
		return m.ListNewsFunc(ctx, ticker, limit)
	}
	return nil, errors.New("ListNewsFunc is not implemented")
}

func TestNewsUsecase_GetNews(t *testing.T) {
	ctx := context.Background()
	expected := []entity.Article{{Title: "Apple announces new chip"}}

	testCases := []struct {
		name          string
		inputTicker   string
		inputLimit    int
		expectedLimit int
	}{
		{"ticker and limit are forwarded", "AAPL", 10, 10},
		{"limit zero falls back to default", "", 0, usecase.DefaultLimit},
		{"limit above maximum is clamped", "AAPL", 500, usecase.MaxLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockNewsRepository{
				ListNewsFunc: func(ctx context.Context, ticker string, limit int) ([]entity.Article, error) {
					assert.Equal(t, tc.inputTicker, ticker)
					assert.Equal(t, tc.expectedLimit, limit)
					return expected, nil
				},
			}
			uc := usecase.NewNewsUsecase(repo)

			articles, err := uc.GetNews(ctx, tc.inputTicker, tc.inputLimit)

			assert.NoError(t, err)
			assert.Equal(t, expected, articles)
		})
	}

	t.Run("repository error is passed through", func(t *testing.T) {
		repoErr := errors.New("upstream error")
		repo := &mockNewsRepository{
			ListNewsFunc: func(ctx context.Context, ticker string, limit int) ([]entity.Article, error) {
				return nil, repoErr
			},
		}
		uc := usecase.NewNewsUsecase(repo)

		_, err := uc.GetNews(ctx, "AAPL", 5)

		assert.ErrorIs(t, err, repoErr)
	})
}
