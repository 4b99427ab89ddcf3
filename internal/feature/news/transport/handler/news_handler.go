// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"polygon_dashboard/internal/api"
	"polygon_dashboard/internal/feature/news/domain/entity"
	"polygon_dashboard/internal/feature/news/usecase"
)

// NewsUsecase はマーケットニュース取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NewsUsecase interface {
	GetNews(ctx context.Context, ticker string, limit int) ([]entity.Article, error)
}

// NewsHandler はマーケットニュースのHTTPリクエストを処理します。
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler は指定されたusecaseでNewsHandlerの新しいインスタンスを生成します。
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// GetNewsHandler はマーケットニュース記事の一覧をJSONで返します。銘柄は省略可能です。
//
// エンドポイント例:
// GET /news?ticker=AAPL&limit=5
func (h *NewsHandler) GetNewsHandler(c *gin.Context) {
	ticker := c.Query("ticker")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit)))

	articles, err := h.uc.GetNews(c.Request.Context(), ticker, limit)
	if err != nil {
		slog.Warn("failed to get news", "ticker", ticker, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := make([]api.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, api.ArticleResponse{
			Title:        a.Title,
			Description:  a.Description,
			Author:       a.Author,
			PublishedUTC: a.PublishedUTC,
			Tickers:      a.Tickers,
			ArticleURL:   a.ArticleURL,
			ImageURL:     a.ImageURL,
		})
	}

	c.JSON(http.StatusOK, out)
}
