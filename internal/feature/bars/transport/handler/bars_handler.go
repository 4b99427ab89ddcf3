// Package handler はbarsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"polygon_dashboard/internal/api"
	"polygon_dashboard/internal/feature/bars/domain/entity"
	"polygon_dashboard/internal/feature/bars/usecase"
)

// BarsUsecase は株価バーデータ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BarsUsecase interface {
	GetBars(ctx context.Context, ticker, timespan, from, to string, adjusted bool) ([]entity.Bar, error)
}

// BarsHandler は株価バーデータのHTTPリクエストを処理します。
type BarsHandler struct {
	uc BarsUsecase
}

// NewBarsHandler は指定されたusecaseでBarsHandlerの新しいインスタンスを生成します。
func NewBarsHandler(uc BarsUsecase) *BarsHandler {
	return &BarsHandler{uc: uc}
}

// GetBarsHandler は銘柄シンボルと期間を受け取り、整形済みの株価バー表をJSONで返します。
//
// エンドポイント例:
// GET /bars/:ticker?timespan=day&from=2024-01-01&to=2024-12-31&adjusted=true
func (h *BarsHandler) GetBarsHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	// 未指定の場合はデフォルト値を使用
	timespan := c.DefaultQuery("timespan", usecase.DefaultTimespan)
	from := c.Query("from")
	to := c.Query("to")
	adjusted := c.DefaultQuery("adjusted", "true") != "false"

	bars, err := h.uc.GetBars(c.Request.Context(), ticker, timespan, from, to, adjusted)
	if err != nil {
		slog.Warn("failed to get bars", "ticker", ticker, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	table := usecase.BuildTable(bars)
	c.JSON(http.StatusOK, api.TableResponse{Columns: table.Columns, Rows: table.Rows})
}

// GetBarsChartHandler は終値の折れ線チャートをPNG画像で返します。
//
// エンドポイント例:
// GET /bars/:ticker/chart?timespan=day&from=2024-01-01&to=2024-12-31
func (h *BarsHandler) GetBarsChartHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	timespan := c.DefaultQuery("timespan", usecase.DefaultTimespan)
	from := c.Query("from")
	to := c.Query("to")
	adjusted := c.DefaultQuery("adjusted", "true") != "false"

	bars, err := h.uc.GetBars(c.Request.Context(), ticker, timespan, from, to, adjusted)
	if err != nil {
		slog.Warn("failed to get bars for chart", "ticker", ticker, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	png, err := usecase.RenderCloseChart(ticker, bars)
	if err != nil {
		slog.Warn("failed to render chart", "ticker", ticker, "error", err)
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
