// Package handler はfinancialsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"polygon_dashboard/internal/api"
	"polygon_dashboard/internal/feature/financials/domain/entity"
	"polygon_dashboard/internal/feature/financials/usecase"
)

// FinancialsUsecase は財務諸表データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FinancialsUsecase interface {
	GetFinancials(ctx context.Context, ticker string, limit int, timeframe string) ([]entity.Statement, error)
}

// FinancialsHandler は財務諸表データのHTTPリクエストを処理します。
type FinancialsHandler struct {
	uc FinancialsUsecase
}

// NewFinancialsHandler は指定されたusecaseでFinancialsHandlerの新しいインスタンスを生成します。
func NewFinancialsHandler(uc FinancialsUsecase) *FinancialsHandler {
	return &FinancialsHandler{uc: uc}
}

// GetFinancialsHandler は銘柄シンボルを受け取り、整形済みの財務諸表表をJSONで返します。
// フリーキャッシュフローは営業CFと投資CFから算出した派生カラムです。
//
// エンドポイント例:
// GET /financials/:ticker?limit=30&timeframe=annual
func (h *FinancialsHandler) GetFinancialsHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	limitStr := c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit))
	timeframe := c.Query("timeframe")
	// 文字列を整数に変換
	limit, _ := strconv.Atoi(limitStr)

	statements, err := h.uc.GetFinancials(c.Request.Context(), ticker, limit, timeframe)
	if err != nil {
		slog.Warn("failed to get financials", "ticker", ticker, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	table := usecase.BuildTable(statements)
	c.JSON(http.StatusOK, api.TableResponse{Columns: table.Columns, Rows: table.Rows})
}
