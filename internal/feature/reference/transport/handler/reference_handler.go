// Package handler はreferenceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"polygon_dashboard/internal/api"
	"polygon_dashboard/internal/feature/reference/domain/entity"
	"polygon_dashboard/internal/feature/reference/usecase"
)

// ReferenceUsecase は参照データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ReferenceUsecase interface {
	GetCompany(ctx context.Context, ticker string) (*entity.Company, error)
	ListSplits(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error)
	ListDividends(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error)
}

// ReferenceHandler は企業情報・分割・配当のHTTPリクエストを処理します。
type ReferenceHandler struct {
	uc ReferenceUsecase
}

// NewReferenceHandler は指定されたusecaseでReferenceHandlerの新しいインスタンスを生成します。
func NewReferenceHandler(uc ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// GetCompanyHandler は銘柄シンボルを受け取り、企業詳細をKey/Value表で返します。
//
// エンドポイント例:
// GET /company/:ticker
func (h *ReferenceHandler) GetCompanyHandler(c *gin.Context) {
	ticker := c.Param("ticker")

	company, err := h.uc.GetCompany(c.Request.Context(), ticker)
	if err != nil {
		slog.Warn("failed to get company", "ticker", ticker, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	table := usecase.BuildCompanyTable(company)
	c.JSON(http.StatusOK, api.TableResponse{Columns: table.Columns, Rows: table.Rows})
}

// ListSplitsHandler は株式分割の一覧を整形済みテーブルで返します。銘柄は省略可能です。
// 調整係数 (split_from / split_to) は小数点以下10桁で整形されます。
//
// エンドポイント例:
// GET /splits?ticker=AAPL&limit=50&execution_date.gte=2020-01-01
func (h *ReferenceHandler) ListSplitsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit)))
	filter := entity.SplitsFilter{
		Ticker:           c.Query("ticker"),
		Limit:            limit,
		ExecutionDateGT:  c.Query("execution_date.gt"),
		ExecutionDateGTE: c.Query("execution_date.gte"),
		ExecutionDateLT:  c.Query("execution_date.lt"),
		ExecutionDateLTE: c.Query("execution_date.lte"),
	}

	splits, err := h.uc.ListSplits(c.Request.Context(), filter)
	if err != nil {
		slog.Warn("failed to list splits", "ticker", filter.Ticker, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	table := usecase.BuildSplitsTable(splits)
	c.JSON(http.StatusOK, api.TableResponse{Columns: table.Columns, Rows: table.Rows})
}

// ListDividendsHandler は銘柄シンボルを受け取り、配当履歴を整形済みテーブルで返します。
//
// エンドポイント例:
// GET /dividends/:ticker?limit=50
func (h *ReferenceHandler) ListDividendsHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit)))

	dividends, err := h.uc.ListDividends(c.Request.Context(), ticker, limit)
	if err != nil {
		slog.Warn("failed to list dividends", "ticker", ticker, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	table := usecase.BuildDividendsTable(dividends)
	c.JSON(http.StatusOK, api.TableResponse{Columns: table.Columns, Rows: table.Rows})
}
