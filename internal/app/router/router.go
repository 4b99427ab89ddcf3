// Package router はアプリケーションのHTTPルーティングを構成します。
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "polygon_dashboard/internal/feature/auth/transport/handler"
	barshandler "polygon_dashboard/internal/feature/bars/transport/handler"
	finhandler "polygon_dashboard/internal/feature/financials/transport/handler"
	newshandler "polygon_dashboard/internal/feature/news/transport/handler"
	refhandler "polygon_dashboard/internal/feature/reference/transport/handler"
	"polygon_dashboard/internal/platform/http/handler"
	jwtmw "polygon_dashboard/internal/platform/jwt"
)

// NewRouter は全エンドポイントを登録したGinエンジンを生成します。
// 市場データのルートはJWT認証必須です。
func NewRouter(authHandler *authhandler.AuthHandler, bars *barshandler.BarsHandler,
	financials *finhandler.FinancialsHandler, reference *refhandler.ReferenceHandler,
	news *newshandler.NewsHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		// 株価バー（表形式とPNGチャート）
		auth.GET("/bars/:ticker", bars.GetBarsHandler)
		auth.GET("/bars/:ticker/chart", bars.GetBarsChartHandler)
		// 財務諸表
		auth.GET("/financials/:ticker", financials.GetFinancialsHandler)
		// 企業情報・株式分割・配当
		auth.GET("/company/:ticker", reference.GetCompanyHandler)
		auth.GET("/splits", reference.ListSplitsHandler)
		auth.GET("/dividends/:ticker", reference.ListDividendsHandler)
		// マーケットニュース
		auth.GET("/news", news.GetNewsHandler)
	}

	return r
}
