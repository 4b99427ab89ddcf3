// Package api はHTTPインターフェースのリクエスト/レスポンスDTOを定義します。
package api

// ErrorResponse はエラー時の共通レスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は成功メッセージのみを返すレスポンスボディです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はログイン成功時にJWTトークンを返すレスポンスボディです。
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest は/signupのリクエストボディです。
// Ginのbindingタグで入力チェック（必須・メール形式・パスワード長）を行います。
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest は/loginのリクエストボディです。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TableResponse は整形済み市場データを表形式で返すレスポンスボディです。
// カラムの集合と順序はエンドポイントごとに固定です。
type TableResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ArticleResponse はニュース記事1件のレスポンスボディです。
type ArticleResponse struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Author       string   `json:"author"`
	PublishedUTC string   `json:"published_utc"`
	Tickers      []string `json:"tickers"`
	ArticleURL   string   `json:"article_url"`
	ImageURL     string   `json:"image_url,omitempty"`
}
