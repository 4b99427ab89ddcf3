package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	barsusecase "polygon_dashboard/internal/feature/bars/usecase"
	exportusecase "polygon_dashboard/internal/feature/export/usecase"
	finusecase "polygon_dashboard/internal/feature/financials/usecase"
	newsusecase "polygon_dashboard/internal/feature/news/usecase"
	refusecase "polygon_dashboard/internal/feature/reference/usecase"
)

// Client はPolygon.io REST APIのHTTPクライアントです。
// 各フィーチャーのリポジトリインターフェースを実装します。
type Client struct {
	cfg    Config
	client *http.Client
}

// Clientが各リポジトリインターフェースを実装していることをコンパイル時に検証します。
var (
	_ barsusecase.MarketRepository      = (*Client)(nil)
	_ finusecase.FinancialsRepository   = (*Client)(nil)
	_ refusecase.ReferenceRepository    = (*Client)(nil)
	_ newsusecase.NewsRepository        = (*Client)(nil)
	_ exportusecase.SplitsPager         = (*Client)(nil)
)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// errorBody はPolygonのエラーレスポンスボディです。
type errorBody struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// getJSON は認証キーを付与したGETリクエストを発行し、JSONレスポンスをoutにデコードします。
// 200以外のステータスコードはHTTPステータスを含むエラーとして返します。
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("apiKey", c.cfg.APIKey)
	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	// APIキーを含まない形で毎回の呼び出しをログに残す
	slog.Info("polygon api request", "path", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		msg := readErrorMessage(res.Body)
		slog.Error("polygon api request failed", "path", path, "status", res.StatusCode, "message", msg)
		if msg != "" {
			return fmt.Errorf("polygon http %d: %s", res.StatusCode, msg)
		}
		return fmt.Errorf("polygon http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// readErrorMessage はエラーレスポンスボディからメッセージを抽出します。
// JSONでない場合はボディの先頭部分をそのまま返します。
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

// cursorFromNextURL はレスポンスのnext_urlから次ページのcursorパラメータを抽出します。
// next_urlが空、または解析できない場合は空文字を返します。
func cursorFromNextURL(next string) string {
	if next == "" {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil {
		slog.Warn("failed to parse next_url", "next_url", next, "error", err)
		return ""
	}
	return u.Query().Get("cursor")
}
