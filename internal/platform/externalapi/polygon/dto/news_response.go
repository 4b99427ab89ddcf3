package dto

// NewsResponse はニュースエンドポイント（/v2/reference/news）のJSONレスポンスです。
type NewsResponse struct {
	Status    string       `json:"status"`
	RequestID string       `json:"request_id"`
	NextURL   string       `json:"next_url,omitempty"`
	Results   []NewsResult `json:"results"`
}

// NewsResult はニュース記事1件です。
type NewsResult struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	PublishedUTC string   `json:"published_utc"`
	ArticleURL   string   `json:"article_url"`
	Tickers      []string `json:"tickers"`
	ImageURL     string   `json:"image_url"`
	Description  string   `json:"description"`
}
