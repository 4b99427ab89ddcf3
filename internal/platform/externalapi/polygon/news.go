package polygon

import (
	"context"
	"net/url"
	"strconv"

	"polygon_dashboard/internal/feature/news/domain/entity"
	"polygon_dashboard/internal/platform/externalapi/polygon/dto"
)

// ListNews はニュースエンドポイントから記事を取得します。
// tickerが空の場合は全銘柄の最新ニュースが対象です。
func (c *Client) ListNews(ctx context.Context, ticker string, limit int) ([]entity.Article, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if ticker != "" {
		q.Set("ticker", ticker)
	}

	var body dto.NewsResponse
	if err := c.getJSON(ctx, "/v2/reference/news", q, &body); err != nil {
		return nil, err
	}

	articles := make([]entity.Article, 0, len(body.Results))
	for _, r := range body.Results {
		articles = append(articles, entity.Article{
			Title:        r.Title,
			Description:  r.Description,
			Author:       r.Author,
			PublishedUTC: r.PublishedUTC,
			Tickers:      r.Tickers,
			ArticleURL:   r.ArticleURL,
			ImageURL:     r.ImageURL,
		})
	}
	return articles, nil
}
