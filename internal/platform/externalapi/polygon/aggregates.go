package polygon

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"polygon_dashboard/internal/feature/bars/domain/entity"
	"polygon_dashboard/internal/platform/externalapi/polygon/dto"
)

// GetAggregates は集計バーエンドポイントから株価バーを取得します。
// 期間はYYYY-MM-DD形式、multiplierは常に1です。
// 結果が空の場合はエラーではなく空のスライスを返します。
func (c *Client) GetAggregates(ctx context.Context, ticker, timespan, from, to string, adjusted bool) ([]entity.Bar, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/1/%s/%s/%s",
		url.PathEscape(ticker), url.PathEscape(timespan), from, to)

	q := url.Values{}
	q.Set("adjusted", strconv.FormatBool(adjusted))

	var body dto.AggsResponse
	if err := c.getJSON(ctx, path, q, &body); err != nil {
		return nil, err
	}

	bars := make([]entity.Bar, 0, len(body.Results))
	for _, r := range body.Results {
		bars = append(bars, entity.Bar{
			Ticker:       ticker,
			Time:         time.UnixMilli(r.Timestamp).UTC(),
			Open:         r.Open,
			High:         r.High,
			Low:          r.Low,
			Close:        r.Close,
			Volume:       r.Volume,
			VWAP:         r.VWAP,
			Transactions: r.Transactions,
		})
	}
	return bars, nil
}
