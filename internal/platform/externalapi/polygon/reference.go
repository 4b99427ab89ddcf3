package polygon

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"polygon_dashboard/internal/feature/reference/domain/entity"
	"polygon_dashboard/internal/platform/externalapi/polygon/dto"
)

// GetTickerDetails はティッカー詳細エンドポイントから企業詳細を取得します。
func (c *Client) GetTickerDetails(ctx context.Context, ticker string) (*entity.Company, error) {
	path := fmt.Sprintf("/v3/reference/tickers/%s", url.PathEscape(ticker))

	var body dto.TickerDetailsResponse
	if err := c.getJSON(ctx, path, nil, &body); err != nil {
		return nil, err
	}

	r := body.Results
	return &entity.Company{
		Ticker:          r.Ticker,
		Name:            r.Name,
		Market:          r.Market,
		Locale:          r.Locale,
		PrimaryExchange: r.PrimaryExchange,
		Type:            r.Type,
		Active:          r.Active,
		CurrencyName:    r.CurrencyName,
		CIK:             r.CIK,
		CompositeFIGI:   r.CompositeFIGI,
		ShareClassFIGI:  r.ShareClassFIGI,
		MarketCap:       r.MarketCap,
		PhoneNumber:     r.PhoneNumber,
		Address: entity.Address{
			Address1:   r.Address.Address1,
			City:       r.Address.City,
			State:      r.Address.State,
			PostalCode: r.Address.PostalCode,
		},
		Description:       r.Description,
		SICCode:           r.SICCode,
		SICDescription:    r.SICDescription,
		HomepageURL:       r.HomepageURL,
		TotalEmployees:    r.TotalEmployees,
		ListDate:          r.ListDate,
		LogoURL:           r.Branding.LogoURL,
		IconURL:           r.Branding.IconURL,
		SharesOutstanding: r.ShareClassSharesOutstanding,
		RoundLot:          r.RoundLot,
	}, nil
}

// splitsQuery は分割エンドポイントの絞り込み条件をクエリパラメータに変換します。
func splitsQuery(f entity.SplitsFilter) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	if f.Ticker != "" {
		q.Set("ticker", f.Ticker)
	}
	// 実施日の範囲フィルターは指定されたものだけを付与する
	for param, v := range map[string]string{
		"execution_date.gt":  f.ExecutionDateGT,
		"execution_date.gte": f.ExecutionDateGTE,
		"execution_date.lt":  f.ExecutionDateLT,
		"execution_date.lte": f.ExecutionDateLTE,
	} {
		if v != "" {
			q.Set(param, v)
		}
	}
	return q
}

// toSplits はDTOをドメインエンティティに変換します。
func toSplits(results []dto.SplitResult) []entity.Split {
	splits := make([]entity.Split, 0, len(results))
	for _, r := range results {
		splits = append(splits, entity.Split{
			Ticker:        r.Ticker,
			ExecutionDate: r.ExecutionDate,
			SplitFrom:     r.SplitFrom,
			SplitTo:       r.SplitTo,
		})
	}
	return splits
}

// ListSplits は株式分割エンドポイントから絞り込み条件に一致するレコードを取得します。
func (c *Client) ListSplits(ctx context.Context, filter entity.SplitsFilter) ([]entity.Split, error) {
	var body dto.SplitsResponse
	if err := c.getJSON(ctx, "/v3/reference/splits", splitsQuery(filter), &body); err != nil {
		return nil, err
	}
	return toSplits(body.Results), nil
}

// ListSplitsPage は株式分割エンドポイントから1ページ分のレコードと次ページのカーソルを取得します。
// 返されたカーソルが空文字の場合、それが最終ページです。
func (c *Client) ListSplitsPage(ctx context.Context, limit int, cursor string) ([]entity.Split, string, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	var body dto.SplitsResponse
	if err := c.getJSON(ctx, "/v3/reference/splits", q, &body); err != nil {
		return nil, "", err
	}
	return toSplits(body.Results), cursorFromNextURL(body.NextURL), nil
}

// ListDividends は配当エンドポイントから指定された銘柄の配当レコードを取得します。
func (c *Client) ListDividends(ctx context.Context, ticker string, limit int) ([]entity.Dividend, error) {
	q := url.Values{}
	q.Set("ticker", ticker)
	q.Set("limit", strconv.Itoa(limit))

	var body dto.DividendsResponse
	if err := c.getJSON(ctx, "/v3/reference/dividends", q, &body); err != nil {
		return nil, err
	}

	dividends := make([]entity.Dividend, 0, len(body.Results))
	for _, r := range body.Results {
		dividends = append(dividends, entity.Dividend{
			Ticker:          r.Ticker,
			DeclarationDate: r.DeclarationDate,
			ExDividendDate:  r.ExDividendDate,
			RecordDate:      r.RecordDate,
			PayDate:         r.PayDate,
			Frequency:       r.Frequency,
			DividendType:    r.DividendType,
			CashAmount:      r.CashAmount,
		})
	}
	return dividends, nil
}
