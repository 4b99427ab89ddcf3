package polygon

import (
	"context"
	"net/url"
	"strconv"

	"polygon_dashboard/internal/feature/financials/domain/entity"
	"polygon_dashboard/internal/platform/externalapi/polygon/dto"
)

// ListFinancials は財務諸表エンドポイントから財務諸表レコードを取得します。
// ネストされたセクション構造はラベル→金額のフラットなマップに崩されます。
func (c *Client) ListFinancials(ctx context.Context, ticker string, limit int, timeframe string) ([]entity.Statement, error) {
	q := url.Values{}
	q.Set("ticker", ticker)
	q.Set("limit", strconv.Itoa(limit))
	if timeframe != "" {
		q.Set("timeframe", timeframe)
	}

	var body dto.FinancialsResponse
	if err := c.getJSON(ctx, "/vX/reference/financials", q, &body); err != nil {
		return nil, err
	}

	statements := make([]entity.Statement, 0, len(body.Results))
	for _, r := range body.Results {
		items := make(map[string]float64)
		// セクション（貸借対照表・損益計算書など）→ 明細行の二重ループでフラット化
		for _, section := range r.Financials {
			for _, item := range section {
				if item.Label == "" {
					continue
				}
				items[item.Label] = item.Value
			}
		}
		statements = append(statements, entity.Statement{
			CIK:          r.CIK,
			CompanyName:  r.CompanyName,
			FiscalYear:   r.FiscalYear,
			FiscalPeriod: r.FiscalPeriod,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			FilingDate:   r.FilingDate,
			Items:        items,
		})
	}
	return statements, nil
}
