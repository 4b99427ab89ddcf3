package usecase

import (
	"sort"
	"strconv"
	"strings"

	"polygon_dashboard/internal/feature/reference/domain/entity"
	"polygon_dashboard/internal/shared/format"
	"polygon_dashboard/internal/shared/table"
)

// SplitColumns は株式分割テーブルのスキーマです。この集合と順序は固定です。
var SplitColumns = []string{"Ticker", "Execution Date", "Split From", "Split To", "Adjustment Factor"}

// DividendColumns は配当テーブルのスキーマです。この集合と順序は固定です。
var DividendColumns = []string{
	"Ticker", "Declaration Date", "Ex Dividend Date", "Record Date", "Pay Date",
	"Frequency", "Type", "Amount",
}

// CompanyColumns は企業詳細テーブル（縦持ちのKey/Value形式）のスキーマです。
var CompanyColumns = []string{"Key", "Value"}

// BuildSplitsTable は分割レコードを表示用テーブルに整形します。
// 行は実施日の降順に並び、調整係数は小数点以下10桁で整形されます。
// 入力が空の場合も同じスキーマの空テーブルを返します。
func BuildSplitsTable(splits []entity.Split) table.Table {
	t := table.New(SplitColumns)

	sorted := make([]entity.Split, len(splits))
	copy(sorted, splits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ExecutionDate > sorted[j].ExecutionDate
	})

	for _, s := range sorted {
		t.Append([]string{
			s.Ticker,
			s.ExecutionDate,
			format.Number(s.SplitFrom),
			format.Number(s.SplitTo),
			format.Decimal10(s.AdjustmentFactor()),
		})
	}
	return t
}

// BuildDividendsTable は配当レコードを表示用テーブルに整形します。
// 行は宣言日の降順に並びます。入力が空の場合も同じスキーマの空テーブルを返します。
func BuildDividendsTable(dividends []entity.Dividend) table.Table {
	t := table.New(DividendColumns)

	sorted := make([]entity.Dividend, len(dividends))
	copy(sorted, dividends)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DeclarationDate > sorted[j].DeclarationDate
	})

	for _, d := range sorted {
		t.Append([]string{
			d.Ticker,
			d.DeclarationDate,
			d.ExDividendDate,
			d.RecordDate,
			d.PayDate,
			strconv.Itoa(d.Frequency),
			d.DividendType,
			format.Number(d.CashAmount),
		})
	}
	return t
}

// BuildCompanyTable は企業詳細をKey/Value形式の縦持ちテーブルに整形します。
// 値が空の項目は行ごと省略されますが、スキーマ（Key, Value）は常に同一です。
func BuildCompanyTable(c *entity.Company) table.Table {
	t := table.New(CompanyColumns)
	if c == nil {
		return t
	}

	appendIf := func(key, value string) {
		if value != "" {
			t.Append([]string{key, value})
		}
	}

	appendIf("ticker", c.Ticker)
	appendIf("name", c.Name)
	appendIf("market", c.Market)
	appendIf("locale", c.Locale)
	appendIf("primary_exchange", c.PrimaryExchange)
	appendIf("type", c.Type)
	t.Append([]string{"active", strconv.FormatBool(c.Active)})
	appendIf("currency_name", c.CurrencyName)
	appendIf("cik", c.CIK)
	appendIf("composite_figi", c.CompositeFIGI)
	appendIf("share_class_figi", c.ShareClassFIGI)
	if c.MarketCap > 0 {
		t.Append([]string{"market_cap", format.Comma(c.MarketCap)})
	}
	appendIf("phone_number", c.PhoneNumber)
	appendIf("address", flattenAddress(c.Address))
	appendIf("description", c.Description)
	appendIf("sic_code", c.SICCode)
	appendIf("sic_description", c.SICDescription)
	appendIf("homepage_url", c.HomepageURL)
	if c.TotalEmployees > 0 {
		t.Append([]string{"total_employees", strconv.FormatInt(c.TotalEmployees, 10)})
	}
	appendIf("list_date", c.ListDate)
	if c.SharesOutstanding > 0 {
		t.Append([]string{"share_class_shares_outstanding", format.Comma(c.SharesOutstanding)})
	}
	if c.RoundLot > 0 {
		t.Append([]string{"round_lot", strconv.FormatInt(c.RoundLot, 10)})
	}
	return t
}

// flattenAddress は所在地を「番地, 市, 州, 郵便番号」のカンマ区切り文字列に変換します。
func flattenAddress(a entity.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Address1, a.City, a.State, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
