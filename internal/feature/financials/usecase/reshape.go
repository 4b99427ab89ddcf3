package usecase

import (
	"sort"

	"polygon_dashboard/internal/feature/financials/domain/entity"
	"polygon_dashboard/internal/shared/format"
	"polygon_dashboard/internal/shared/table"
)

// 自由キャッシュフロー算出に使う明細行ラベル。
const (
	labelOperatingCashFlow = "Net Cash Flow From Operating Activities"
	labelInvestingCashFlow = "Net Cash Flow From Investing Activities"

	// ColumnFreeCashFlow は派生カラム名です。
	ColumnFreeCashFlow = "Free Cash Flow"
)

// FinancialColumns は財務諸表テーブルのスキーマです。この集合と順序は固定です。
// 先頭7列はメタデータ、続いて主要な明細行、最後に派生のFree Cash Flowが並びます。
var FinancialColumns = []string{
	"CIK", "Company Name", "Fiscal Year", "Fiscal Period", "Start Date", "End Date", "Filing Date",
	"Revenues", "Gross Profit", "Operating Income/Loss",
	"Income/Loss From Continuing Operations Before Tax", "Net Income/Loss",
	"Basic Earnings Per Share", "Diluted Earnings Per Share",
	"Assets", "Current Assets", "Noncurrent Assets",
	"Liabilities", "Current Liabilities", "Noncurrent Liabilities", "Equity",
	labelOperatingCashFlow, labelInvestingCashFlow,
	"Net Cash Flow From Financing Activities", ColumnFreeCashFlow,
}

// FreeCashFlow は営業キャッシュフローと投資キャッシュフローの和を返します。
// どちらかの明細行が存在しない場合はゼロとして扱います。
func FreeCashFlow(s entity.Statement) float64 {
	op := s.Items[labelOperatingCashFlow]
	inv := s.Items[labelInvestingCashFlow]
	return op + inv
}

// BuildTable は財務諸表レコードを表示用テーブルに整形します。
// 行は会計期間の終了日の降順に並びます。金額は3桁区切り・小数点以下2桁で
// 整形され、存在しない明細行のセルは空文字になります。
// 入力が空の場合も同じスキーマの空テーブルを返します。
func BuildTable(statements []entity.Statement) table.Table {
	t := table.New(FinancialColumns)

	sorted := make([]entity.Statement, len(statements))
	copy(sorted, statements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EndDate > sorted[j].EndDate
	})

	for _, s := range sorted {
		row := make([]string, 0, len(FinancialColumns))
		row = append(row,
			s.CIK, s.CompanyName, s.FiscalYear, s.FiscalPeriod,
			s.StartDate, s.EndDate, s.FilingDate,
		)
		for _, col := range FinancialColumns[7:] {
			if col == ColumnFreeCashFlow {
				row = append(row, format.Comma(FreeCashFlow(s)))
				continue
			}
			v, ok := s.Items[col]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, format.Comma(v))
		}
		t.Append(row)
	}
	return t
}
