package dto

// FinancialsResponse は財務諸表エンドポイント（/vX/reference/financials）のJSONレスポンスです。
type FinancialsResponse struct {
	Status    string            `json:"status"`
	RequestID string            `json:"request_id"`
	NextURL   string            `json:"next_url,omitempty"`
	Results   []FinancialResult `json:"results"`
}

// FinancialResult は1会計期間分の財務諸表レコードです。
// Financialsはセクション名（balance_sheet等）→ 明細行キー → 明細行の二重マップです。
type FinancialResult struct {
	CIK          string                             `json:"cik"`
	CompanyName  string                             `json:"company_name"`
	FiscalYear   string                             `json:"fiscal_year"`
	FiscalPeriod string                             `json:"fiscal_period"`
	StartDate    string                             `json:"start_date"`
	EndDate      string                             `json:"end_date"`
	FilingDate   string                             `json:"filing_date"`
	Financials   map[string]map[string]FinancialItem `json:"financials"`
}

// FinancialItem は財務諸表の明細行1件です。
type FinancialItem struct {
	Label string  `json:"label"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
	Order int     `json:"order"`
}
