package dto

// TickerDetailsResponse はティッカー詳細エンドポイント（/v3/reference/tickers/{ticker}）のJSONレスポンスです。
type TickerDetailsResponse struct {
	Status    string              `json:"status"`
	RequestID string              `json:"request_id"`
	Results   TickerDetailsResult `json:"results"`
}

// TickerDetailsResult は企業詳細のレコードです。
type TickerDetailsResult struct {
	Ticker          string  `json:"ticker"`
	Name            string  `json:"name"`
	Market          string  `json:"market"`
	Locale          string  `json:"locale"`
	PrimaryExchange string  `json:"primary_exchange"`
	Type            string  `json:"type"`
	Active          bool    `json:"active"`
	CurrencyName    string  `json:"currency_name"`
	CIK             string  `json:"cik"`
	CompositeFIGI   string  `json:"composite_figi"`
	ShareClassFIGI  string  `json:"share_class_figi"`
	MarketCap       float64 `json:"market_cap"`
	PhoneNumber     string  `json:"phone_number"`
	Address         struct {
		Address1   string `json:"address1"`
		City       string `json:"city"`
		State      string `json:"state"`
		PostalCode string `json:"postal_code"`
	} `json:"address"`
	Description    string `json:"description"`
	SICCode        string `json:"sic_code"`
	SICDescription string `json:"sic_description"`
	HomepageURL    string `json:"homepage_url"`
	TotalEmployees int64  `json:"total_employees"`
	ListDate       string `json:"list_date"`
	Branding       struct {
		LogoURL string `json:"logo_url"`
		IconURL string `json:"icon_url"`
	} `json:"branding"`
	ShareClassSharesOutstanding float64 `json:"share_class_shares_outstanding"`
	RoundLot                    int64   `json:"round_lot"`
}

// SplitsResponse は株式分割エンドポイント（/v3/reference/splits）のJSONレスポンスです。
// next_urlが存在する場合、続きのページがあります。
type SplitsResponse struct {
	Status    string        `json:"status"`
	RequestID string        `json:"request_id"`
	NextURL   string        `json:"next_url,omitempty"`
	Results   []SplitResult `json:"results"`
}

// SplitResult は株式分割1件です。
type SplitResult struct {
	Ticker        string  `json:"ticker"`
	ExecutionDate string  `json:"execution_date"`
	SplitFrom     float64 `json:"split_from"`
	SplitTo       float64 `json:"split_to"`
}

// DividendsResponse は配当エンドポイント（/v3/reference/dividends）のJSONレスポンスです。
type DividendsResponse struct {
	Status    string           `json:"status"`
	RequestID string           `json:"request_id"`
	NextURL   string           `json:"next_url,omitempty"`
	Results   []DividendResult `json:"results"`
}

// DividendResult は配当1件です。
type DividendResult struct {
	Ticker          string  `json:"ticker"`
	DeclarationDate string  `json:"declaration_date"`
	ExDividendDate  string  `json:"ex_dividend_date"`
	RecordDate      string  `json:"record_date"`
	PayDate         string  `json:"pay_date"`
	Frequency       int     `json:"frequency"`
	DividendType    string  `json:"dividend_type"`
	CashAmount      float64 `json:"cash_amount"`
}
