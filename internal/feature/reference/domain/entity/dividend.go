package entity

// Dividend は配当イベント1件のレコードです。
type Dividend struct {
	Ticker          string
	DeclarationDate string // 宣言日（YYYY-MM-DD）
	ExDividendDate  string // 権利落ち日（YYYY-MM-DD）
	RecordDate      string // 基準日（YYYY-MM-DD）
	PayDate         string // 支払日（YYYY-MM-DD)
	Frequency       int    // 年間の支払回数（四半期配当なら4）
	DividendType    string // "CD"（通常）, "SC"（特別）など
	CashAmount      float64
}
