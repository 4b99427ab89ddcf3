// Package entity はreferenceフィーチャー（企業情報・分割・配当）のドメインモデルを定義します。
package entity

// Address は企業の所在地です。
type Address struct {
	Address1   string
	City       string
	State      string
	PostalCode string
}

// Company はPolygonのティッカー参照APIが返す企業詳細です。
type Company struct {
	Ticker          string
	Name            string
	Market          string // "stocks", "crypto" など
	Locale          string
	PrimaryExchange string
	Type            string // 証券種別コード（例: "CS"）
	Active          bool
	CurrencyName    string
	CIK             string
	CompositeFIGI   string
	ShareClassFIGI  string
	MarketCap       float64
	PhoneNumber     string
	Address         Address
	Description     string
	SICCode         string
	SICDescription  string
	HomepageURL     string
	TotalEmployees  int64
	ListDate        string // 上場日（YYYY-MM-DD）
	LogoURL         string // brandingから抽出。取得にはAPIキーの付与が必要
	IconURL         string
	SharesOutstanding float64
	RoundLot        int64
}
