// Package dto はPolygon APIレスポンスのデータ転送オブジェクトを定義します。
package dto

// AggsResponse は集計バーエンドポイント（/v2/aggs）のJSONレスポンスです。
type AggsResponse struct {
	Ticker       string      `json:"ticker"`
	QueryCount   int         `json:"queryCount"`
	ResultsCount int         `json:"resultsCount"`
	Adjusted     bool        `json:"adjusted"`
	Status       string      `json:"status"`
	RequestID    string      `json:"request_id"`
	Results      []AggResult `json:"results"`
}

// AggResult は集計バー1件です。フィールド名はPolygonの短縮キーに対応します。
type AggResult struct {
	Volume       float64 `json:"v"`  // 出来高
	VWAP         float64 `json:"vw"` // 出来高加重平均価格
	Open         float64 `json:"o"`
	Close        float64 `json:"c"`
	High         float64 `json:"h"`
	Low          float64 `json:"l"`
	Timestamp    int64   `json:"t"` // Unixミリ秒
	Transactions int64   `json:"n"` // 約定回数
}
