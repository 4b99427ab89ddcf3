package entity

// Split は株式分割イベント1件のレコードです。
type Split struct {
	Ticker        string
	ExecutionDate string // 分割実施日（YYYY-MM-DD）
	SplitFrom     float64
	SplitTo       float64
}

// AdjustmentFactor は過去の株価に適用する分割調整係数（split_from / split_to）を返します。
func (s Split) AdjustmentFactor() float64 {
	return s.SplitFrom / s.SplitTo
}

// SplitsFilter は分割データ照会の絞り込み条件です。ゼロ値のフィールドは条件に含まれません。
type SplitsFilter struct {
	Ticker string
	Limit  int

	// 実施日の範囲フィルター（YYYY-MM-DD）。
	// Polygonの execution_date.gt / gte / lt / lte パラメータに対応します。
	ExecutionDateGT  string
	ExecutionDateGTE string
	ExecutionDateLT  string
	ExecutionDateLTE string
}
