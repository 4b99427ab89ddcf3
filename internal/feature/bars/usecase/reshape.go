package usecase

import (
	"sort"

	"polygon_dashboard/internal/feature/bars/domain/entity"
	"polygon_dashboard/internal/shared/format"
	"polygon_dashboard/internal/shared/table"
)

// BarColumns は株価バーテーブルのスキーマです。この集合と順序は固定です。
var BarColumns = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// BuildTable はバーのスライスを表示用テーブルに整形します。
// 行は日付の降順に並び、数値は3桁区切り・小数点以下2桁で整形されます。
// 入力が空の場合も同じスキーマの空テーブルを返します。
func BuildTable(bars []entity.Bar) table.Table {
	t := table.New(BarColumns)

	// 表示は日付の降順（最新が先頭）
	sorted := make([]entity.Bar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Time.After(sorted[j].Time)
	})

	for _, b := range sorted {
		t.Append([]string{
			b.Time.UTC().Format("2006-01-02"),
			format.Comma(b.Open),
			format.Comma(b.High),
			format.Comma(b.Low),
			format.Comma(b.Close),
			format.Comma(b.Volume),
		})
	}
	return t
}
