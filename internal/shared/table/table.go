// Package table は整形済み市場データの統一的な表形式構造を定義します。
package table

// Table はカラム名の固定リストと文字列セルの行で構成される表です。
// 各エンドポイントの整形関数はスキーマ（カラム集合と順序）が一定のTableを返します。
// 結果が空の場合も同じスキーマを持つ空のTableを返します。
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// New は指定されたスキーマで空のTableを生成します。
// Rowsは空スライスで初期化されるため、JSONでは[]として出力されます。
func New(columns []string) Table {
	return Table{
		Columns: columns,
		Rows:    make([][]string, 0),
	}
}

// Append は1行を末尾に追加します。セル数はカラム数と一致している必要があります。
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// Empty は行が存在しない場合にtrueを返します。
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}
