// Package entity はfinancialsフィーチャーのドメインモデルを定義します。
package entity

// Statement は1会計期間分の財務諸表レコードです。
// ネストされたセクション（貸借対照表・損益計算書など）の明細行は
// ラベルをキーとするフラットなマップに崩して保持します。
type Statement struct {
	CIK          string // SECの企業識別番号
	CompanyName  string
	FiscalYear   string
	FiscalPeriod string // "Q1".."Q4", "FY", "TTM"
	StartDate    string // 会計期間の開始日（YYYY-MM-DD）
	EndDate      string // 会計期間の終了日（YYYY-MM-DD）
	FilingDate   string // SECへの提出日（YYYY-MM-DD）

	// Items は財務諸表の明細行ラベル（例: "Revenues"）から金額へのマップです。
	// 存在しない明細行はキー自体が存在しません。
	Items map[string]float64
}
