// Package entity はbarsフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Bar は1つの時間間隔に対するOHLCV（始値・高値・安値・終値・出来高）レコードです。
// Polygonの集計バーAPIが返す1レコードに対応します。
type Bar struct {
	Ticker       string    // 銘柄シンボル（例: "AAPL"）
	Time         time.Time // バー期間の開始時刻（UTC）
	Open         float64   // 始値
	High         float64   // 高値
	Low          float64   // 安値
	Close        float64   // 終値
	Volume       float64   // 出来高（端数が発生しうるためfloat64）
	VWAP         float64   // 出来高加重平均価格
	Transactions int64     // 約定回数
}
