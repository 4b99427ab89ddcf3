package usecase

import (
	"errors"
	"sort"
	"strings"

	"github.com/vicanso/go-charts/v2"

	"polygon_dashboard/internal/feature/bars/domain/entity"
)

// RenderCloseChart は終値の折れ線チャートをPNGとして描画します。
// X軸はバーの日付、Y軸は値域に5%のパディングを加えた終値レンジです。
func RenderCloseChart(ticker string, bars []entity.Bar) ([]byte, error) {
	if len(bars) < 2 {
		return nil, errors.New("not enough data points")
	}

	// チャートは時系列の昇順で描画する
	sorted := make([]entity.Bar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	labels := make([]string, len(sorted))
	closes := make([]float64, len(sorted))
	var yMin, yMax float64
	for i, b := range sorted {
		labels[i] = b.Time.UTC().Format("2006-01-02")
		closes[i] = b.Close
		if i == 0 {
			yMin, yMax = b.Close, b.Close
			continue
		}
		if b.Close < yMin {
			yMin = b.Close
		}
		if b.Close > yMax {
			yMax = b.Close
		}
	}

	// 値域の上下に5%のパディング
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	painter, err := charts.LineRender([][]float64{closes},
		charts.TitleTextOptionFunc(strings.ToUpper(ticker)+" • Close"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
