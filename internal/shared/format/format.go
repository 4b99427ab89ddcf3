// Package format は表示用の数値フォーマット関数を提供します。
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Comma は数値を小数点以下2桁・3桁区切りのカンマ付きで整形します。
// 例: 1234567.891 -> "1,234,567.89"
func Comma(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	// 整数部を右から3桁ごとに区切る
	var b strings.Builder
	n := len(intPart)
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Decimal10 は数値を小数点以下10桁で整形します。分割調整係数の表示に使用します。
func Decimal10(v float64) string {
	return fmt.Sprintf("%.10f", v)
}

// Number は数値を末尾のゼロを付けない最短表現で整形します。
// 例: 2.0 -> "2", 1.5 -> "1.5"
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
