package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount 千分位 + 1 位小数，如 12345.67 → "12,345.7"
func FormatAmount(value float64) string {
	s := decimal.NewFromFloat(value).StringFixed(1)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart) + "." + frac
}

// FormatPercent 1 位小数百分比，如 16.66 → "16.7%"
func FormatPercent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(1) + "%"
}

// FormatSigned 带符号的增减值，如 5 → "+5.0"
func FormatSigned(value float64) string {
	s := FormatAmount(value)
	if value > 0 {
		return "+" + s
	}
	return s
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
