package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah formatea un precio entero en rupiah: 1250000 -> "Rp 1.250.000".
func FormatRupiah(price int64) string {
	s := decimal.NewFromInt(price).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	n := len(s)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "Rp -" + string(buf)
	}
	return "Rp " + string(buf)
}

// MerchantPrice precio en el formato de feeds de comercio: "1250000.00 IDR".
func MerchantPrice(price int64) string {
	return decimal.NewFromInt(price).StringFixed(2) + " IDR"
}
