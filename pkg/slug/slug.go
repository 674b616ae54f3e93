// Package slug normaliza nombres de producto a identificadores URL-safe.
package slug

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength longitud máxima de un slug, sufijo incluido.
const MaxLength = 64

const fallbackPrefix = "produk"

// Format convierte texto libre en slug: pliega acentos ("Café" -> "cafe"), pasa a minúsculas,
// colapsa cada tramo no alfanumérico en un único '-', recorta guiones en los extremos y trunca
// a MaxLength. Si no queda nada devuelve "produk-<unix ms>".
func Format(text string, now time.Time) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		text,
	)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}

	out := truncate(b.String(), MaxLength)
	if out == "" {
		return fmt.Sprintf("%s-%d", fallbackPrefix, now.UnixMilli())
	}
	return out
}

// WithSuffix devuelve base-n sin exceder MaxLength. Se recorta la base, nunca el sufijo,
// para que candidatos sucesivos sean siempre distintos.
func WithSuffix(base string, n int) string {
	suffix := "-" + strconv.Itoa(n)
	return truncate(base, MaxLength-len(suffix)) + suffix
}

func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		s = s[:n]
	}
	return strings.TrimRight(s, "-")
}
