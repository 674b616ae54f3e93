package slug

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.UnixMilli(1700000000000)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cincin Aurora", "cincin-aurora"},
		{"  Kalung   Luna!! ", "kalung-luna"},
		{"--Gelang__Royale--", "gelang-royale"},
		{"Café Crème 2024", "cafe-creme-2024"},
		{"Jam Nova (Limited) #1", "jam-nova-limited-1"},
		{"ring-aurora", "ring-aurora"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.in, fixedNow))
		})
	}
}

func TestFormat_VacioUsaPlaceholder(t *testing.T) {
	assert.Equal(t, "produk-1700000000000", Format("", fixedNow))
	assert.Equal(t, "produk-1700000000000", Format("  !!! ", fixedNow))
	assert.Equal(t, "produk-1700000000000", Format("日本語", fixedNow))
}

func TestFormat_TruncaSinGuionFinal(t *testing.T) {
	long := strings.Repeat("a", 63) + " bcd"
	got := Format(long, fixedNow)
	assert.Equal(t, strings.Repeat("a", 63), got, "el corte en un guión no debe dejarlo al final")

	got = Format(strings.Repeat("x", 200), fixedNow)
	assert.Len(t, got, MaxLength)
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "cincin-aurora-1", WithSuffix("cincin-aurora", 1))
	assert.Equal(t, "cincin-aurora-12", WithSuffix("cincin-aurora", 12))

	base := strings.Repeat("z", MaxLength)
	first := WithSuffix(base, 1)
	second := WithSuffix(base, 2)
	assert.Len(t, first, MaxLength)
	assert.True(t, strings.HasSuffix(first, "-1"))
	assert.NotEqual(t, first, second, "candidatos sucesivos deben diferir aun con base al máximo")
	assert.NotEqual(t, base, first)
}
