// Package pdf genera el catálogo imprimible de la tienda con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda + tagline  │  Fecha / total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR PRODUCTO: QR a Shopee │ Nombre, precio, tags, texto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: WhatsApp + redes                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/golden-store/internal/application/catalog"
	"github.com/jhoicas/golden-store/internal/application/dto"
)

var (
	colorGold = &props.Color{Red: 176, Green: 137, Blue: 40}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ catalog.PDFRenderer = (*CatalogRenderer)(nil)

// CatalogRenderer implementa catalog.PDFRenderer.
type CatalogRenderer struct {
	now func() time.Time
}

// NewCatalogRenderer construye el renderer.
func NewCatalogRenderer() *CatalogRenderer { return &CatalogRenderer{now: time.Now} }

// RenderCatalog genera el PDF y devuelve sus bytes.
func (g *CatalogRenderer) RenderCatalog(_ context.Context, snap catalog.Snapshot) ([]byte, error) {
	storeName := "Golden Store"
	if snap.Store != nil && snap.Store.StoreName != "" {
		storeName = snap.Store.StoreName
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Katalog "+storeName, true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(storeName, snap, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.6}))

	if len(snap.Products) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Belum ada produk.", props.Text{Align: align.Center, Top: 4, Color: colorGray}),
		)))
	}
	for _, p := range snap.Products {
		m.AddRows(productRow(p))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	if snap.Store != nil {
		m.AddRows(footerRows(snap.Store)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre + tagline (izq), fecha y cantidad de productos (der).
func headerRow(storeName string, snap catalog.Snapshot, now time.Time) core.Row {
	tagline := ""
	if snap.Store != nil {
		tagline = strings.TrimSpace(snap.Store.HeroHeadline + " " + snap.Store.HeroTagline)
	}
	return row.New(20).Add(
		col.New(8).Add(
			text.New(storeName, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorGold, Top: 1}),
			text.New(tagline, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("KATALOG PRODUK", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1}),
			text.New(now.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("%d produk", len(snap.Products)), props.Text{Size: 8, Align: align.Right, Top: 12, Color: colorGray}),
		),
	)
}

// productRow: QR al marketplace + ficha del producto.
func productRow(p dto.ProductResponse) core.Row {
	details := []core.Component{
		text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 2, Left: 2}),
		text.New(catalog.FormatRupiah(p.Price), props.Text{Style: fontstyle.Bold, Size: 10, Top: 8, Left: 2, Color: colorGold}),
		text.New(p.Description, props.Text{Size: 8, Top: 14, Left: 2, Color: colorGray}),
	}
	if len(p.Tags) > 0 {
		details = append(details, text.New(strings.Join(p.Tags, " · "), props.Text{
			Style: fontstyle.Italic, Size: 7, Top: 26, Left: 2, Color: colorGray,
		}))
	}

	qr := col.New(3)
	if p.ShopeeURL != "" {
		qr.Add(code.NewQr(p.ShopeeURL, props.Rect{Percent: 90, Center: true}))
	}
	return row.New(34).Add(qr, col.New(9).Add(details...))
}

// footerRows: contacto de la tienda.
func footerRows(s *dto.StoreSettingsResponse) []core.Row {
	var parts []string
	if s.WhatsappNumber != nil {
		parts = append(parts, "WhatsApp: "+*s.WhatsappNumber)
	}
	for _, link := range []*string{s.Instagram, s.Facebook, s.TikTok, s.Shopee} {
		if link != nil {
			parts = append(parts, *link)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []core.Row{
		line.NewRow(4),
		row.New(10).Add(col.New(12).Add(
			text.New(strings.Join(parts, "   |   "), props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2}),
		)),
	}
}
