// Package catalog exporta el catálogo público: PDF para el back-office y feed XML para
// marketplaces y lectores RSS.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/golden-store/internal/application/dto"
)

// Feed documento XML listo para servir.
type Feed struct {
	Body []byte
	ETag string
}

// ExportUseCase arma el Snapshot y delega el render.
type ExportUseCase struct {
	products  ProductLister
	settings  SettingsReader
	pdf       PDFRenderer
	feed      FeedBuilder
	publicURL string
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(products ProductLister, settings SettingsReader, pdf PDFRenderer, feed FeedBuilder, publicURL string) *ExportUseCase {
	return &ExportUseCase{
		products:  products,
		settings:  settings,
		pdf:       pdf,
		feed:      feed,
		publicURL: publicURL,
		now:       time.Now,
	}
}

// CatalogPDF devuelve el PDF y un nombre de archivo con la fecha.
func (uc *ExportUseCase) CatalogPDF(ctx context.Context) ([]byte, string, error) {
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.RenderCatalog(ctx, snap)
	if err != nil {
		return nil, "", fmt.Errorf("catálogo pdf: %w", err)
	}
	filename := fmt.Sprintf("katalog-%s.pdf", uc.now().Format("2006-01-02"))
	return doc, filename, nil
}

// ProductFeed devuelve el feed XML. El ETag solo cambia si cambian los datos.
func (uc *ExportUseCase) ProductFeed(ctx context.Context) (*Feed, error) {
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	body, etag, err := uc.feed.BuildFeed(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("feed xml: %w", err)
	}
	return &Feed{Body: body, ETag: etag}, nil
}

func (uc *ExportUseCase) snapshot(ctx context.Context) (Snapshot, error) {
	store, err := uc.settings.Get(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Store:        store,
		Products:     products,
		PublicURL:    uc.publicURL,
		LastModified: lastModified(store, products),
	}, nil
}

func lastModified(store *dto.StoreSettingsResponse, products []dto.ProductResponse) time.Time {
	var last time.Time
	if store != nil && store.UpdatedAt != nil {
		last = *store.UpdatedAt
	}
	for _, p := range products {
		if p.UpdatedAt.After(last) {
			last = p.UpdatedAt
		}
	}
	return last
}
