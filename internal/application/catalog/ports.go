package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/golden-store/internal/application/dto"
)

// Snapshot datos del catálogo que consumen los exportadores.
type Snapshot struct {
	Store        *dto.StoreSettingsResponse
	Products     []dto.ProductResponse
	PublicURL    string
	LastModified time.Time // máximo updatedAt entre tienda y productos; cero si no hay datos
}

// PDFRenderer genera el catálogo imprimible.
type PDFRenderer interface {
	RenderCatalog(ctx context.Context, snap Snapshot) ([]byte, error)
}

// FeedBuilder genera el feed XML de productos y su ETag.
type FeedBuilder interface {
	BuildFeed(ctx context.Context, snap Snapshot) (body []byte, etag string, err error)
}

// ProductLister fuente de productos (usecase.ProductUseCase).
type ProductLister interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
}

// SettingsReader fuente de la configuración (usecase.StoreUseCase).
type SettingsReader interface {
	Get(ctx context.Context) (*dto.StoreSettingsResponse, error)
}
