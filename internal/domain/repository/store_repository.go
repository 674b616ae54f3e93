package repository

import (
	"context"

	"github.com/jhoicas/golden-store/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para la configuración de la tienda
// y su menú de navegación. Pensado para usarse dentro de una transacción (ver store.TxRunner).
type StoreRepository interface {
	// GetSettings devuelve la fila singleton o (nil, nil).
	GetSettings(ctx context.Context) (*entity.StoreSettings, error)
	CreateSettings(ctx context.Context, settings *entity.StoreSettings) error // ErrDuplicate si la clave existe
	UpdateSettings(ctx context.Context, settings *entity.StoreSettings) error

	CountNavigation(ctx context.Context, storeID string) (int, error)
	// ListNavigation devuelve los ítems ordenados por Order ascendente.
	ListNavigation(ctx context.Context, storeID string) ([]*entity.NavigationItem, error)
	CreateNavigation(ctx context.Context, item *entity.NavigationItem) error
	// UpdateNavigation actualiza el ítem item.ID de la tienda item.StoreID.
	// Devuelve false (sin error) si no existe.
	UpdateNavigation(ctx context.Context, item *entity.NavigationItem) (bool, error)
	// DeleteNavigationExcept borra los ítems de la tienda cuyo ID no esté en keepIDs.
	DeleteNavigationExcept(ctx context.Context, storeID string, keepIDs []string) (int64, error)
}
