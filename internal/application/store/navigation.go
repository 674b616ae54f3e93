package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
)

// ReconcileNavigation deja el menú de storeID exactamente igual a items, en ese orden.
// Debe llamarse con un repo atado a una transacción (TxRunner.RunStore).
//
//   - ítem con ID de una fila existente (comparado en forma canónica) -> se actualiza en sitio
//   - ítem sin ID, con ID desconocido o con ID ya usado en este payload -> se crea
//   - filas previas no referenciadas -> se borran
//
// Order de cada ítem es su posición, así que el resultado siempre es 0..n-1.
func ReconcileNavigation(
	ctx context.Context,
	repo repository.StoreRepository,
	storeID string,
	items []dto.NavigationInput,
	now time.Time,
) ([]*entity.NavigationItem, error) {
	keep := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for i, in := range items {
		id := CanonicalID(in.ID)
		item := &entity.NavigationItem{
			ID:         id,
			StoreID:    storeID,
			Label:      in.Label,
			URL:        in.URL,
			Order:      i,
			IsExternal: in.IsExternal,
			UpdatedAt:  now,
		}

		if _, dup := seen[id]; id != "" && !dup {
			updated, err := repo.UpdateNavigation(ctx, item)
			if err != nil {
				return nil, fmt.Errorf("navegación: actualizar %s: %w", id, err)
			}
			if updated {
				seen[id] = struct{}{}
				keep = append(keep, id)
				continue
			}
		}

		item.ID = uuid.New().String()
		item.CreatedAt = now
		if err := repo.CreateNavigation(ctx, item); err != nil {
			return nil, fmt.Errorf("navegación: crear %q: %w", in.Label, err)
		}
		seen[item.ID] = struct{}{}
		keep = append(keep, item.ID)
	}

	if _, err := repo.DeleteNavigationExcept(ctx, storeID, keep); err != nil {
		return nil, fmt.Errorf("navegación: borrar sobrantes: %w", err)
	}
	return repo.ListNavigation(ctx, storeID)
}

// CanonicalID devuelve la forma canónica (minúsculas con guiones) de un id uuid en
// cualquiera de las formas que acepta uuid.Parse: mayúsculas, {llaves}, urn:uuid: o sin
// guiones. Un id que no es uuid se devuelve tal cual; nunca coincide con una fila.
func CanonicalID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}

// SeedDefaultNavigation crea el menú por defecto para storeID.
func SeedDefaultNavigation(ctx context.Context, repo repository.StoreRepository, storeID string, now time.Time) error {
	for _, def := range entity.DefaultNavigation() {
		item := def
		item.ID = uuid.New().String()
		item.StoreID = storeID
		item.CreatedAt = now
		item.UpdatedAt = now
		if err := repo.CreateNavigation(ctx, &item); err != nil {
			return fmt.Errorf("navegación por defecto: %w", err)
		}
	}
	return nil
}
