package repository

import (
	"context"

	"github.com/jhoicas/golden-store/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get devuelven (nil, nil) cuando no existe el registro.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error // ErrDuplicate si el slug existe
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error // ErrDuplicate, ErrNotFound
	// List devuelve todos los productos, más recientes primero.
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error // ErrNotFound
}
