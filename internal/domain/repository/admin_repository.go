package repository

import (
	"context"

	"github.com/jhoicas/golden-store/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
// Los Get devuelven (nil, nil) cuando no existe el registro.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error // ErrDuplicate si el username existe
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error // ErrDuplicate, ErrNotFound
	Count(ctx context.Context) (int, error)
}
