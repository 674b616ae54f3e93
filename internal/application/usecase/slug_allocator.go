package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/repository"
	"github.com/jhoicas/golden-store/pkg/slug"
)

// DefaultSlugMaxAttempts tope de sufijos probados por SlugAllocator.
const DefaultSlugMaxAttempts = 1000

// SlugAllocator busca un slug libre probando base, base-1, base-2, ... en orden.
type SlugAllocator struct {
	repo        repository.ProductRepository
	maxAttempts int
}

// NewSlugAllocator construye el allocator. maxAttempts <= 0 usa DefaultSlugMaxAttempts.
func NewSlugAllocator(repo repository.ProductRepository, maxAttempts int) *SlugAllocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSlugMaxAttempts
	}
	return &SlugAllocator{repo: repo, maxAttempts: maxAttempts}
}

// Allocate devuelve el primer candidato que no use otro producto. base ya debe venir
// normalizado (slug.Format). Un slug ocupado por excludeID cuenta como libre.
// Agotado el tope devuelve domain.ErrConflict.
func (a *SlugAllocator) Allocate(ctx context.Context, base, excludeID string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		owner, err := a.repo.GetBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("buscar slug %q: %w", candidate, err)
		}
		if owner == nil || (excludeID != "" && owner.ID == excludeID) {
			return candidate, nil
		}
		if n > a.maxAttempts {
			return "", fmt.Errorf("%w: sin slug libre para %q tras %d intentos", domain.ErrConflict, base, a.maxAttempts)
		}
		candidate = slug.WithSuffix(base, n)
	}
}
