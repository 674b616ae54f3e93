package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
	"github.com/jhoicas/golden-store/pkg/slug"
)

// writeRetries veces que se reintenta la escritura si otro request ganó el slug entre
// Allocate y el INSERT/UPDATE.
const writeRetries = 3

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo  repository.ProductRepository
	slugs *SlugAllocator
	now   func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, slugMaxAttempts int) *ProductUseCase {
	return &ProductUseCase{
		repo:  repo,
		slugs: NewSlugAllocator(repo, slugMaxAttempts),
		now:   time.Now,
	}
}

// Create crea un producto. El slug sale de in.Slug o, si viene vacío, del nombre.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductInput) (*dto.ProductResponse, error) {
	now := uc.now()
	base := in.Slug
	if base == "" {
		base = in.Name
	}
	base = slug.Format(base, now)

	product := &entity.Product{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(product, in)

	for attempt := 0; attempt < writeRetries; attempt++ {
		s, err := uc.slugs.Allocate(ctx, base, "")
		if err != nil {
			return nil, err
		}
		product.Slug = s
		err = uc.repo.Create(ctx, product)
		if err == nil {
			return toProductResponse(product), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, domain.ErrConflict
}

// Get busca por ID y, si no existe, por slug.
func (uc *ProductUseCase) Get(ctx context.Context, idOrSlug string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		product, err = uc.repo.GetBySlug(ctx, idOrSlug)
		if err != nil {
			return nil, err
		}
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update reemplaza los campos del producto id. El slug solo se regenera si llega uno
// explícito o si cambió el nombre; si no, se conserva tal cual.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductInput) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	base := ""
	switch {
	case in.Slug != "":
		base = slug.Format(in.Slug, now)
	case in.Name != product.Name:
		base = slug.Format(in.Name, now)
	}
	applyInput(product, in)
	product.UpdatedAt = now

	for attempt := 0; attempt < writeRetries; attempt++ {
		if base != "" {
			s, err := uc.slugs.Allocate(ctx, base, product.ID)
			if err != nil {
				return nil, err
			}
			product.Slug = s
		}
		err = uc.repo.Update(ctx, product)
		if err == nil {
			return toProductResponse(product), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) || base == "" {
			return nil, err
		}
	}
	return nil, domain.ErrConflict
}

// Delete elimina el producto id. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, product.ID)
}

func applyInput(p *entity.Product, in dto.ProductInput) {
	p.Name = in.Name
	p.Price = in.Price
	p.Image = in.Image
	p.Description = in.Description
	p.ShopeeURL = in.ShopeeURL
	p.WhatsappNumber = in.WhatsappNumber
	p.Tags = in.Tags
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Slug:           p.Slug,
		Name:           p.Name,
		Price:          p.Price,
		Image:          p.Image,
		Description:    p.Description,
		ShopeeURL:      p.ShopeeURL,
		WhatsappNumber: p.WhatsappNumber,
		Tags:           tags,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
