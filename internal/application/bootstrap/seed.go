package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/application/store"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
	"github.com/jhoicas/golden-store/pkg/logger"
)

// SeedResult resumen de lo que hizo Seed.
type SeedResult struct {
	AdminUsername   string
	ProductsCreated int
	ProductsUpdated int
	NavigationItems int
}

// Seeder carga el catálogo de muestra. Es idempotente: hace upsert por username y por slug
// y restablece la configuración de la tienda a los valores por defecto.
type Seeder struct {
	admins   repository.AdminRepository
	products repository.ProductRepository
	tx       store.TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewSeeder construye el seeder.
func NewSeeder(admins repository.AdminRepository, products repository.ProductRepository, tx store.TxRunner, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{admins: admins, products: products, tx: tx, log: log, now: time.Now}
}

// Seed aplica el admin (username, password) y los datos de muestra.
func (s *Seeder) Seed(ctx context.Context, username, password string) (*SeedResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("seed: username y password son requeridos")
	}
	res := &SeedResult{AdminUsername: username}
	if err := s.seedAdmin(ctx, username, password); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	for _, p := range SampleProducts() {
		created, err := s.upsertProduct(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("seed producto %s: %w", p.Slug, err)
		}
		if created {
			res.ProductsCreated++
		} else {
			res.ProductsUpdated++
		}
	}
	n, err := s.resetStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed tienda: %w", err)
	}
	res.NavigationItems = n

	s.log.Info().
		Str("admin", username).
		Int("creados", res.ProductsCreated).
		Int("actualizados", res.ProductsUpdated).
		Msg("base de datos sembrada")
	return res, nil
}

func (s *Seeder) seedAdmin(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := s.now()
	existing, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.PasswordHash = string(hash)
		existing.UpdatedAt = now
		return s.admins.Update(ctx, existing)
	}
	return s.admins.Create(ctx, &entity.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *Seeder) upsertProduct(ctx context.Context, sample entity.Product) (bool, error) {
	now := s.now()
	existing, err := s.products.GetBySlug(ctx, sample.Slug)
	if err != nil {
		return false, err
	}
	if existing != nil {
		sample.ID = existing.ID
		sample.CreatedAt = existing.CreatedAt
		sample.UpdatedAt = now
		return false, s.products.Update(ctx, &sample)
	}
	sample.ID = uuid.New().String()
	sample.CreatedAt = now
	sample.UpdatedAt = now
	return true, s.products.Create(ctx, &sample)
}

func (s *Seeder) resetStore(ctx context.Context) (int, error) {
	var count int
	err := s.tx.RunStore(ctx, func(repo repository.StoreRepository) error {
		now := s.now()
		defaults := entity.DefaultStoreSettings()
		current, err := repo.GetSettings(ctx)
		if err != nil {
			return err
		}
		if current == nil {
			defaults.ID = uuid.New().String()
			defaults.CreatedAt = now
			defaults.UpdatedAt = now
			if err := repo.CreateSettings(ctx, &defaults); err != nil {
				return err
			}
		} else {
			defaults.ID = current.ID
			defaults.CreatedAt = current.CreatedAt
			defaults.UpdatedAt = now
			if err := repo.UpdateSettings(ctx, &defaults); err != nil {
				return err
			}
		}

		nav := make([]dto.NavigationInput, 0, 3)
		for _, item := range entity.DefaultNavigation() {
			nav = append(nav, dto.NavigationInput{Label: item.Label, URL: item.URL, IsExternal: item.IsExternal})
		}
		items, err := store.ReconcileNavigation(ctx, repo, defaults.ID, nav, now)
		if err != nil {
			return err
		}
		count = len(items)
		return nil
	})
	return count, err
}
