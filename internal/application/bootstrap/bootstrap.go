// Package bootstrap garantiza los datos base (admin inicial y configuración de tienda)
// una sola vez por proceso, y expone el seeder del comando `seed`.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/golden-store/internal/application/store"
	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
	"github.com/jhoicas/golden-store/pkg/logger"
)

// Config credenciales del admin inicial. Sin Password no se crea ningún admin.
type Config struct {
	Username   string
	Password   string
	BcryptCost int // 0 -> bcrypt.DefaultCost
}

// Bootstrapper ejecuta Ensure una vez con éxito por proceso; las llamadas concurrentes
// esperan la misma ejecución en vuelo. Si falla, la siguiente llamada reintenta.
type Bootstrapper struct {
	admins repository.AdminRepository
	tx     store.TxRunner
	cfg    Config
	log    *logger.Logger
	now    func() time.Time

	group singleflight.Group
	done  atomic.Bool
}

// New construye el bootstrapper.
func New(admins repository.AdminRepository, tx store.TxRunner, cfg Config, log *logger.Logger) *Bootstrapper {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Bootstrapper{admins: admins, tx: tx, cfg: cfg, log: log, now: time.Now}
}

// Done indica si ya hubo un Ensure exitoso.
func (b *Bootstrapper) Done() bool {
	return b.done.Load()
}

// Ensure crea los datos base que falten. Nunca sobrescribe datos existentes.
// Si ctx se cancela, el llamador deja de esperar pero la ejecución en vuelo termina.
func (b *Bootstrapper) Ensure(ctx context.Context) error {
	if b.done.Load() {
		return nil
	}
	ch := b.group.DoChan("bootstrap", func() (any, error) {
		if b.done.Load() {
			return nil, nil
		}
		if err := b.run(context.WithoutCancel(ctx)); err != nil {
			return nil, err
		}
		b.done.Store(true)
		return nil, nil
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bootstrapper) run(ctx context.Context) error {
	if err := b.ensureAdmin(ctx); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if err := b.ensureStoreSettings(ctx); err != nil {
		return fmt.Errorf("bootstrap tienda: %w", err)
	}
	return nil
}

func (b *Bootstrapper) ensureAdmin(ctx context.Context) error {
	if b.cfg.Password == "" {
		return nil
	}
	n, err := b.admins.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(b.cfg.Password), b.cfg.BcryptCost)
	if err != nil {
		return err
	}
	now := b.now()
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Username:     b.cfg.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := b.admins.Create(ctx, admin); err != nil {
		// otro proceso lo creó entre el Count y el Create
		if errors.Is(err, domain.ErrDuplicate) {
			return nil
		}
		return err
	}
	b.log.Info().Str("username", admin.Username).Msg("admin inicial creado")
	return nil
}

func (b *Bootstrapper) ensureStoreSettings(ctx context.Context) error {
	created := false
	err := b.tx.RunStore(ctx, func(repo repository.StoreRepository) error {
		now := b.now()
		settings, err := repo.GetSettings(ctx)
		if err != nil {
			return err
		}
		if settings == nil {
			s := entity.DefaultStoreSettings()
			s.ID = uuid.New().String()
			s.CreatedAt = now
			s.UpdatedAt = now
			if err := repo.CreateSettings(ctx, &s); err != nil {
				return err
			}
			created = true
			return store.SeedDefaultNavigation(ctx, repo, s.ID, now)
		}
		n, err := repo.CountNavigation(ctx, settings.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return store.SeedDefaultNavigation(ctx, repo, settings.ID, now)
		}
		return nil
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return nil
	}
	if err == nil && created {
		b.log.Info().Msg("configuración de tienda por defecto creada")
	}
	return err
}
