package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/golden-store/internal/application/store"
	"github.com/jhoicas/golden-store/internal/domain/repository"
	"github.com/jhoicas/golden-store/internal/infrastructure/memory"
	"github.com/jhoicas/golden-store/internal/infrastructure/postgres"
	"github.com/jhoicas/golden-store/pkg/config"
	"github.com/jhoicas/golden-store/pkg/logger"
)

// storage repositorios del driver elegido por DB_DRIVER.
type storage struct {
	admins   repository.AdminRepository
	products repository.ProductRepository
	tx       store.TxRunner
	pool     *pgxpool.Pool // nil con el driver memory
	ping     func(ctx context.Context) error
	close    func()
}

// Ping implementa la comprobación de readiness.
func (s *storage) Ping(ctx context.Context) error { return s.ping(ctx) }

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		db := memory.New()
		return &storage{
			admins:   memory.NewAdminRepository(db),
			products: memory.NewProductRepository(db),
			tx:       memory.NewTxRunner(db),
			ping:     db.Ping,
			close:    func() {},
		}, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &storage{
			admins:   postgres.NewAdminRepository(pool),
			products: postgres.NewProductRepository(pool),
			tx:       postgres.NewTxRunner(pool),
			pool:     pool,
			ping:     pool.Ping,
			close:    pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("DB_DRIVER desconocido %q", cfg.DB.Driver)
}

// boot carga configuración y logger, común a todos los subcomandos.
func boot() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return cfg, log, nil
}
