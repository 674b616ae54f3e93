package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/jhoicas/golden-store/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate aplica con golang-migrate las migraciones embebidas pendientes (*.up.sql).
// Devuelve los nombres de las migraciones aplicadas en esta llamada.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) ([]string, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones: %w", err)
	}
	// cerrar este *sql.DB no cierra el pool
	db := stdlib.OpenDBFromPool(pool)
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("driver de migraciones: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("iniciar migraciones: %w", err)
	}
	defer m.Close()

	before, err := currentVersion(m)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("aplicar migraciones: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	after, err := currentVersion(m)
	if err != nil {
		return nil, err
	}
	names, err := migrationNames()
	if err != nil {
		return nil, err
	}
	applied := appliedBetween(names, before, after)
	if log != nil {
		for _, name := range applied {
			log.Info().Str("version", name).Msg("migración aplicada")
		}
	}
	return applied, nil
}

// currentVersion trata una base sin migraciones como versión 0. Una versión sucia
// (migración interrumpida) es un error: requiere intervención manual.
func currentVersion(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("versión del esquema: %w", err)
	}
	if dirty {
		return v, fmt.Errorf("esquema en estado sucio en la versión %d", v)
	}
	return v, nil
}

// appliedBetween devuelve las migraciones con versión en (before, after].
func appliedBetween(names []string, before, after uint) []string {
	var out []string
	for _, name := range names {
		v, ok := migrationVersion(name)
		if ok && v > before && v <= after {
			out = append(out, strings.TrimSuffix(name, ".up.sql"))
		}
	}
	return out
}

// migrationVersion extrae el prefijo numérico: "001_init.up.sql" -> 1.
func migrationVersion(name string) (uint, bool) {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return 0, false
	}
	v, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
