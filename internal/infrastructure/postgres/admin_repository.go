package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

const adminColumns = `id, username, password_hash, role, created_at, updated_at`

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

func (r *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO admins (`+adminColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Username, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	id, ok := canonicalUUID(id)
	if !ok {
		return nil, nil
	}
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
}

func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = $1`, username)
}

func (r *AdminRepo) Update(ctx context.Context, a *entity.Admin) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE admins SET username = $2, password_hash = $3, role = $4, updated_at = $5
		WHERE id = $1`,
		a.ID, a.Username, a.PasswordHash, a.Role, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update admin: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdminRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func (r *AdminRepo) findOne(ctx context.Context, query string, arg any) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}
