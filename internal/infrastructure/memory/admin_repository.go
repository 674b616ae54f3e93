package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo AdminRepository en memoria.
type AdminRepo struct {
	db *DB
}

// NewAdminRepository construye el repositorio.
func NewAdminRepository(db *DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (r *AdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	if admin.ID == "" {
		return fmt.Errorf("insert admin: id vacío")
	}
	return r.db.write(func(st *state) error {
		for _, a := range st.admins {
			if a.Username == admin.Username || a.ID == admin.ID {
				return domain.ErrDuplicate
			}
		}
		c := *admin
		st.admins[c.ID] = &c
		return nil
	})
}

func (r *AdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	var out *entity.Admin
	r.db.read(func(st *state) {
		if a, ok := st.admins[id]; ok {
			c := *a
			out = &c
		}
	})
	return out, nil
}

func (r *AdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	var out *entity.Admin
	r.db.read(func(st *state) {
		for _, a := range st.admins {
			if a.Username == username {
				c := *a
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *AdminRepo) Update(_ context.Context, admin *entity.Admin) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.admins[admin.ID]; !ok {
			return domain.ErrNotFound
		}
		for _, a := range st.admins {
			if a.ID != admin.ID && a.Username == admin.Username {
				return domain.ErrDuplicate
			}
		}
		c := *admin
		st.admins[c.ID] = &c
		return nil
	})
}

func (r *AdminRepo) Count(_ context.Context) (int, error) {
	var n int
	r.db.read(func(st *state) { n = len(st.admins) })
	return n, nil
}
