package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo ProductRepository en memoria. Slug único.
type ProductRepo struct {
	db *DB
}

// NewProductRepository construye el repositorio.
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == "" {
		return fmt.Errorf("insert product: id vacío")
	}
	return r.db.write(func(st *state) error {
		for _, existing := range st.products {
			if existing.ID == p.ID || existing.Slug == p.Slug {
				return domain.ErrDuplicate
			}
		}
		st.seq++
		st.products[p.ID] = &product{Product: copyProduct(p), seq: st.seq}
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	r.db.read(func(st *state) {
		if p, ok := st.products[id]; ok {
			c := copyProduct(&p.Product)
			out = &c
		}
	})
	return out, nil
}

func (r *ProductRepo) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	var out *entity.Product
	r.db.read(func(st *state) {
		for _, p := range st.products {
			if p.Slug == slug {
				c := copyProduct(&p.Product)
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.db.write(func(st *state) error {
		current, ok := st.products[p.ID]
		if !ok {
			return domain.ErrNotFound
		}
		for _, other := range st.products {
			if other.ID != p.ID && other.Slug == p.Slug {
				return domain.ErrDuplicate
			}
		}
		updated := copyProduct(p)
		updated.CreatedAt = current.CreatedAt
		current.Product = updated
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var rows []*product
	r.db.read(func(st *state) {
		rows = make([]*product, 0, len(st.products))
		for _, p := range st.products {
			c := *p
			c.Product = copyProduct(&p.Product)
			rows = append(rows, &c)
		}
	})
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	list := make([]*entity.Product, 0, len(rows))
	for _, p := range rows {
		list = append(list, &p.Product)
	}
	return list, nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.products, id)
		return nil
	})
}

func copyProduct(p *entity.Product) entity.Product {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	if p.WhatsappNumber != nil {
		w := *p.WhatsappNumber
		c.WhatsappNumber = &w
	}
	return c
}
