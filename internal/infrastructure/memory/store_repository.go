package memory

import (
	"context"

	"github.com/jhoicas/golden-store/internal/application/store"
	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
)

var (
	_ repository.StoreRepository = (*StoreRepo)(nil)
	_ repository.StoreRepository = (*storeView)(nil)
	_ store.TxRunner             = (*TxRunner)(nil)
)

// storeView opera sobre un estado sin tomar el lock; lo usan StoreRepo y las transacciones.
type storeView struct {
	st *state
}

func (v *storeView) GetSettings(_ context.Context) (*entity.StoreSettings, error) {
	if v.st.settings == nil {
		return nil, nil
	}
	c := *v.st.settings
	return &c, nil
}

func (v *storeView) CreateSettings(_ context.Context, s *entity.StoreSettings) error {
	if v.st.settings != nil {
		return domain.ErrDuplicate
	}
	c := *s
	v.st.settings = &c
	return nil
}

func (v *storeView) UpdateSettings(_ context.Context, s *entity.StoreSettings) error {
	if v.st.settings == nil || v.st.settings.ID != s.ID {
		return domain.ErrNotFound
	}
	c := *s
	c.CreatedAt = v.st.settings.CreatedAt
	v.st.settings = &c
	return nil
}

func (v *storeView) CountNavigation(_ context.Context, storeID string) (int, error) {
	n := 0
	for _, item := range v.st.nav {
		if item.StoreID == storeID {
			n++
		}
	}
	return n, nil
}

func (v *storeView) ListNavigation(_ context.Context, storeID string) ([]*entity.NavigationItem, error) {
	return v.st.navigationOf(storeID), nil
}

func (v *storeView) CreateNavigation(_ context.Context, item *entity.NavigationItem) error {
	c := *item
	c.ID = store.CanonicalID(item.ID)
	if _, ok := v.st.nav[c.ID]; ok {
		return domain.ErrDuplicate
	}
	v.st.nav[c.ID] = &c
	return nil
}

func (v *storeView) UpdateNavigation(_ context.Context, item *entity.NavigationItem) (bool, error) {
	// mismas reglas que Postgres: el id se compara en forma canónica
	current, ok := v.st.nav[store.CanonicalID(item.ID)]
	if !ok || current.StoreID != item.StoreID {
		return false, nil
	}
	current.Label = item.Label
	current.URL = item.URL
	current.Order = item.Order
	current.IsExternal = item.IsExternal
	current.UpdatedAt = item.UpdatedAt
	return true, nil
}

func (v *storeView) DeleteNavigationExcept(_ context.Context, storeID string, keepIDs []string) (int64, error) {
	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[store.CanonicalID(id)] = struct{}{}
	}
	var n int64
	for id, item := range v.st.nav {
		if item.StoreID != storeID {
			continue
		}
		if _, ok := keep[id]; !ok {
			delete(v.st.nav, id)
			n++
		}
	}
	return n, nil
}

// StoreRepo StoreRepository en memoria fuera de transacción; cada llamada es atómica.
type StoreRepo struct {
	db *DB
}

// NewStoreRepository construye el repositorio.
func NewStoreRepository(db *DB) *StoreRepo {
	return &StoreRepo{db: db}
}

func (r *StoreRepo) GetSettings(ctx context.Context) (s *entity.StoreSettings, err error) {
	r.db.read(func(st *state) { s, err = (&storeView{st}).GetSettings(ctx) })
	return
}

func (r *StoreRepo) CreateSettings(ctx context.Context, s *entity.StoreSettings) error {
	return r.db.write(func(st *state) error { return (&storeView{st}).CreateSettings(ctx, s) })
}

func (r *StoreRepo) UpdateSettings(ctx context.Context, s *entity.StoreSettings) error {
	return r.db.write(func(st *state) error { return (&storeView{st}).UpdateSettings(ctx, s) })
}

func (r *StoreRepo) CountNavigation(ctx context.Context, storeID string) (n int, err error) {
	r.db.read(func(st *state) { n, err = (&storeView{st}).CountNavigation(ctx, storeID) })
	return
}

func (r *StoreRepo) ListNavigation(ctx context.Context, storeID string) (list []*entity.NavigationItem, err error) {
	r.db.read(func(st *state) { list, err = (&storeView{st}).ListNavigation(ctx, storeID) })
	return
}

func (r *StoreRepo) CreateNavigation(ctx context.Context, item *entity.NavigationItem) error {
	return r.db.write(func(st *state) error { return (&storeView{st}).CreateNavigation(ctx, item) })
}

func (r *StoreRepo) UpdateNavigation(ctx context.Context, item *entity.NavigationItem) (ok bool, err error) {
	err = r.db.write(func(st *state) error {
		ok, err = (&storeView{st}).UpdateNavigation(ctx, item)
		return err
	})
	return
}

func (r *StoreRepo) DeleteNavigationExcept(ctx context.Context, storeID string, keepIDs []string) (n int64, err error) {
	err = r.db.write(func(st *state) error {
		n, err = (&storeView{st}).DeleteNavigationExcept(ctx, storeID, keepIDs)
		return err
	})
	return
}

// TxRunner ejecuta fn sobre una copia del estado y la publica solo si fn no devuelve error.
// Las transacciones se serializan con el lock de escritura.
type TxRunner struct {
	db *DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

func (t *TxRunner) RunStore(ctx context.Context, fn func(repo repository.StoreRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	work := t.db.st.clone()
	if err := fn(&storeView{st: work}); err != nil {
		return err
	}
	t.db.st = work
	return nil
}
