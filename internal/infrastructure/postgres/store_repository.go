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

var _ repository.StoreRepository = (*StoreRepo)(nil)

const settingsColumns = `id, key, store_name, logo_url, hero_headline, hero_tagline, hero_description,
	hero_image, whatsapp_number, instagram, facebook, tiktok, shopee, created_at, updated_at`

// StoreRepo configuración de la tienda y menú de navegación sobre PostgreSQL.
// Normalmente se construye atado a una tx (ver TxRunner.RunStore).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

func (r *StoreRepo) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	var s entity.StoreSettings
	err := r.q.QueryRow(ctx, `SELECT `+settingsColumns+` FROM store_settings WHERE key = $1`, entity.StoreSettingsKey).Scan(
		&s.ID, &s.Key, &s.StoreName, &s.LogoURL, &s.HeroHeadline, &s.HeroTagline, &s.HeroDescription,
		&s.HeroImage, &s.WhatsappNumber, &s.Instagram, &s.Facebook, &s.TikTok, &s.Shopee, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store settings: %w", err)
	}
	return &s, nil
}

func (r *StoreRepo) CreateSettings(ctx context.Context, s *entity.StoreSettings) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO store_settings (`+settingsColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		s.ID, s.Key, s.StoreName, s.LogoURL, s.HeroHeadline, s.HeroTagline, s.HeroDescription,
		s.HeroImage, s.WhatsappNumber, s.Instagram, s.Facebook, s.TikTok, s.Shopee, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store settings: %w", err)
	}
	return nil
}

func (r *StoreRepo) UpdateSettings(ctx context.Context, s *entity.StoreSettings) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE store_settings SET store_name = $2, logo_url = $3, hero_headline = $4, hero_tagline = $5,
			hero_description = $6, hero_image = $7, whatsapp_number = $8, instagram = $9, facebook = $10,
			tiktok = $11, shopee = $12, updated_at = $13
		WHERE id = $1`,
		s.ID, s.StoreName, s.LogoURL, s.HeroHeadline, s.HeroTagline, s.HeroDescription, s.HeroImage,
		s.WhatsappNumber, s.Instagram, s.Facebook, s.TikTok, s.Shopee, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store settings: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StoreRepo) CountNavigation(ctx context.Context, storeID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM navigation_items WHERE store_id = $1`, storeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count navigation: %w", err)
	}
	return n, nil
}

func (r *StoreRepo) ListNavigation(ctx context.Context, storeID string) ([]*entity.NavigationItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, store_id, label, url, sort_order, is_external, created_at, updated_at
		FROM navigation_items WHERE store_id = $1 ORDER BY sort_order, id`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list navigation: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.NavigationItem, 0)
	for rows.Next() {
		var n entity.NavigationItem
		if err := rows.Scan(&n.ID, &n.StoreID, &n.Label, &n.URL, &n.Order, &n.IsExternal, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan navigation: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

func (r *StoreRepo) CreateNavigation(ctx context.Context, n *entity.NavigationItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO navigation_items (id, store_id, label, url, sort_order, is_external, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.StoreID, n.Label, n.URL, n.Order, n.IsExternal, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert navigation: %w", err)
	}
	return nil
}

func (r *StoreRepo) UpdateNavigation(ctx context.Context, n *entity.NavigationItem) (bool, error) {
	id, ok := canonicalUUID(n.ID)
	if !ok {
		return false, nil
	}
	n.ID = id
	cmd, err := r.q.Exec(ctx, `
		UPDATE navigation_items SET label = $3, url = $4, sort_order = $5, is_external = $6, updated_at = $7
		WHERE id = $1 AND store_id = $2`,
		n.ID, n.StoreID, n.Label, n.URL, n.Order, n.IsExternal, n.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update navigation: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *StoreRepo) DeleteNavigationExcept(ctx context.Context, storeID string, keepIDs []string) (int64, error) {
	// se compara como uuid, no como texto: la forma del id no influye
	cmd, err := r.q.Exec(ctx, `
		DELETE FROM navigation_items
		WHERE store_id = $1 AND id <> ALL($2::uuid[])`, storeID, canonicalUUIDs(keepIDs))
	if err != nil {
		return 0, fmt.Errorf("delete navigation: %w", err)
	}
	return cmd.RowsAffected(), nil
}
