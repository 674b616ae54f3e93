package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/application/store"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
)

// StoreUseCase lectura y actualización de la configuración de la tienda.
type StoreUseCase struct {
	tx  store.TxRunner
	now func() time.Time
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(tx store.TxRunner) *StoreUseCase {
	return &StoreUseCase{tx: tx, now: time.Now}
}

// Get devuelve la configuración con su menú ordenado. Sin fila se sirven los valores
// por defecto con id null.
func (uc *StoreUseCase) Get(ctx context.Context) (*dto.StoreSettingsResponse, error) {
	var out *dto.StoreSettingsResponse
	err := uc.tx.RunStore(ctx, func(repo repository.StoreRepository) error {
		settings, err := repo.GetSettings(ctx)
		if err != nil {
			return err
		}
		if settings == nil {
			out = DefaultStoreSettingsResponse()
			return nil
		}
		nav, err := repo.ListNavigation(ctx, settings.ID)
		if err != nil {
			return err
		}
		out = toStoreSettingsResponse(settings, nav)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update guarda la configuración en una transacción. Crea la fila si no existe.
// El menú solo se reconcilia si in.Navigation no es nil.
func (uc *StoreUseCase) Update(ctx context.Context, in dto.StoreSettingsInput) (*dto.StoreSettingsResponse, error) {
	var out *dto.StoreSettingsResponse
	err := uc.tx.RunStore(ctx, func(repo repository.StoreRepository) error {
		now := uc.now()
		settings, err := repo.GetSettings(ctx)
		if err != nil {
			return err
		}
		if settings == nil {
			settings = &entity.StoreSettings{
				ID:        uuid.New().String(),
				Key:       entity.StoreSettingsKey,
				CreatedAt: now,
			}
			applySettings(settings, in, now)
			if err := repo.CreateSettings(ctx, settings); err != nil {
				return fmt.Errorf("crear configuración: %w", err)
			}
		} else {
			applySettings(settings, in, now)
			if err := repo.UpdateSettings(ctx, settings); err != nil {
				return fmt.Errorf("actualizar configuración: %w", err)
			}
		}

		var nav []*entity.NavigationItem
		if in.Navigation != nil {
			nav, err = store.ReconcileNavigation(ctx, repo, settings.ID, in.Navigation, now)
		} else {
			nav, err = repo.ListNavigation(ctx, settings.ID)
		}
		if err != nil {
			return err
		}
		out = toStoreSettingsResponse(settings, nav)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func applySettings(s *entity.StoreSettings, in dto.StoreSettingsInput, now time.Time) {
	s.StoreName = in.StoreName
	s.LogoURL = in.LogoURL
	s.HeroHeadline = in.HeroHeadline
	s.HeroTagline = in.HeroTagline
	s.HeroDescription = in.HeroDescription
	s.HeroImage = in.HeroImage
	s.WhatsappNumber = in.WhatsappNumber
	s.Instagram = in.Instagram
	s.Facebook = in.Facebook
	s.TikTok = in.TikTok
	s.Shopee = in.Shopee
	s.UpdatedAt = now
}

// DefaultStoreSettingsResponse valores por defecto tal como los ve el storefront
// antes del primer bootstrap: id null y navegación con ids "default-<i>".
func DefaultStoreSettingsResponse() *dto.StoreSettingsResponse {
	s := entity.DefaultStoreSettings()
	defaults := entity.DefaultNavigation()
	nav := make([]dto.NavigationItemResponse, 0, len(defaults))
	for i, item := range defaults {
		nav = append(nav, dto.NavigationItemResponse{
			ID:         fmt.Sprintf("default-%d", i),
			Label:      item.Label,
			URL:        item.URL,
			Order:      item.Order,
			IsExternal: item.IsExternal,
		})
	}
	resp := baseSettingsResponse(&s)
	resp.Navigation = nav
	return resp
}

func toStoreSettingsResponse(s *entity.StoreSettings, items []*entity.NavigationItem) *dto.StoreSettingsResponse {
	resp := baseSettingsResponse(s)
	id := s.ID
	created, updated := s.CreatedAt, s.UpdatedAt
	resp.ID = &id
	resp.CreatedAt = &created
	resp.UpdatedAt = &updated
	resp.Navigation = make([]dto.NavigationItemResponse, 0, len(items))
	for _, item := range items {
		resp.Navigation = append(resp.Navigation, dto.NavigationItemResponse{
			ID:         item.ID,
			Label:      item.Label,
			URL:        item.URL,
			Order:      item.Order,
			IsExternal: item.IsExternal,
		})
	}
	return resp
}

func baseSettingsResponse(s *entity.StoreSettings) *dto.StoreSettingsResponse {
	key := s.Key
	if key == "" {
		key = entity.StoreSettingsKey
	}
	return &dto.StoreSettingsResponse{
		Key:             key,
		StoreName:       s.StoreName,
		LogoURL:         s.LogoURL,
		HeroHeadline:    s.HeroHeadline,
		HeroTagline:     s.HeroTagline,
		HeroDescription: s.HeroDescription,
		HeroImage:       s.HeroImage,
		WhatsappNumber:  s.WhatsappNumber,
		Instagram:       s.Instagram,
		Facebook:        s.Facebook,
		TikTok:          s.TikTok,
		Shopee:          s.Shopee,
	}
}
