package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/golden-store/internal/domain"
)

// NavigationItemRequest ítem del menú en PUT /api/store/settings.
type NavigationItemRequest struct {
	ID         *string `json:"id"`
	Label      string  `json:"label"`
	URL        string  `json:"url"`
	IsExternal bool    `json:"isExternal"`
}

// StoreSettingsRequest cuerpo de PUT /api/store/settings.
// Navigation nil (ausente o null) deja el menú intacto; [] lo vacía.
type StoreSettingsRequest struct {
	StoreName       string                  `json:"storeName"`
	LogoURL         *string                 `json:"logoUrl"`
	HeroHeadline    string                  `json:"heroHeadline"`
	HeroTagline     string                  `json:"heroTagline"`
	HeroDescription string                  `json:"heroDescription"`
	HeroImage       string                  `json:"heroImage"`
	WhatsappNumber  *string                 `json:"whatsappNumber"`
	Instagram       *string                 `json:"instagram"`
	Facebook        *string                 `json:"facebook"`
	TikTok          *string                 `json:"tiktok"`
	Shopee          *string                 `json:"shopee"`
	Navigation      []NavigationItemRequest `json:"navigation"`
}

// NavigationInput ítem validado. ID vacío = crear.
type NavigationInput struct {
	ID         string
	Label      string
	URL        string
	IsExternal bool
}

// StoreSettingsInput configuración validada. Navigation nil = no tocar el menú.
type StoreSettingsInput struct {
	StoreName       string
	LogoURL         *string
	HeroHeadline    string
	HeroTagline     string
	HeroDescription string
	HeroImage       string
	WhatsappNumber  *string
	Instagram       *string
	Facebook        *string
	TikTok          *string
	Shopee          *string
	Navigation      []NavigationInput
}

// Validate exige los campos de marca/hero no vacíos tras recortar y label+url en cada ítem.
func (r StoreSettingsRequest) Validate() (StoreSettingsInput, error) {
	in := StoreSettingsInput{
		StoreName:       strings.TrimSpace(r.StoreName),
		LogoURL:         cleanNullable(r.LogoURL),
		HeroHeadline:    strings.TrimSpace(r.HeroHeadline),
		HeroTagline:     strings.TrimSpace(r.HeroTagline),
		HeroDescription: strings.TrimSpace(r.HeroDescription),
		HeroImage:       strings.TrimSpace(r.HeroImage),
		WhatsappNumber:  cleanNullable(r.WhatsappNumber),
		Instagram:       cleanNullable(r.Instagram),
		Facebook:        cleanNullable(r.Facebook),
		TikTok:          cleanNullable(r.TikTok),
		Shopee:          cleanNullable(r.Shopee),
	}
	required := []struct{ field, value string }{
		{"storeName", in.StoreName},
		{"heroHeadline", in.HeroHeadline},
		{"heroTagline", in.HeroTagline},
		{"heroDescription", in.HeroDescription},
		{"heroImage", in.HeroImage},
	}
	for _, f := range required {
		if f.value == "" {
			return in, domain.NewValidationError(fmt.Sprintf("el campo %s es requerido", f.field))
		}
	}

	if r.Navigation != nil {
		in.Navigation = make([]NavigationInput, 0, len(r.Navigation))
		for _, item := range r.Navigation {
			nav := NavigationInput{
				Label:      strings.TrimSpace(item.Label),
				URL:        strings.TrimSpace(item.URL),
				IsExternal: item.IsExternal,
			}
			if nav.Label == "" || nav.URL == "" {
				return in, domain.NewValidationError("cada ítem de navegación requiere label y url")
			}
			if item.ID != nil {
				nav.ID = strings.TrimSpace(*item.ID)
			}
			in.Navigation = append(in.Navigation, nav)
		}
	}
	return in, nil
}

// NavigationItemResponse ítem del menú en la respuesta.
type NavigationItemResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	URL        string `json:"url"`
	Order      int    `json:"order"`
	IsExternal bool   `json:"isExternal"`
}

// StoreSettingsResponse configuración pública de la tienda. ID es null cuando aún
// no existe la fila y se sirven los valores por defecto.
type StoreSettingsResponse struct {
	ID              *string                  `json:"id"`
	Key             string                   `json:"key"`
	StoreName       string                   `json:"storeName"`
	LogoURL         *string                  `json:"logoUrl"`
	HeroHeadline    string                   `json:"heroHeadline"`
	HeroTagline     string                   `json:"heroTagline"`
	HeroDescription string                   `json:"heroDescription"`
	HeroImage       string                   `json:"heroImage"`
	WhatsappNumber  *string                  `json:"whatsappNumber"`
	Instagram       *string                  `json:"instagram"`
	Facebook        *string                  `json:"facebook"`
	TikTok          *string                  `json:"tiktok"`
	Shopee          *string                  `json:"shopee"`
	CreatedAt       *time.Time               `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time               `json:"updatedAt,omitempty"`
	Navigation      []NavigationItemResponse `json:"navigation"`
}
