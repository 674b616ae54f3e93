package entity

import "time"

// StoreSettingsKey clave lógica de la fila singleton de configuración.
const StoreSettingsKey = "default"

// StoreSettings configuración global de la tienda (marca, hero y redes sociales).
// Los campos puntero son opcionales y se guardan como NULL.
type StoreSettings struct {
	ID              string
	Key             string
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
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NavigationItem enlace del menú del storefront. Order es contiguo desde 0.
type NavigationItem struct {
	ID         string
	StoreID    string
	Label      string
	URL        string
	Order      int
	IsExternal bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
