package entity

import "time"

// Product representa un artículo del catálogo público.
// Price está en la unidad mínima de la moneda (rupiah enteras) y nunca es negativo.
// Slug es único en toda la tienda.
type Product struct {
	ID             string
	Slug           string
	Name           string
	Price          int64
	Image          string
	Description    string
	ShopeeURL      string
	WhatsappNumber *string
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
