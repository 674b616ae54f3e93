package dto

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/golden-store/internal/domain"
)

var maxPrice = decimal.NewFromInt(math.MaxInt64)

// ProductRequest cuerpo de POST /api/products y PUT /api/products/:id.
// Price acepta número JSON o string numérico; se redondea al entero más cercano.
type ProductRequest struct {
	Name           string           `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	Image          string           `json:"image"`
	Description    string           `json:"description"`
	ShopeeURL      string           `json:"shopeeUrl"`
	WhatsappNumber *string          `json:"whatsappNumber"`
	Tags           []string         `json:"tags"`
	Slug           *string          `json:"slug"`
}

// ProductInput producto validado y normalizado.
type ProductInput struct {
	Name           string
	Price          int64
	Image          string
	Description    string
	ShopeeURL      string
	WhatsappNumber *string
	Tags           []string
	Slug           string // vacío = derivar del nombre
}

// Validate recorta los campos, exige name, description, image y shopeeUrl no vacíos
// y un price finito >= 0.
func (r ProductRequest) Validate() (ProductInput, error) {
	in := ProductInput{
		Name:           strings.TrimSpace(r.Name),
		Image:          strings.TrimSpace(r.Image),
		Description:    strings.TrimSpace(r.Description),
		ShopeeURL:      strings.TrimSpace(r.ShopeeURL),
		WhatsappNumber: cleanNullable(r.WhatsappNumber),
		Tags:           make([]string, 0, len(r.Tags)),
	}
	if in.Name == "" || in.Description == "" || in.Image == "" || in.ShopeeURL == "" {
		return in, domain.NewValidationError("name, description, image y shopeeUrl son requeridos")
	}
	if r.Price == nil || r.Price.IsNegative() {
		return in, domain.NewValidationError("price debe ser un número mayor o igual a 0")
	}
	rounded := r.Price.Round(0)
	if rounded.GreaterThan(maxPrice) {
		return in, domain.NewValidationError("price fuera de rango")
	}
	in.Price = rounded.IntPart()

	for _, tag := range r.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			in.Tags = append(in.Tags, t)
		}
	}
	if r.Slug != nil {
		in.Slug = strings.TrimSpace(*r.Slug)
	}
	return in, nil
}

// ProductResponse salida de un producto (JSON camelCase, consumido por el storefront).
type ProductResponse struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Price          int64     `json:"price"`
	Image          string    `json:"image"`
	Description    string    `json:"description"`
	ShopeeURL      string    `json:"shopeeUrl"`
	WhatsappNumber *string   `json:"whatsappNumber"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
