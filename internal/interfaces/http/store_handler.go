package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/application/usecase"
	"github.com/jhoicas/golden-store/pkg/logger"
)

// StoreHandler configuración de la tienda y menú de navegación.
type StoreHandler struct {
	uc  *usecase.StoreUseCase
	log *logger.Logger
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, log *logger.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Configuración pública de la tienda
// @Description  Sin fila guardada devuelve los valores por defecto con id null.
// @Tags         store
// @Produce      json
// @Success      200  {object}  dto.StoreSettingsResponse
// @Router       /api/store/settings [get]
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración y menú
// @Description  navigation ausente deja el menú intacto; [] lo vacía. Ítems sin id o con id desconocido se crean.
// @Tags         store
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreSettingsRequest  true  "Configuración"
// @Success      200   {object}  dto.StoreSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/store/settings [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var req dto.StoreSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	in, err := req.Validate()
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
