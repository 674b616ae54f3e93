package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/golden-store/internal/application/catalog"
	"github.com/jhoicas/golden-store/pkg/logger"
	"github.com/jhoicas/golden-store/pkg/metrics"
)

// CatalogHandler exportaciones del catálogo (PDF y feed XML).
type CatalogHandler struct {
	uc      *catalog.ExportUseCase
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewCatalogHandler construye el handler. metrics puede ser nil.
func NewCatalogHandler(uc *catalog.ExportUseCase, m *metrics.Metrics, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, metrics: m, log: log}
}

// PDF godoc
// @Summary      Catálogo en PDF
// @Tags         catalog
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/catalog/catalog.pdf [get]
func (h *CatalogHandler) PDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.CatalogPDF(c.UserContext())
	if err != nil {
		h.count("pdf", "error")
		return respondError(c, h.log, err)
	}
	h.count("pdf", "ok")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

// Feed godoc
// @Summary      Feed de productos (RSS 2.0 + namespace g:)
// @Description  Responde 304 si If-None-Match coincide con el ETag actual.
// @Tags         catalog
// @Produce      application/rss+xml
// @Success      200  {string}  string
// @Success      304  {string}  string
// @Router       /api/catalog/feed.xml [get]
func (h *CatalogHandler) Feed(c *fiber.Ctx) error {
	feed, err := h.uc.ProductFeed(c.UserContext())
	if err != nil {
		h.count("feed", "error")
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderETag, feed.ETag)
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	// Fresh compara If-None-Match con el ETag ya fijado; sin Last-Modified, un
	// If-Modified-Since solo no alcanza para responder 304.
	if c.Get(fiber.HeaderIfNoneMatch) != "" && c.Fresh() {
		h.count("feed", "not_modified")
		return c.SendStatus(fiber.StatusNotModified)
	}
	h.count("feed", "ok")
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(feed.Body)
}

func (h *CatalogHandler) count(format, result string) {
	if h.metrics != nil {
		h.metrics.Export(format, result)
	}
}
