package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/pkg/logger"
)

// Bootstrapper garantiza admin y configuración por defecto antes de atender /api.
type Bootstrapper interface {
	Ensure(ctx context.Context) error
}

// Pinger comprueba que el almacenamiento responde.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BootstrapMiddleware corre el bootstrap (una sola vez por proceso) antes del handler.
// Si falla responde 500 y el siguiente request lo reintenta.
func BootstrapMiddleware(b Bootstrapper, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := b.Ensure(c.UserContext()); err != nil {
			log.Error().Err(err).Str("request_id", requestID(c)).Msg("bootstrap falló")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "BOOTSTRAP_FAILED", Message: "error interno del servidor"})
		}
		return c.Next()
	}
}

// RequestLogger registra una línea por request.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler escriba el status antes de registrarlo
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", requestID(c)).
			Msg("request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("requestid").(string); ok {
		return v
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
