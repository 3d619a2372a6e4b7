package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/dto"
)

// RequireFeature corta la petición con 503 si la funcionalidad opcional no está
// configurada (por ejemplo la traducción asistida con AI_PROVIDER=none).
//
// Comportamiento:
//   - 503 Service Unavailable → funcionalidad deshabilitada en este despliegue.
//   - enabled nil se interpreta como deshabilitada.
func RequireFeature(name string, enabled func() bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if enabled == nil || !enabled() {
			GetLogger(c).Debug().Str("feature", name).Msg("funcionalidad deshabilitada")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "la funcionalidad '" + name + "' no está activa en este sitio",
			})
		}
		return c.Next()
	}
}
