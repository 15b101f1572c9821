package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondError mapea un error de dominio a su status HTTP y cuerpo JSON.
// Los errores no tipados (driver, bugs) salen como 500 con mensaje genérico:
// el detalle queda en el log, nunca en la respuesta.
func respondError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	status := domain.StatusOf(kind)
	if kind == domain.KindInternal {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:  "INTERNAL",
			Error: "error interno del servidor",
		})
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:  domain.CodeOf(err),
		Error: err.Error(),
	})
}
