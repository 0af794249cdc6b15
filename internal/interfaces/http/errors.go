package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// ErrorHandler responde los errores no tratados por los handlers.
// Los *fiber.Error (ruta inexistente, método no permitido) conservan su código;
// cualquier otro error se registra y se responde 500 sin detalles.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
			return fail(c, fe.Code, fe.Message)
		}
		log.Error().
			Err(err).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{Message: dto.MsgInternalServer})
	}
}
