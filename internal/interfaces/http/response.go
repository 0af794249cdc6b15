package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
)

// respond escribe el sobre {message, data}.
func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Response{Message: message, Data: data})
}

// fail escribe {message} sin data.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{Message: message})
}

// invalidData escribe el 400 de validación {error, details}.
func invalidData(c *fiber.Ctx, messages ...string) error {
	details := make([]dto.ErrorDetail, 0, len(messages))
	for _, m := range messages {
		details = append(details, dto.ErrorDetail{Message: m})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
		Error:   dto.MsgInvalidData,
		Details: details,
	})
}

// createFailed traduce errores de alta: entradas inválidas a 400, el resto al ErrorHandler.
func createFailed(c *fiber.Ctx, err error) error {
	var ref *domain.InvalidReferenceError
	if errors.As(err, &ref) {
		return invalidData(c, ref.Field+" is Invalid id")
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return invalidData(c, "body is Invalid")
	}
	return err
}
