package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/usecase"
	"github.com/jhoicas/Finanzas-api/internal/domain"
)

// CardHandler emisión, límite y estado de tarjetas.
type CardHandler struct {
	uc *usecase.CardUseCase
}

// NewCardHandler construye el handler.
func NewCardHandler(uc *usecase.CardUseCase) *CardHandler {
	return &CardHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir tarjeta
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCardRequest  true  "Datos de la tarjeta"
// @Success      200   {object}  dto.Response{data=dto.CardResponse}
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/cards [post]
func (h *CardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCardRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return createFailed(c, err)
	}
	return respond(c, fiber.StatusOK, "Card created successfully", out)
}

// GetByID godoc
// @Summary      Obtener tarjeta
// @Tags         cards
// @Produce      json
// @Param        id   path      string  true  "ID de la tarjeta"
// @Success      200  {object}  dto.Response{data=dto.CardResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/cards/{id} [get]
func (h *CardHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Card not found")
		}
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched card", out)
}

// UpdateLimit godoc
// @Summary      Cambiar límite de crédito
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "ID de la tarjeta"
// @Param        body  body      dto.UpdateCardLimitRequest  true  "Nuevo límite"
// @Success      201   {object}  dto.Response{data=dto.CardResponse}
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.Response
// @Router       /api/cards/{id}/limit [patch]
func (h *CardHandler) UpdateLimit(c *fiber.Ctx) error {
	var in dto.UpdateCardLimitRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateLimit(c.UserContext(), c.Params("id"), *in.NewLimit)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Card not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return invalidData(c, "newLimit is Number must be greater than or equal to 0")
	case err != nil:
		return err
	}
	return respond(c, fiber.StatusCreated, "Successfully update card limit", out)
}

// UpdateState godoc
// @Summary      Activar o desactivar tarjeta
// @Description  Rechaza tarjetas inexistentes o vencidas sin modificarlas.
// @Tags         cards
// @Produce      json
// @Param        id           path      string  true  "ID de la tarjeta"
// @Param        isActivated  query     bool    true  "Nuevo estado"
// @Success      201          {object}  dto.Response{data=dto.CardResponse}
// @Failure      400          {object}  dto.ValidationErrorResponse
// @Failure      404          {object}  dto.Response
// @Router       /api/cards/{id}/state [patch]
func (h *CardHandler) UpdateState(c *fiber.Ctx) error {
	isActivated, err := strconv.ParseBool(c.Query("isActivated"))
	if err != nil {
		return invalidData(c, "isActivated is Expected boolean")
	}
	out, err := h.uc.UpdateState(c.UserContext(), c.Params("id"), isActivated)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrCardExpired) {
			return fail(c, fiber.StatusNotFound, "Card not found or expired")
		}
		return err
	}
	return respond(c, fiber.StatusCreated, "Successfully update card state", out)
}

// ListInvoices godoc
// @Summary      Facturas de una tarjeta
// @Tags         cards
// @Produce      json
// @Param        id   path      string  true  "ID de la tarjeta"
// @Success      200  {object}  dto.Response{data=[]dto.InvoiceResponse}
// @Router       /api/cards/{id}/invoices [get]
func (h *CardHandler) ListInvoices(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Fetched invoices successfully", out)
}

// ListTransactions godoc
// @Summary      Transacciones de una tarjeta
// @Tags         cards
// @Produce      json
// @Param        id   path      string  true  "ID de la tarjeta"
// @Success      200  {object}  dto.Response{data=[]dto.TransactionResponse}
// @Router       /api/cards/{id}/transactions [get]
func (h *CardHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.uc.ListTransactions(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Fetched transactions successfully", out)
}
