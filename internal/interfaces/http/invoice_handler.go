package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/usecase"
	"github.com/jhoicas/Finanzas-api/internal/domain"
)

// InvoiceHandler alta, consulta y pago de facturas.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear factura
// @Description  Sin fechas se usa el día 2 (createdAt) y el 28 (dueDate) del mes en curso.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  true  "Datos de la factura"
// @Success      200   {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return createFailed(c, err)
	}
	return respond(c, fiber.StatusOK, "Added invoice successfully", out)
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.InvoiceResponse}
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched all invoices", out)
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Invoice not found")
		}
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched invoice", out)
}

// Pay godoc
// @Summary      Pagar factura
// @Description  Pago igual al saldo: marca la factura como pagada. Pago menor: reduce el saldo.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID de la factura"
// @Param        body  body      dto.PayInvoiceRequest  true  "Monto pagado"
// @Success      201   {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/invoices/{id} [patch]
func (h *InvoiceHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayInvoiceRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Pay(c.UserContext(), c.Params("id"), *in.Amount)
	switch {
	case errors.Is(err, domain.ErrInvoiceSettled):
		return fail(c, fiber.StatusNotFound, "Invoice is already paid or not exist")
	case errors.Is(err, domain.ErrOverpayment):
		return fail(c, fiber.StatusBadRequest, "Paid amount exceeds invoice amount")
	case errors.Is(err, domain.ErrInvalidPayment):
		return invalidData(c, "amount is Number must be greater than 0")
	case err != nil:
		return err
	}
	return respond(c, fiber.StatusCreated, "Invoices was paid successfully", out)
}
