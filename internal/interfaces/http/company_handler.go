package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/usecase"
	"github.com/jhoicas/Finanzas-api/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      200   {object}  dto.Response{data=dto.CompanyResponse}
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return createFailed(c, err)
	}
	return respond(c, fiber.StatusOK, "Company created successfully", out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CompanyResponse}
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched companies", out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Company not found")
		}
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched company", out)
}

// ListCards godoc
// @Summary      Tarjetas de una empresa
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response{data=[]dto.CardResponse}
// @Router       /api/companies/{id}/cards [get]
func (h *CompanyHandler) ListCards(c *fiber.Ctx) error {
	out, err := h.uc.ListCards(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched company card", out)
}

// CardsWithSpending godoc
// @Summary      Tarjetas con gasto disponible del mes
// @Description  Para cada tarjeta: used = creditLimit - suma de |amount| de las transacciones del mes en curso.
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response{data=[]dto.CardDataResponse}
// @Router       /api/companies/{id}/cards/allData [get]
func (h *CompanyHandler) CardsWithSpending(c *fiber.Ctx) error {
	out, err := h.uc.CardsWithSpending(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched company", out)
}

// ListInvoices godoc
// @Summary      Facturas de una empresa
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response{data=[]dto.InvoiceResponse}
// @Router       /api/companies/{id}/invoices [get]
func (h *CompanyHandler) ListInvoices(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Fetched invoices successfully", out)
}
