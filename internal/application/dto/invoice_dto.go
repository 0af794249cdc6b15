package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura. Fechas e isPaid son opcionales.
type CreateInvoiceRequest struct {
	CompanyID string           `json:"companyId" validate:"required"`
	CardID    string           `json:"cardId" validate:"required"`
	Amount    *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	IsPaid    *bool            `json:"isPaid"`
	CreatedAt *DateTime        `json:"createdAt"`
	DueDate   *DateTime        `json:"dueDate"`
}

// PayInvoiceRequest entrada de PATCH /invoices/:id (pago total o parcial).
type PayInvoiceRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID        string          `json:"_id"`
	CompanyID string          `json:"companyId"`
	CardID    string          `json:"cardId"`
	IsPaid    bool            `json:"isPaid"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	DueDate   time.Time       `json:"dueDate"`
}
