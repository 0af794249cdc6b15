package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCardRequest entrada para emitir una tarjeta.
type CreateCardRequest struct {
	CardNumber     string           `json:"cardNumber" validate:"required"`
	CompanyID      string           `json:"companyId" validate:"required"`
	ExpirationDate *DateTime        `json:"expirationDate" validate:"required"`
	CreditLimit    *decimal.Decimal `json:"creditLimit" validate:"required,gte=0"`
	IsActivated    *bool            `json:"isActivated" validate:"required"`
}

// UpdateCardLimitRequest entrada de PATCH /cards/:id/limit.
type UpdateCardLimitRequest struct {
	NewLimit *decimal.Decimal `json:"newLimit" validate:"required,gte=0"`
}

// CardResponse salida de una tarjeta.
type CardResponse struct {
	ID             string          `json:"_id"`
	CardNumber     string          `json:"cardNumber"`
	CompanyID      string          `json:"companyId"`
	ExpirationDate time.Time       `json:"expirationDate"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	IsActivated    bool            `json:"isActivated"`
}

// RemainingSpendResponse gasto disponible del mes en curso.
type RemainingSpendResponse struct {
	Used  decimal.Decimal `json:"used"`
	Limit decimal.Decimal `json:"limit"`
}

// CardTransactionData transacción embebida en CardDataResponse.
type CardTransactionData struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// CardDataResponse tarjeta con gasto disponible y todas sus transacciones (GET /companies/:id/cards/allData).
type CardDataResponse struct {
	ID             string                 `json:"id"`
	IsActivated    bool                   `json:"isActivated"`
	CardNumber     string                 `json:"cardNumber"`
	ExpirationDate time.Time              `json:"expirationDate"`
	RemainingSpend RemainingSpendResponse `json:"remainingSpend"`
	Transactions   []CardTransactionData  `json:"transactions"`
}
