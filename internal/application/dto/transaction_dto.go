package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar una transacción (monto negativo = gasto).
type CreateTransactionRequest struct {
	CardID      string           `json:"cardId" validate:"required"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Date        *DateTime        `json:"date" validate:"required"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"_id"`
	CardID      string          `json:"cardId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}
