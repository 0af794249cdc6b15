package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la factura de una tarjeta de una empresa.
// Amount es el saldo pendiente (>= 0). IsPaid pasa de false a true una sola vez;
// al pagarse por completo Amount conserva su último valor y no se aceptan más pagos.
type Invoice struct {
	ID        string
	CompanyID string
	CardID    string
	Amount    decimal.Decimal
	IsPaid    bool
	CreatedAt time.Time
	DueDate   time.Time
}
