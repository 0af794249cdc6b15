package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction representa un movimiento de una tarjeta. Amount negativo = gasto.
// Inmutable una vez creada.
type Transaction struct {
	ID          string
	CardID      string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}
