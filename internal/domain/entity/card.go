package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card representa una tarjeta de pago emitida a una empresa.
// CreditLimit nunca es negativo; CreditLimit e IsActivated solo cambian mediante
// actualizaciones dirigidas (límite y estado).
type Card struct {
	ID             string
	CompanyID      string
	CardNumber     string
	ExpirationDate time.Time
	CreditLimit    decimal.Decimal
	IsActivated    bool
}

// IsExpired informa si la tarjeta venció respecto a now.
func (c *Card) IsExpired(now time.Time) bool {
	return c.ExpirationDate.Before(now)
}
