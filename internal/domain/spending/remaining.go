package spending

import (
	"time"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Remaining es el gasto disponible del mes: Used = Limit - Σ|monto| de las
// transacciones del mes calendario en curso. Used puede quedar negativo.
type Remaining struct {
	Used  decimal.Decimal
	Limit decimal.Decimal
}

// RemainingSpend calcula el gasto disponible de una tarjeta para el mes y año de now.
// El signo del monto no se interpreta: toda transacción del mes descuenta su magnitud.
// No se acota el resultado a cero.
func RemainingSpend(limit decimal.Decimal, txns []*entity.Transaction, now time.Time) Remaining {
	used := limit
	for _, t := range txns {
		if t == nil || !InMonth(t.Date, now) {
			continue
		}
		used = used.Sub(t.Amount.Abs())
	}
	return Remaining{Used: used, Limit: limit}
}

// InMonth informa si d cae en el mismo mes y año calendario que ref, evaluado en la zona horaria de ref.
func InMonth(d, ref time.Time) bool {
	d = d.In(ref.Location())
	return d.Year() == ref.Year() && d.Month() == ref.Month()
}
