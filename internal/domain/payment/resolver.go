package payment

import (
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Action es la actualización que debe aplicarse a la factura tras un pago aceptado.
type Action int

const (
	// ActionMarkPaid: pago exacto. Se marca is_paid y amount conserva su valor.
	ActionMarkPaid Action = iota + 1
	// ActionReduceAmount: pago parcial. amount pasa a NewAmount e is_paid sigue en false.
	ActionReduceAmount
)

// Decision resultado de resolver un pago.
type Decision struct {
	Action    Action
	NewAmount decimal.Decimal // solo con ActionReduceAmount
}

// Resolve decide el siguiente estado de la factura para un pago de amount.
//
// Rechazos (sin cambio de estado):
//   - domain.ErrInvoiceSettled si la factura no existe o ya está pagada.
//   - domain.ErrInvalidPayment si amount <= 0.
//   - domain.ErrOverpayment si amount supera el saldo pendiente.
func Resolve(inv *entity.Invoice, amount decimal.Decimal) (Decision, error) {
	if inv == nil || inv.IsPaid {
		return Decision{}, domain.ErrInvoiceSettled
	}
	if !amount.IsPositive() {
		return Decision{}, domain.ErrInvalidPayment
	}
	if amount.GreaterThan(inv.Amount) {
		return Decision{}, domain.ErrOverpayment
	}
	if amount.Equal(inv.Amount) {
		return Decision{Action: ActionMarkPaid}, nil
	}
	return Decision{Action: ActionReduceAmount, NewAmount: inv.Amount.Sub(amount)}, nil
}
