package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidPassword    = errors.New("contraseña inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")

	// Facturas
	ErrInvoiceSettled = errors.New("la factura ya está pagada o no existe")
	ErrOverpayment    = errors.New("el pago excede el monto de la factura")
	ErrInvalidPayment = errors.New("el monto del pago debe ser positivo")

	// Tarjetas
	ErrCardExpired = errors.New("tarjeta vencida")
)

// InvalidReferenceError referencia mal formada (userId, companyId, cardId) al crear un recurso.
type InvalidReferenceError struct {
	Field string
}

func (e *InvalidReferenceError) Error() string { return e.Field + ": " + ErrInvalidInput.Error() }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidInput }
