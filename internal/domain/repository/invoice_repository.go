package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Invoice, error)
	ListByCard(ctx context.Context, cardID string) ([]*entity.Invoice, error)
	// MarkPaid pone is_paid = true sin tocar amount.
	MarkPaid(ctx context.Context, id string) (*entity.Invoice, error)
	// UpdateAmount fija el saldo pendiente (pago parcial).
	UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) (*entity.Invoice, error)
}
