package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id::text, company_id::text, card_id::text, is_paid, amount, created_at, due_date`

// Create persiste la factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	companyID, err := referenceID("companyId", invoice.CompanyID)
	if err != nil {
		return err
	}
	cardID, err := referenceID("cardId", invoice.CardID)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (company_id, card_id, is_paid, amount, created_at, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, company_id::text, card_id::text`
	err = r.q.QueryRow(ctx, query,
		companyID, cardID, invoice.IsPaid, invoice.Amount, invoice.CreatedAt, invoice.DueDate,
	).Scan(&invoice.ID, &invoice.CompanyID, &invoice.CardID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	iid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "get invoice", `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, iid)
}

// List devuelve todas las facturas.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY inserted_at, id`)
}

// ListByCompany facturas de una empresa.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Invoice, error) {
	cid, ok := lookupID(companyID)
	if !ok {
		return []*entity.Invoice{}, nil
	}
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE company_id = $1 ORDER BY inserted_at, id`, cid)
}

// ListByCard facturas de una tarjeta.
func (r *InvoiceRepo) ListByCard(ctx context.Context, cardID string) ([]*entity.Invoice, error) {
	cid, ok := lookupID(cardID)
	if !ok {
		return []*entity.Invoice{}, nil
	}
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE card_id = $1 ORDER BY inserted_at, id`, cid)
}

// MarkPaid fija is_paid = true sin tocar amount.
func (r *InvoiceRepo) MarkPaid(ctx context.Context, id string) (*entity.Invoice, error) {
	iid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "mark invoice paid",
		`UPDATE invoices SET is_paid = TRUE WHERE id = $1 RETURNING `+invoiceColumns, iid)
}

// UpdateAmount fija el saldo pendiente.
func (r *InvoiceRepo) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) (*entity.Invoice, error) {
	iid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "update invoice amount",
		`UPDATE invoices SET amount = $2 WHERE id = $1 RETURNING `+invoiceColumns, iid, amount)
}

func (r *InvoiceRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return inv, nil
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return collect(rows, scanInvoice)
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := row.Scan(&inv.ID, &inv.CompanyID, &inv.CardID, &inv.IsPaid, &inv.Amount, &inv.CreatedAt, &inv.DueDate); err != nil {
		return nil, err
	}
	return &inv, nil
}
