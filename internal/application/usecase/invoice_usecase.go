package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/payment"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// Días del mes en curso usados cuando la factura llega sin fechas.
const (
	defaultCreatedDay = 2
	defaultDueDay     = 28
)

// InvoiceUseCase alta, consulta y pago de facturas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	now  Clock
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, now Clock) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, now: now}
}

// Create registra una factura. isPaid por defecto false; createdAt y dueDate por defecto
// el día 2 y el día 28 del mes en curso.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Amount == nil || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	inv := &entity.Invoice{
		CompanyID: in.CompanyID,
		CardID:    in.CardID,
		Amount:    *in.Amount,
		CreatedAt: dayOfMonth(now, defaultCreatedDay),
		DueDate:   dayOfMonth(now, defaultDueDay),
	}
	if in.IsPaid != nil {
		inv.IsPaid = *in.IsPaid
	}
	if in.CreatedAt != nil {
		inv.CreatedAt = in.CreatedAt.Time
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate.Time
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// GetByID obtiene una factura. Devuelve domain.ErrNotFound si no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

// Pay aplica un pago total o parcial sobre una lectura fresca de la factura.
// Lectura, decisión y escritura no son atómicas: dos pagos parciales concurrentes
// pueden aceptarse ambos contra el mismo saldo leído.
func (uc *InvoiceUseCase) Pay(ctx context.Context, id string, amount decimal.Decimal) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	decision, err := payment.Resolve(inv, amount)
	if err != nil {
		return nil, err
	}

	var updated *entity.Invoice
	switch decision.Action {
	case payment.ActionMarkPaid:
		updated, err = uc.repo.MarkPaid(ctx, id)
	case payment.ActionReduceAmount:
		updated, err = uc.repo.UpdateAmount(ctx, id, decision.NewAmount)
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrInvoiceSettled
	}
	out := toInvoiceResponse(updated)
	return &out, nil
}

func dayOfMonth(now time.Time, day int) time.Time {
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
}
