package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/card"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CardUseCase emisión, límite y activación de tarjetas.
type CardUseCase struct {
	repo        repository.CardRepository
	txnRepo     repository.TransactionRepository
	invoiceRepo repository.InvoiceRepository
	now         Clock
}

// NewCardUseCase construye el caso de uso.
func NewCardUseCase(
	repo repository.CardRepository,
	txnRepo repository.TransactionRepository,
	invoiceRepo repository.InvoiceRepository,
	now Clock,
) *CardUseCase {
	return &CardUseCase{repo: repo, txnRepo: txnRepo, invoiceRepo: invoiceRepo, now: now}
}

// Create emite una tarjeta. El límite no puede ser negativo.
func (uc *CardUseCase) Create(ctx context.Context, in dto.CreateCardRequest) (*dto.CardResponse, error) {
	if in.CreditLimit == nil || in.CreditLimit.IsNegative() || in.ExpirationDate == nil || in.IsActivated == nil {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Card{
		CompanyID:      in.CompanyID,
		CardNumber:     in.CardNumber,
		ExpirationDate: in.ExpirationDate.Time,
		CreditLimit:    *in.CreditLimit,
		IsActivated:    *in.IsActivated,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCardResponse(c)
	return &out, nil
}

// GetByID obtiene una tarjeta. Devuelve domain.ErrNotFound si no existe.
func (uc *CardUseCase) GetByID(ctx context.Context, id string) (*dto.CardResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toCardResponse(c)
	return &out, nil
}

// UpdateLimit fija un nuevo límite de crédito (>= 0).
func (uc *CardUseCase) UpdateLimit(ctx context.Context, id string, limit decimal.Decimal) (*dto.CardResponse, error) {
	if limit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.UpdateLimit(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toCardResponse(c)
	return &out, nil
}

// UpdateState activa o desactiva la tarjeta. Rechaza con domain.ErrNotFound o
// domain.ErrCardExpired antes de modificar nada.
func (uc *CardUseCase) UpdateState(ctx context.Context, id string, isActivated bool) (*dto.CardResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := card.CheckActivation(current, uc.now()); err != nil {
		return nil, err
	}
	c, err := uc.repo.UpdateActivation(ctx, id, isActivated)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toCardResponse(c)
	return &out, nil
}

// ListInvoices facturas de la tarjeta.
func (uc *CardUseCase) ListInvoices(ctx context.Context, cardID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// ListTransactions transacciones de la tarjeta.
func (uc *CardUseCase) ListTransactions(ctx context.Context, cardID string) ([]dto.TransactionResponse, error) {
	list, err := uc.txnRepo.ListByCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}
