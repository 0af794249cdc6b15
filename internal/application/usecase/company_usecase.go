package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/internal/domain/spending"
)

// maxCardFetches límite de lecturas concurrentes de transacciones por petición.
const maxCardFetches = 8

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo        repository.CompanyRepository
	cardRepo    repository.CardRepository
	txnRepo     repository.TransactionRepository
	invoiceRepo repository.InvoiceRepository
	now         Clock
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia y el reloj.
func NewCompanyUseCase(
	repo repository.CompanyRepository,
	cardRepo repository.CardRepository,
	txnRepo repository.TransactionRepository,
	invoiceRepo repository.InvoiceRepository,
	now Clock,
) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, cardRepo: cardRepo, txnRepo: txnRepo, invoiceRepo: invoiceRepo, now: now}
}

// Create registra una empresa para un usuario.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{UserID: in.UserID, CompanyName: in.CompanyName}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// ListCards tarjetas de la empresa.
func (uc *CompanyUseCase) ListCards(ctx context.Context, companyID string) ([]dto.CardResponse, error) {
	list, err := uc.cardRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toCardResponses(list), nil
}

// ListInvoices facturas de la empresa.
func (uc *CompanyUseCase) ListInvoices(ctx context.Context, companyID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// CardsWithSpending devuelve cada tarjeta de la empresa con su gasto disponible del mes
// y todas sus transacciones. Las transacciones de cada tarjeta se leen en paralelo;
// el orden de salida es el de ListByCompany.
func (uc *CompanyUseCase) CardsWithSpending(ctx context.Context, companyID string) ([]dto.CardDataResponse, error) {
	cards, err := uc.cardRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]dto.CardDataResponse, len(cards))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCardFetches)
	for i, card := range cards {
		g.Go(func() error {
			txns, err := uc.txnRepo.ListByCard(gctx, card.ID)
			if err != nil {
				return fmt.Errorf("transacciones de la tarjeta %s: %w", card.ID, err)
			}
			out[i] = toCardData(card, txns, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func toCardData(card *entity.Card, txns []*entity.Transaction, now time.Time) dto.CardDataResponse {
	remaining := spending.RemainingSpend(card.CreditLimit, txns, now)
	data := make([]dto.CardTransactionData, 0, len(txns))
	for _, t := range txns {
		data = append(data, dto.CardTransactionData{
			ID:          t.ID,
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
		})
	}
	return dto.CardDataResponse{
		ID:             card.ID,
		IsActivated:    card.IsActivated,
		CardNumber:     card.CardNumber,
		ExpirationDate: card.ExpirationDate,
		RemainingSpend: dto.RemainingSpendResponse{Used: remaining.Used, Limit: remaining.Limit},
		Transactions:   data,
	}
}
