package usecase

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// TransactionUseCase alta y consulta de transacciones.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create registra una transacción.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Amount == nil || in.Date == nil {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Transaction{
		CardID:      in.CardID,
		Amount:      *in.Amount,
		Description: in.Description,
		Date:        in.Date.Time,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	out := toTransactionResponse(t)
	return &out, nil
}

// GetByID obtiene una transacción. Devuelve domain.ErrNotFound si no existe.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	out := toTransactionResponse(t)
	return &out, nil
}
