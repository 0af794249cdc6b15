package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction (solo alta y lectura).
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	ListByCard(ctx context.Context, cardID string) ([]*entity.Transaction, error)
}
