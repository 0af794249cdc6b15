package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id::text, card_id::text, description, amount, date`

// Create persiste la transacción.
func (r *TransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	cardID, err := referenceID("cardId", txn.CardID)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO transactions (card_id, description, amount, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, card_id::text`
	if err := r.q.QueryRow(ctx, query, cardID, txn.Description, txn.Amount, txn.Date).Scan(&txn.ID, &txn.CardID); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	tid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	t, err := scanTransaction(r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, tid))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListByCard transacciones de una tarjeta.
func (r *TransactionRepo) ListByCard(ctx context.Context, cardID string) ([]*entity.Transaction, error) {
	cid, ok := lookupID(cardID)
	if !ok {
		return []*entity.Transaction{}, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE card_id = $1 ORDER BY inserted_at, id`, cid)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return collect(rows, scanTransaction)
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := row.Scan(&t.ID, &t.CardID, &t.Description, &t.Amount, &t.Date); err != nil {
		return nil, err
	}
	return &t, nil
}
