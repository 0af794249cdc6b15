package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.CardRepository = (*CardRepo)(nil)

// CardRepo implementación de CardRepository sobre PostgreSQL.
type CardRepo struct {
	q Querier
}

// NewCardRepository construye el adaptador de persistencia para tarjetas.
func NewCardRepository(q Querier) *CardRepo {
	return &CardRepo{q: q}
}

const cardColumns = `id::text, company_id::text, card_number, expiration_date, credit_limit, is_activated`

// Create persiste la tarjeta.
func (r *CardRepo) Create(ctx context.Context, card *entity.Card) error {
	companyID, err := referenceID("companyId", card.CompanyID)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO cards (company_id, card_number, expiration_date, credit_limit, is_activated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, company_id::text`
	err = r.q.QueryRow(ctx, query,
		companyID, card.CardNumber, card.ExpirationDate, card.CreditLimit, card.IsActivated,
	).Scan(&card.ID, &card.CompanyID)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

// GetByID obtiene una tarjeta por ID.
func (r *CardRepo) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	cid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "get card", `SELECT `+cardColumns+` FROM cards WHERE id = $1`, cid)
}

// ListByCompany tarjetas de una empresa.
func (r *CardRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Card, error) {
	cid, ok := lookupID(companyID)
	if !ok {
		return []*entity.Card{}, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+cardColumns+` FROM cards WHERE company_id = $1 ORDER BY inserted_at, id`, cid)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return collect(rows, scanCard)
}

// UpdateLimit fija credit_limit y devuelve la fila actualizada.
func (r *CardRepo) UpdateLimit(ctx context.Context, id string, limit decimal.Decimal) (*entity.Card, error) {
	cid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "update card limit",
		`UPDATE cards SET credit_limit = $2 WHERE id = $1 RETURNING `+cardColumns, cid, limit)
}

// UpdateActivation fija is_activated y devuelve la fila actualizada.
func (r *CardRepo) UpdateActivation(ctx context.Context, id string, isActivated bool) (*entity.Card, error) {
	cid, ok := lookupID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "update card state",
		`UPDATE cards SET is_activated = $2 WHERE id = $1 RETURNING `+cardColumns, cid, isActivated)
}

func (r *CardRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Card, error) {
	c, err := scanCard(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func scanCard(row pgx.Row) (*entity.Card, error) {
	var c entity.Card
	if err := row.Scan(&c.ID, &c.CompanyID, &c.CardNumber, &c.ExpirationDate, &c.CreditLimit, &c.IsActivated); err != nil {
		return nil, err
	}
	return &c, nil
}
