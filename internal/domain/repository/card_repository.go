package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CardRepository define el puerto de persistencia para Card.
// UpdateLimit y UpdateActivation modifican solo su campo y devuelven el documento
// actualizado, o (nil, nil) si la tarjeta no existe.
type CardRepository interface {
	Create(ctx context.Context, card *entity.Card) error
	GetByID(ctx context.Context, id string) (*entity.Card, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Card, error)
	UpdateLimit(ctx context.Context, id string, limit decimal.Decimal) (*entity.Card, error)
	UpdateActivation(ctx context.Context, id string, isActivated bool) (*entity.Card, error)
}
