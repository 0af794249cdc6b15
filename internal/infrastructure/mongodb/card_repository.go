package mongodb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.CardRepository = (*CardRepo)(nil)

// CardRepo implementación de CardRepository sobre la colección cards.
type CardRepo struct {
	coll *mongo.Collection
}

// NewCardRepository construye el adaptador de persistencia para tarjetas.
func NewCardRepository(db *mongo.Database) *CardRepo {
	return &CardRepo{coll: db.Collection(collCards)}
}

// Create inserta la tarjeta; companyId debe ser un ObjectID.
func (r *CardRepo) Create(ctx context.Context, card *entity.Card) error {
	companyID, err := referenceID("companyId", card.CompanyID)
	if err != nil {
		return err
	}
	res, err := r.coll.InsertOne(ctx, cardDoc{
		CardNumber:     card.CardNumber,
		CompanyID:      companyID,
		ExpirationDate: card.ExpirationDate,
		CreditLimit:    card.CreditLimit.InexactFloat64(),
		IsActivated:    card.IsActivated,
	})
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	card.ID = insertedHex(res)
	return nil
}

// GetByID obtiene una tarjeta por ID.
func (r *CardRepo) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	var d cardDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	return d.toEntity(), nil
}

// ListByCompany tarjetas de una empresa.
func (r *CardRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Card, error) {
	oid, ok := objectID(companyID)
	if !ok {
		return []*entity.Card{}, nil
	}
	docs, err := findAll[cardDoc](ctx, r.coll, bson.M{"companyId": oid})
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return toEntities[cardDoc, entity.Card](docs), nil
}

// UpdateLimit fija creditLimit.
func (r *CardRepo) UpdateLimit(ctx context.Context, id string, limit decimal.Decimal) (*entity.Card, error) {
	return r.set(ctx, id, bson.M{"creditLimit": limit.InexactFloat64()})
}

// UpdateActivation fija isActivated.
func (r *CardRepo) UpdateActivation(ctx context.Context, id string, isActivated bool) (*entity.Card, error) {
	return r.set(ctx, id, bson.M{"isActivated": isActivated})
}

func (r *CardRepo) set(ctx context.Context, id string, fields bson.M) (*entity.Card, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	var d cardDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, afterUpdate()).Decode(&d)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update card: %w", err)
	}
	return d.toEntity(), nil
}
