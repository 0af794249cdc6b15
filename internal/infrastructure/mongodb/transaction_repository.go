package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre la colección transactions.
type TransactionRepo struct {
	coll *mongo.Collection
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(db *mongo.Database) *TransactionRepo {
	return &TransactionRepo{coll: db.Collection(collTransactions)}
}

// Create inserta la transacción; cardId debe ser un ObjectID.
func (r *TransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	cardID, err := referenceID("cardId", txn.CardID)
	if err != nil {
		return err
	}
	res, err := r.coll.InsertOne(ctx, transactionDoc{
		CardID:      cardID,
		Description: txn.Description,
		Amount:      txn.Amount.InexactFloat64(),
		Date:        txn.Date,
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	txn.ID = insertedHex(res)
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	var d transactionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return d.toEntity(), nil
}

// ListByCard transacciones de una tarjeta.
func (r *TransactionRepo) ListByCard(ctx context.Context, cardID string) ([]*entity.Transaction, error) {
	oid, ok := objectID(cardID)
	if !ok {
		return []*entity.Transaction{}, nil
	}
	docs, err := findAll[transactionDoc](ctx, r.coll, bson.M{"cardId": oid})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return toEntities[transactionDoc, entity.Transaction](docs), nil
}
