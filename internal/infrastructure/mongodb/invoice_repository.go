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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre la colección invoices.
type InvoiceRepo struct {
	coll *mongo.Collection
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(db *mongo.Database) *InvoiceRepo {
	return &InvoiceRepo{coll: db.Collection(collInvoices)}
}

// Create inserta la factura; companyId y cardId deben ser ObjectID.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	companyID, err := referenceID("companyId", invoice.CompanyID)
	if err != nil {
		return err
	}
	cardID, err := referenceID("cardId", invoice.CardID)
	if err != nil {
		return err
	}
	res, err := r.coll.InsertOne(ctx, invoiceDoc{
		CompanyID: companyID,
		CardID:    cardID,
		IsPaid:    invoice.IsPaid,
		Amount:    invoice.Amount.InexactFloat64(),
		CreatedAt: invoice.CreatedAt,
		DueDate:   invoice.DueDate,
	})
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	invoice.ID = insertedHex(res)
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	var d invoiceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return d.toEntity(), nil
}

// List devuelve todas las facturas.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.list(ctx, bson.M{})
}

// ListByCompany facturas de una empresa.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Invoice, error) {
	oid, ok := objectID(companyID)
	if !ok {
		return []*entity.Invoice{}, nil
	}
	return r.list(ctx, bson.M{"companyId": oid})
}

// ListByCard facturas de una tarjeta.
func (r *InvoiceRepo) ListByCard(ctx context.Context, cardID string) ([]*entity.Invoice, error) {
	oid, ok := objectID(cardID)
	if !ok {
		return []*entity.Invoice{}, nil
	}
	return r.list(ctx, bson.M{"cardId": oid})
}

// MarkPaid fija isPaid = true; amount no se toca.
func (r *InvoiceRepo) MarkPaid(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.set(ctx, id, bson.M{"isPaid": true})
}

// UpdateAmount fija el saldo pendiente.
func (r *InvoiceRepo) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) (*entity.Invoice, error) {
	return r.set(ctx, id, bson.M{"amount": amount.InexactFloat64()})
}

func (r *InvoiceRepo) list(ctx context.Context, filter bson.M) ([]*entity.Invoice, error) {
	docs, err := findAll[invoiceDoc](ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return toEntities[invoiceDoc, entity.Invoice](docs), nil
}

func (r *InvoiceRepo) set(ctx context.Context, id string, fields bson.M) (*entity.Invoice, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	var d invoiceDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, afterUpdate()).Decode(&d)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return d.toEntity(), nil
}
