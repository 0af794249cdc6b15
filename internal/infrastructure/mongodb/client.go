// Package mongodb implementa los puertos de persistencia sobre MongoDB (almacén por defecto).
// Los documentos conservan el formato de las colecciones existentes: ObjectID como _id y
// referencias, nombres de campo camelCase y montos como double.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/pkg/config"
)

// Nombres de colección.
const (
	collUsers        = "users"
	collCompanies    = "companies"
	collCards        = "cards"
	collTransactions = "transactions"
	collInvoices     = "invoices"
)

// Connect abre el cliente, verifica la conexión y devuelve la base configurada.
// El cliente se crea una vez en main y se pasa explícitamente a los repositorios.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar MongoDB: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices usados por las consultas (idempotente).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collCompanies:    {{Keys: bson.D{{Key: "userId", Value: 1}}}},
		collCards:        {{Keys: bson.D{{Key: "companyId", Value: 1}}}},
		collTransactions: {{Keys: bson.D{{Key: "cardId", Value: 1}, {Key: "date", Value: 1}}}},
		collInvoices: {
			{Keys: bson.D{{Key: "companyId", Value: 1}}},
			{Keys: bson.D{{Key: "cardId", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("índices de %s: %w", coll, err)
		}
	}
	return nil
}

// objectID convierte un ID hex. ok=false si no es un ObjectID válido.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

// referenceID valida una referencia a otro documento al crear.
func referenceID(field, id string) (primitive.ObjectID, error) {
	oid, ok := objectID(id)
	if !ok {
		return primitive.NilObjectID, &domain.InvalidReferenceError{Field: field}
	}
	return oid, nil
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// afterUpdate opciones de FindOneAndUpdate que devuelven el documento ya actualizado.
func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// findAll ejecuta filter sobre coll ordenado por _id (orden de inserción) y decodifica en T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]T, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}
